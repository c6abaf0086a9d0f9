/*
Copyright 2026 IONOS Cloud.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vmservice

import (
	"context"
	"fmt"

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/scope"
)

// reconcilePowerState starts a VM that is not running, or hard stops a running one.
func reconcilePowerState(ctx context.Context, scope *scope.VMScope, result Result, wantRunning bool) (Result, error) {
	status, err := scope.ProxmoxClient.GetVMStatus(ctx, scope.VMID())
	if err != nil {
		return result, err
	}

	if status.IsRunning() == wantRunning {
		scope.V(4).Info("power state already reached", "status", status.Status)
		return result, nil
	}

	if wantRunning {
		return startVirtualMachine(ctx, scope, result)
	}
	return stopVirtualMachine(ctx, scope, result)
}

func startVirtualMachine(ctx context.Context, scope *scope.VMScope, result Result) (Result, error) {
	if res, skip := checkMode(scope, result, "start"); skip {
		return res, nil
	}

	upid, err := scope.ProxmoxClient.StartVM(ctx, scope.VMID())
	if err != nil {
		return result, fmt.Errorf("unable to start the virtual machine %d: %w", scope.VMID(), err)
	}
	scope.Info("vm started", "task", upid)

	result.Changed = true
	return result, nil
}

func stopVirtualMachine(ctx context.Context, scope *scope.VMScope, result Result) (Result, error) {
	if res, skip := checkMode(scope, result, "stop"); skip {
		return res, nil
	}

	upid, err := scope.ProxmoxClient.StopVM(ctx, scope.VMID())
	if err != nil {
		return result, fmt.Errorf("unable to stop the virtual machine %d: %w", scope.VMID(), err)
	}
	scope.Info("vm stopped", "task", upid)

	result.Changed = true
	return result, nil
}
