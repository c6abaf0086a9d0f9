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

// Package vmservice implement Proxmox vm logic.
package vmservice

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/scope"
)

// ErrUnsupportedState is returned for a desired state the reconciler does not know.
var ErrUnsupportedState = errors.New("unsupported desired state")

// Result is the outcome of one reconciliation.
type Result struct {
	VMID    int64
	Changed bool

	// Status is only set for consts.StateCurrent.
	Status string
}

// ReconcileVM converges the VM in scope to the desired state with the
// minimal set of calls:
//
//	present: create when absent
//	absent:  delete when present, running or not
//	started: start when present and not running
//	stopped: stop when present and running
//	current: report the observed status, "absent" when missing
//
// A VM that has to be created first is never created by started or stopped.
// In check mode every branch that would mutate reports a change and returns
// without calling the API. A failed mutating call aborts the reconciliation;
// nothing is rolled back.
func ReconcileVM(ctx context.Context, scope *scope.VMScope) (Result, error) {
	result := Result{VMID: scope.VMID()}

	exists := vmExists(ctx, scope)
	scope.V(4).Info("observed vm", "exists", exists)

	switch scope.State {
	case consts.StateCurrent:
		return reconcileCurrent(ctx, scope, result, exists)
	case consts.StatePresent:
		if !exists {
			return ensureVirtualMachine(ctx, scope, result)
		}
		if scope.UpdateConfig && len(scope.VM.Config) > 0 {
			return reconcileVirtualMachineConfig(ctx, scope, result)
		}
	case consts.StateAbsent:
		if exists {
			return deleteVirtualMachine(ctx, scope, result)
		}
	case consts.StateStarted:
		if exists {
			return reconcilePowerState(ctx, scope, result, true)
		}
	case consts.StateStopped:
		if exists {
			return reconcilePowerState(ctx, scope, result, false)
		}
	default:
		return result, errors.Wrapf(ErrUnsupportedState, "%q", scope.State)
	}

	scope.V(4).Info("nothing to do")
	return result, nil
}

func reconcileCurrent(ctx context.Context, scope *scope.VMScope, result Result, exists bool) (Result, error) {
	if !exists {
		result.Status = consts.VMStatusAbsent
		return result, nil
	}

	status, err := scope.ProxmoxClient.GetVMStatus(ctx, scope.VMID())
	if err != nil {
		return result, err
	}
	result.Status = status.Status
	return result, nil
}

// checkMode short-circuits a mutating branch.
func checkMode(scope *scope.VMScope, result Result, action string) (Result, bool) {
	if !scope.CheckMode {
		return result, false
	}
	scope.Info("check mode, skipping", "action", action)
	result.Changed = true
	return result, true
}
