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

// deleteVirtualMachine destroys the VM in one call. A running VM is not
// stopped first; if the server refuses, its error is returned as is.
func deleteVirtualMachine(ctx context.Context, scope *scope.VMScope, result Result) (Result, error) {
	if res, skip := checkMode(scope, result, "delete"); skip {
		return res, nil
	}

	upid, err := scope.ProxmoxClient.DeleteVM(ctx, scope.VMID(), scope.Purge)
	if err != nil {
		return result, fmt.Errorf("unable to delete vm %d: %w", scope.VMID(), err)
	}
	scope.Info("vm deleted", "purge", scope.Purge, "task", upid)

	result.Changed = true
	return result, nil
}
