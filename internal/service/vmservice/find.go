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

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/scope"
)

// vmExists flattens the existence probe. Every probe failure, an unreachable
// server included, is treated as "the VM does not exist".
func vmExists(ctx context.Context, scope *scope.VMScope) bool {
	probe := scope.ProxmoxClient.ProbeVM(ctx, scope.VMID())
	if !probe.Exists() && probe.Err != nil {
		scope.V(2).Info("treating vm as absent", "probe", probe.Kind.String(), "reason", probe.Err.Error())
	}
	return probe.Exists()
}
