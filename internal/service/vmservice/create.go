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
	"slices"

	"k8s.io/utils/ptr"

	capmox "github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/scope"
)

const (
	// See the following link for a list of available config options:
	// https://pve.proxmox.com/pve-docs/api-viewer/index.html#/nodes/{node}/qemu

	optionName    = "name"
	optionMemory  = "memory"
	optionCores   = "cores"
	optionSockets = "sockets"
)

// CreateOptions merges the descriptor into the ordered list of create
// parameters. The named fields come first, each only when set to a non-zero
// value, followed by the free-form config in key order. Applied in order, a
// config key overwrites a named field of the same name.
func CreateOptions(vm scope.VMDescriptor) []capmox.VirtualMachineOption {
	options := make([]capmox.VirtualMachineOption, 0, 4+len(vm.Config))

	if vm.Name != "" {
		options = append(options, capmox.VirtualMachineOption{Name: optionName, Value: vm.Name})
	}
	for _, named := range []struct {
		name  string
		value *int
	}{
		{optionMemory, vm.Memory},
		{optionCores, vm.Cores},
		{optionSockets, vm.Sockets},
	} {
		if v := ptr.Deref(named.value, 0); v != 0 {
			options = append(options, capmox.VirtualMachineOption{Name: named.name, Value: v})
		}
	}

	return append(options, configOptions(vm.Config)...)
}

// MergedCreateParameters applies CreateOptions in order and returns the
// resulting request parameters, vmid included.
func MergedCreateParameters(vm scope.VMDescriptor) map[string]any {
	params := map[string]any{"vmid": vm.VMID}
	for _, opt := range CreateOptions(vm) {
		params[opt.Name] = opt.Value
	}
	return params
}

func configOptions(config map[string]any) []capmox.VirtualMachineOption {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	options := make([]capmox.VirtualMachineOption, 0, len(keys))
	for _, k := range keys {
		options = append(options, capmox.VirtualMachineOption{Name: k, Value: config[k]})
	}
	return options
}

func ensureVirtualMachine(ctx context.Context, scope *scope.VMScope, result Result) (Result, error) {
	if res, skip := checkMode(scope, result, "create"); skip {
		return res, nil
	}

	options := CreateOptions(scope.VM)
	scope.V(4).Info("creating vm", "options", optionNames(options))

	upid, err := scope.ProxmoxClient.CreateVM(ctx, scope.VMID(), options...)
	if err != nil {
		return result, fmt.Errorf("unable to create vm %d: %w", scope.VMID(), err)
	}
	scope.Info("vm created", "task", upid)

	result.Changed = true
	return result, nil
}

// reconcileVirtualMachineConfig applies the config keys whose current value
// differs. Values are compared in their text form, as the API returns
// numbers and strings alike; a value the server normalizes (e.g. a net0
// without MAC) therefore always counts as a change.
func reconcileVirtualMachineConfig(ctx context.Context, scope *scope.VMScope, result Result) (Result, error) {
	current, err := scope.ProxmoxClient.GetVMConfig(ctx, scope.VMID())
	if err != nil {
		return result, fmt.Errorf("unable to read config of vm %d: %w", scope.VMID(), err)
	}

	options := changedOptions(current, configOptions(scope.VM.Config))
	if len(options) == 0 {
		scope.V(4).Info("vm config up to date")
		return result, nil
	}

	if res, skip := checkMode(scope, result, "configure"); skip {
		return res, nil
	}

	if _, err := scope.ProxmoxClient.ConfigureVM(ctx, scope.VMID(), options...); err != nil {
		return result, fmt.Errorf("unable to configure vm %d: %w", scope.VMID(), err)
	}
	scope.Info("vm configured", "options", optionNames(options))

	result.Changed = true
	return result, nil
}

func changedOptions(current map[string]any, desired []capmox.VirtualMachineOption) []capmox.VirtualMachineOption {
	var changed []capmox.VirtualMachineOption
	for _, opt := range desired {
		if v, ok := current[opt.Name]; ok && fmt.Sprint(v) == fmt.Sprint(opt.Value) {
			continue
		}
		changed = append(changed, opt)
	}
	return changed
}

// optionNames keeps option values, which may carry secrets like cipassword, out of the logs.
func optionNames(options []capmox.VirtualMachineOption) []string {
	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, opt.Name)
	}
	return names
}
