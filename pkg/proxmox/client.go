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

// Package proxmox defines the Proxmox client interface used by the VM services.
package proxmox

import (
	"context"
)

// Client is the authenticated Proxmox API surface for QEMU guests on one node.
type Client interface {
	// Session returns the session the client was built from.
	Session() Session

	ProbeVM(ctx context.Context, vmID int64) ProbeResult
	GetVMStatus(ctx context.Context, vmID int64) (*VMStatus, error)
	GetVMConfig(ctx context.Context, vmID int64) (map[string]any, error)

	CreateVM(ctx context.Context, vmID int64, options ...VirtualMachineOption) (string, error)
	ConfigureVM(ctx context.Context, vmID int64, options ...VirtualMachineOption) (string, error)
	StartVM(ctx context.Context, vmID int64) (string, error)
	StopVM(ctx context.Context, vmID int64) (string, error)
	DeleteVM(ctx context.Context, vmID int64, purge bool) (string, error)

	GuestNetworkInterfaces(ctx context.Context, vmID int64) ([]GuestNetworkInterface, error)
}
