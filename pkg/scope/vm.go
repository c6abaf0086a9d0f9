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

// Package scope defines the per-invocation scope handed to the VM services.
package scope

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
	capmox "github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox"
)

// VMDescriptor describes the VM a caller wants. The vmid is always chosen by the caller.
type VMDescriptor struct {
	VMID    int64
	Name    string
	Memory  *int
	Cores   *int
	Sockets *int

	// Config holds additional create parameters passed verbatim to the API.
	Config map[string]any
}

// VMScopeParams defines the input parameters used to create a new VMScope.
type VMScopeParams struct {
	ProxmoxClient capmox.Client
	Logger        *logr.Logger
	State         consts.DesiredState
	VM            VMDescriptor

	// CheckMode reports changes without issuing mutating calls.
	CheckMode bool

	// Purge defaults to true.
	Purge *bool

	// UpdateConfig applies VM.Config to an existing VM for StatePresent.
	UpdateConfig bool
}

// VMScope defines a scope defined around one VM on one node.
type VMScope struct {
	*logr.Logger

	ProxmoxClient capmox.Client
	State         consts.DesiredState
	VM            VMDescriptor
	CheckMode     bool
	Purge         bool
	UpdateConfig  bool
}

// NewVMScope creates a new VMScope from the supplied parameters.
func NewVMScope(params VMScopeParams) (*VMScope, error) {
	if params.ProxmoxClient == nil {
		return nil, errors.New("ProxmoxClient is required when creating a VMScope")
	}
	if params.VM.VMID <= 0 {
		return nil, fmt.Errorf("vmid must be a positive integer, got %d", params.VM.VMID)
	}
	if params.State == "" {
		params.State = consts.StatePresent
	}
	if !params.State.Valid() {
		return nil, fmt.Errorf("unsupported state %q, expected one of %v", params.State, consts.DesiredStates)
	}
	if params.Logger == nil {
		logger := klog.Background()
		params.Logger = &logger
	}

	logger := params.Logger.WithValues("vmid", params.VM.VMID, "state", string(params.State))
	return &VMScope{
		Logger:        &logger,
		ProxmoxClient: params.ProxmoxClient,
		State:         params.State,
		VM:            params.VM,
		CheckMode:     params.CheckMode,
		Purge:         ptr.Deref(params.Purge, true),
		UpdateConfig:  params.UpdateConfig,
	}, nil
}

// VMID returns the id of the VM in scope.
func (s *VMScope) VMID() int64 {
	return s.VM.VMID
}
