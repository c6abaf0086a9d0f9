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

// Package goproxmox implements a client for Proxmox QEMU guest lifecycle management.
package goproxmox

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-logr/logr"
	"github.com/luthermonson/go-proxmox"

	pveerrors "github.com/ionos-cloud/proxmox-vm-tools/pkg/errors"
	capmox "github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox"
)

var _ capmox.Client = &APIClient{}

// APIClient Proxmox API client object bound to one session and node.
type APIClient struct {
	*proxmox.Client
	session capmox.Session
	logger  logr.Logger
}

// NewAPIClient builds a client that sends the session ticket as cookie and
// the CSRF token as header on every request. No request is issued.
// Pass the http.Client with WithHTTPClient so non-2xx answers fail.
func NewAPIClient(logger logr.Logger, session capmox.Session, options ...proxmox.Option) (*APIClient, error) {
	if session.Node == "" {
		return nil, ErrNoNode
	}
	if session.Ticket == "" {
		return nil, ErrMissingTicket
	}

	options = append(append([]proxmox.Option{WithHTTPClient(nil)}, options...),
		proxmox.WithSession(session.Ticket, session.CSRFPreventionToken),
		proxmox.WithLogger(capmox.Logger{}),
	)
	upstreamClient := proxmox.NewClient(session.BaseURL(), options...)

	return &APIClient{
		Client:  upstreamClient,
		session: session,
		logger:  logger.WithValues("node", session.Node),
	}, nil
}

// Session returns the session the client was built from.
func (c *APIClient) Session() capmox.Session {
	return c.session
}

func (c *APIClient) qemuPath(vmID int64, elem ...string) string {
	p := fmt.Sprintf("/nodes/%s/qemu", url.PathEscape(c.session.Node))
	if vmID > 0 {
		p = fmt.Sprintf("%s/%d", p, vmID)
	}
	for _, e := range elem {
		p += "/" + e
	}
	return p
}

// ProbeVM queries status/current and reports the outcome without failing.
func (c *APIClient) ProbeVM(ctx context.Context, vmID int64) capmox.ProbeResult {
	status, err := c.GetVMStatus(ctx, vmID)
	switch {
	case err == nil:
		return capmox.ProbeResult{Kind: capmox.ProbeFound, Status: status}
	case pveerrors.IsNotFound(err):
		return capmox.ProbeResult{Kind: capmox.ProbeNotFound, Err: err}
	case pveerrors.IsTransport(err):
		return capmox.ProbeResult{Kind: capmox.ProbeTransportFailure, Err: err}
	default:
		return capmox.ProbeResult{Kind: capmox.ProbeAPIFailure, Err: err}
	}
}

// VMExists reports whether status/current of the VM answers successfully.
// Any failure, including an unreachable server, is reported as false.
func (c *APIClient) VMExists(ctx context.Context, vmID int64) bool {
	result := c.ProbeVM(ctx, vmID)
	if !result.Exists() {
		c.logger.V(4).Info("vm probe negative", "vmid", vmID, "outcome", result.Kind.String(), "reason", fmt.Sprint(result.Err))
	}
	return result.Exists()
}

// GetVMStatus returns the current status of the VM.
func (c *APIClient) GetVMStatus(ctx context.Context, vmID int64) (*capmox.VMStatus, error) {
	if vmID <= 0 {
		return nil, ErrInvalidVMID
	}

	fields := map[string]any{}
	if err := c.Get(ctx, c.qemuPath(vmID, "status", "current"), &fields); err != nil {
		return nil, pveerrors.Classify(fmt.Sprintf("get status of vm %d", vmID), err)
	}

	status, _ := fields["status"].(string)
	return &capmox.VMStatus{
		VMID:   vmID,
		Status: status,
		Fields: fields,
	}, nil
}

// GetVMConfig returns the current configuration of the VM, pending changes excluded.
func (c *APIClient) GetVMConfig(ctx context.Context, vmID int64) (map[string]any, error) {
	if vmID <= 0 {
		return nil, ErrInvalidVMID
	}

	config := map[string]any{}
	if err := c.Get(ctx, c.qemuPath(vmID, "config"), &config); err != nil {
		return nil, pveerrors.Classify(fmt.Sprintf("get config of vm %d", vmID), err)
	}
	return config, nil
}

// CreateVM creates the VM. The request body starts with vmid and applies
// options in order, so a later option overwrites an earlier one of the same name.
func (c *APIClient) CreateVM(ctx context.Context, vmID int64, options ...capmox.VirtualMachineOption) (string, error) {
	if vmID <= 0 {
		return "", ErrInvalidVMID
	}

	body := map[string]any{"vmid": vmID}
	for _, opt := range options {
		body[opt.Name] = opt.Value
	}

	var upid string
	if err := c.Post(ctx, c.qemuPath(0), body, &upid); err != nil {
		return "", pveerrors.Classify(fmt.Sprintf("create vm %d", vmID), err)
	}
	c.logger.V(2).Info("vm created", "vmid", vmID, "upid", upid)
	return upid, nil
}

// ConfigureVM updates a VMs settings.
func (c *APIClient) ConfigureVM(ctx context.Context, vmID int64, options ...capmox.VirtualMachineOption) (string, error) {
	if vmID <= 0 {
		return "", ErrInvalidVMID
	}

	body := make(map[string]any, len(options))
	for _, opt := range options {
		body[opt.Name] = opt.Value
	}

	var upid string
	if err := c.Put(ctx, c.qemuPath(vmID, "config"), body, &upid); err != nil {
		return "", pveerrors.Classify(fmt.Sprintf("configure vm %d", vmID), err)
	}
	c.logger.V(2).Info("vm configured", "vmid", vmID)
	return upid, nil
}

// StartVM starts the VM.
func (c *APIClient) StartVM(ctx context.Context, vmID int64) (string, error) {
	return c.statusCommand(ctx, vmID, "start")
}

// StopVM stops the VM immediately. This is not a guest shutdown.
func (c *APIClient) StopVM(ctx context.Context, vmID int64) (string, error) {
	return c.statusCommand(ctx, vmID, "stop")
}

func (c *APIClient) statusCommand(ctx context.Context, vmID int64, command string) (string, error) {
	if vmID <= 0 {
		return "", ErrInvalidVMID
	}

	var upid string
	if err := c.Post(ctx, c.qemuPath(vmID, "status", command), nil, &upid); err != nil {
		return "", pveerrors.Classify(fmt.Sprintf("%s vm %d", command, vmID), err)
	}
	c.logger.V(2).Info("vm status command issued", "vmid", vmID, "command", command, "upid", upid)
	return upid, nil
}

// DeleteVM destroys the VM. With purge the VM is also removed from backup
// jobs, replication and HA, and unreferenced disks are destroyed.
// A running VM is not stopped first; the server decides whether to refuse.
func (c *APIClient) DeleteVM(ctx context.Context, vmID int64, purge bool) (string, error) {
	if vmID <= 0 {
		return "", ErrInvalidVMID
	}

	p := c.qemuPath(vmID)
	if purge {
		p += "?purge=1"
	}

	var upid string
	if err := c.Delete(ctx, p, &upid); err != nil {
		return "", pveerrors.Classify(fmt.Sprintf("delete vm %d", vmID), err)
	}
	c.logger.V(2).Info("vm deleted", "vmid", vmID, "purge", purge, "upid", upid)
	return upid, nil
}

// GuestNetworkInterfaces returns the interfaces reported by the guest agent, in agent order.
func (c *APIClient) GuestNetworkInterfaces(ctx context.Context, vmID int64) ([]capmox.GuestNetworkInterface, error) {
	if vmID <= 0 {
		return nil, ErrInvalidVMID
	}

	var res struct {
		Result []capmox.GuestNetworkInterface `json:"result"`
	}
	if err := c.Get(ctx, c.NetworkInterfacesPath(vmID), &res); err != nil {
		return nil, pveerrors.Classify(fmt.Sprintf("get network interfaces of vm %d", vmID), err)
	}
	return res.Result, nil
}

// NetworkInterfacesPath returns the API path of the guest agent's network-get-interfaces call.
func (c *APIClient) NetworkInterfacesPath(vmID int64) string {
	return c.qemuPath(vmID, "agent", "network-get-interfaces")
}
