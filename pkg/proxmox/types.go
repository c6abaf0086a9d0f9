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

package proxmox

import (
	"fmt"

	"github.com/luthermonson/go-proxmox"

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
)

// VirtualMachineOption is an alias for VirtualMachineOption to prevent import conflicts.
type VirtualMachineOption = proxmox.VirtualMachineOption

// Session is the result of one successful login against a node.
// It is a value: copies are independent and nothing mutates it after Authenticate.
type Session struct {
	Host                string
	Port                int
	Node                string
	Username            string
	Ticket              string
	CSRFPreventionToken string
}

// BaseURL returns the JSON API root of the session's host.
func (s Session) BaseURL() string {
	return BaseURL(s.Host, s.Port)
}

// BaseURL returns the JSON API root for host. A zero port selects consts.DefaultPort.
func BaseURL(host string, port int) string {
	if port == 0 {
		port = consts.DefaultPort
	}
	return fmt.Sprintf("https://%s:%d/%s", host, port, consts.APIPath)
}

// VMStatus is the payload of status/current. Only Status is interpreted,
// every other field is kept in Fields as sent by the server.
type VMStatus struct {
	VMID   int64
	Status string
	Fields map[string]any
}

// IsRunning reports whether the guest is running.
func (s *VMStatus) IsRunning() bool {
	return s != nil && s.Status == consts.VMStatusRunning
}

// GuestNetworkInterface is one entry of the guest agent's network-get-interfaces result.
type GuestNetworkInterface struct {
	Name            string           `json:"name"`
	HardwareAddress string           `json:"hardware-address,omitempty"`
	IPAddresses     []GuestIPAddress `json:"ip-addresses,omitempty"`
}

// GuestIPAddress is one address reported for a guest interface.
type GuestIPAddress struct {
	IPAddress     string `json:"ip-address"`
	IPAddressType string `json:"ip-address-type,omitempty"`
	Prefix        int    `json:"prefix,omitempty"`
}

// ProbeKind is the outcome of a VM existence probe.
type ProbeKind int

const (
	// ProbeFound means status/current answered with 2xx.
	ProbeFound ProbeKind = iota
	// ProbeNotFound means the server reported the VM as missing.
	ProbeNotFound
	// ProbeTransportFailure means the server could not be reached.
	ProbeTransportFailure
	// ProbeAPIFailure means the server answered with another error.
	ProbeAPIFailure
)

func (k ProbeKind) String() string {
	switch k {
	case ProbeFound:
		return "found"
	case ProbeNotFound:
		return "not-found"
	case ProbeTransportFailure:
		return "transport-failure"
	case ProbeAPIFailure:
		return "api-failure"
	default:
		return "unknown"
	}
}

// ProbeResult is the unflattened outcome of an existence probe.
type ProbeResult struct {
	Kind   ProbeKind
	Status *VMStatus
	Err    error
}

// Exists flattens the probe into a boolean. Every failure, including an
// unreachable server, reads as "does not exist".
func (r ProbeResult) Exists() bool {
	return r.Kind == ProbeFound
}
