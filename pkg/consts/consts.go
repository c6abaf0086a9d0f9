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

// Package consts contains the wire-level constants of the Proxmox VE API
// and the state names understood by the reconciler.
package consts

import "time"

const (
	// DefaultPort is the port pveproxy listens on.
	DefaultPort = 8006

	// APIPath is the base path of the JSON API.
	APIPath = "api2/json"

	// AuthCookieName carries the ticket on authenticated requests.
	AuthCookieName = "PVEAuthCookie"

	// CSRFHeaderName carries the anti-forgery token on authenticated requests.
	CSRFHeaderName = "CSRFPreventionToken"

	// LoopbackPrefix marks guest addresses that are never reported.
	LoopbackPrefix = "127."
)

const (
	// DefaultResolveTimeout is applied to every call made by the guest IP resolver.
	DefaultResolveTimeout = 5 * time.Second

	// DefaultReconcileTimeout is applied to every call made by the VM reconciler.
	DefaultReconcileTimeout = 30 * time.Second
)

// DesiredState is the state a caller asks the reconciler to converge to.
type DesiredState string

const (
	// StatePresent ensures the VM exists.
	StatePresent DesiredState = "present"
	// StateAbsent ensures the VM does not exist.
	StateAbsent DesiredState = "absent"
	// StateStarted ensures an existing VM is running.
	StateStarted DesiredState = "started"
	// StateStopped ensures an existing VM is not running.
	StateStopped DesiredState = "stopped"
	// StateCurrent only reports the observed state.
	StateCurrent DesiredState = "current"
)

// DesiredStates lists all accepted desired states.
var DesiredStates = []DesiredState{StatePresent, StateAbsent, StateStarted, StateStopped, StateCurrent}

// Valid reports whether s is one of DesiredStates.
func (s DesiredState) Valid() bool {
	for _, known := range DesiredStates {
		if s == known {
			return true
		}
	}
	return false
}

// Observed VM status values as reported by status/current.
const (
	VMStatusRunning = "running"
	VMStatusStopped = "stopped"

	// VMStatusAbsent is reported for a VM that does not exist.
	VMStatusAbsent = "absent"
)
