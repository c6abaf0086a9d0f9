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

package goproxmox

import "github.com/pkg/errors"

var (
	// ErrMissingTicket is returned when a login answer carries no ticket.
	ErrMissingTicket = errors.New("login response did not contain a ticket")

	// ErrInvalidVMID is returned for non-positive VM ids; the API is not called.
	ErrInvalidVMID = errors.New("vmid must be a positive integer")

	// ErrNoNode is returned when a session has no node to address.
	ErrNoNode = errors.New("no node specified")
)
