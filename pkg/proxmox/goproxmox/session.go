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

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/luthermonson/go-proxmox"

	pveerrors "github.com/ionos-cloud/proxmox-vm-tools/pkg/errors"
	capmox "github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox"
)

// Credentials identify the user logging in and the node later calls address.
type Credentials struct {
	Host     string
	Port     int
	Node     string
	Username string
	Password string
}

// ticketResponse is the data of a successful /access/ticket answer.
type ticketResponse struct {
	Username            string `json:"username"`
	Ticket              string `json:"ticket"`
	CSRFPreventionToken string `json:"CSRFPreventionToken"`
}

// Authenticate issues a single POST to /access/ticket and returns the
// resulting session. Any failure is returned as *pveerrors.AuthenticationError.
// Pass the http.Client with WithHTTPClient so non-2xx answers fail.
func Authenticate(ctx context.Context, logger logr.Logger, creds Credentials, options ...proxmox.Option) (capmox.Session, error) {
	baseURL := capmox.BaseURL(creds.Host, creds.Port)

	options = append(append([]proxmox.Option{WithHTTPClient(nil)}, options...), proxmox.WithLogger(capmox.Logger{}))
	upstreamClient := proxmox.NewClient(baseURL, options...)

	logger.V(4).Info("requesting ticket", "host", creds.Host, "user", creds.Username)

	var ticket ticketResponse
	err := upstreamClient.Post(ctx, "/access/ticket", &proxmox.Credentials{
		Username: creds.Username,
		Password: creds.Password,
	}, &ticket)
	if err != nil {
		return capmox.Session{}, &pveerrors.AuthenticationError{User: creds.Username, Err: err}
	}
	if ticket.Ticket == "" {
		return capmox.Session{}, &pveerrors.AuthenticationError{User: creds.Username, Err: ErrMissingTicket}
	}

	logger.V(2).Info("authenticated", "host", creds.Host, "user", creds.Username)

	return capmox.Session{
		Host:                creds.Host,
		Port:                creds.Port,
		Node:                creds.Node,
		Username:            creds.Username,
		Ticket:              ticket.Ticket,
		CSRFPreventionToken: ticket.CSRFPreventionToken,
	}, nil
}
