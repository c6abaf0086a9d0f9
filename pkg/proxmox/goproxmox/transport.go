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
	"io"
	"net/http"
	"strings"

	"github.com/luthermonson/go-proxmox"

	pveerrors "github.com/ionos-cloud/proxmox-vm-tools/pkg/errors"
)

// maxErrorBody bounds how much of a failed answer ends up in the error.
const maxErrorBody = 4 << 10

// WithHTTPClient sets the http.Client go-proxmox uses. Every answer outside
// 2xx fails with a *pveerrors.StatusError before go-proxmox decodes it, as
// go-proxmox itself only rejects a few status codes.
func WithHTTPClient(client *http.Client) proxmox.Option {
	return proxmox.WithHTTPClient(statusCheckingClient(client))
}

func statusCheckingClient(client *http.Client) *http.Client {
	c := &http.Client{}
	if client != nil {
		*c = *client
	}
	if _, ok := c.Transport.(*statusTransport); ok {
		return c
	}

	next := c.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	c.Transport = &statusTransport{next: next}
	return c
}

type statusTransport struct {
	next http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return nil, &pveerrors.StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}
