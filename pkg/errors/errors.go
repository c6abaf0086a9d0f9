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

// Package pveerrors defines the error taxonomy of the Proxmox API clients.
//
// Every failure of a Proxmox call is reported as one of
//   - AuthenticationError: the login call failed, nothing else was attempted
//   - TransportError: the server could not be reached or did not answer in time
//   - NotFoundError: the server answered that the resource does not exist
//   - APIError: the server answered with any other non-2xx status
package pveerrors

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// missingGuest matches pveproxy's answer for a VM without a config file, e.g.
// "500 Configuration file 'nodes/pve/qemu-server/100.conf' does not exist".
var missingGuest = regexp.MustCompile(`qemu-server/\d+\.conf' does not exist`)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("resource does not exist")

// AuthenticationError is returned when the ticket could not be obtained.
type AuthenticationError struct {
	User string
	Err  error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("unable to authenticate as %s: %v", e.User, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// TransportError is returned for network and timeout failures after login.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned when a reachable server rejects a request.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when the server reports the resource as missing.
type NotFoundError struct {
	Op  string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx answer. pveproxy puts its error message into
// the status line, the body carries the details.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = strconv.Itoa(e.StatusCode)
	}
	if e.Body == "" {
		return "HTTP " + status
	}
	return fmt.Sprintf("HTTP %s: %s", status, e.Body)
}

// Is makes errors.Is(err, ErrNotFound) hold for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Classify wraps err, returned by the operation op, into the matching
// taxonomy type. A nil err stays nil and already classified errors are
// returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		authErr      *AuthenticationError
		transportErr *TransportError
		apiErr       *APIError
		notFoundErr  *NotFoundError
	)
	if errors.As(err, &authErr) || errors.As(err, &transportErr) || errors.As(err, &apiErr) || errors.As(err, &notFoundErr) {
		return err
	}

	// A status answer is checked first: http.Client wraps it into a *url.Error.
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound || missingGuest.MatchString(statusErr.Error()) {
			return &NotFoundError{Op: op, Err: err}
		}
		return &APIError{Op: op, Err: err}
	}

	switch {
	case isTransport(err):
		return &TransportError{Op: op, Err: err}
	case missingGuest.MatchString(err.Error()):
		return &NotFoundError{Op: op, Err: err}
	default:
		return &APIError{Op: op, Err: err}
	}
}

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsAuthentication reports whether err is, or wraps, an AuthenticationError.
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAPI reports whether err is, or wraps, an APIError.
func IsAPI(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func isTransport(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// go-proxmox does not always wrap the error returned by the http.Client.
	msg := err.Error()
	for _, marker := range []string{"dial tcp", "connection refused", "no such host", "i/o timeout", "Client.Timeout", "context deadline exceeded", "tls:", "x509:"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
