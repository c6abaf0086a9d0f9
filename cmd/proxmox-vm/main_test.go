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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/ionos-cloud/proxmox-vm-tools/internal/moduleargs"
	"github.com/ionos-cloud/proxmox-vm-tools/internal/tlshelper"
)

const testBaseURL = "https://pve.local.test:8006/api2/json"

func setupTransport(t *testing.T) *httpmock.MockTransport {
	t.Helper()

	for _, key := range []string{moduleargs.EnvHost, moduleargs.EnvUser, moduleargs.EnvPassword, moduleargs.EnvNode} {
		t.Setenv(key, "")
	}

	transport := httpmock.NewMockTransport()
	orig := newHTTPClient
	newHTTPClient = func(cfg tlshelper.Config) (*http.Client, error) {
		require.False(t, cfg.InsecureSkipVerify)
		return &http.Client{Transport: transport, Timeout: cfg.Timeout}, nil
	}
	t.Cleanup(func() { newHTTPClient = orig })

	return transport
}

func registerLogin(transport *httpmock.MockTransport) {
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/access/ticket",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{
			"username":            "root@pam",
			"ticket":              "PVE:root@pam:4EEC61E2::sig",
			"CSRFPreventionToken": "4EEC61E2:token",
		}}))
}

func writeArgs(t *testing.T, args map[string]any) string {
	t.Helper()

	base := map[string]any{
		"api_host":     "pve.local.test",
		"api_user":     "root@pam",
		"api_password": "s3cr3t",
		"node":         "pve",
		"vmid":         100,
	}
	for k, v := range args {
		base[k] = v
	}

	raw, err := json.Marshal(base)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "args")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func runModule(t *testing.T, argv ...string) (int, map[string]any, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), argv, &stdout, &stderr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result), stdout.String())
	return code, result, stdout.String()
}

func TestRun_CreatesMissingVM(t *testing.T) {
	transport := setupTransport(t)
	registerLogin(transport)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
		httpmock.NewStringResponder(500, `{"data":null,"errors":{"vmid":"Configuration file 'nodes/pve/qemu-server/100.conf' does not exist"}}`))
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/nodes/pve/qemu",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": "UPID:pve:1:qmcreate:100:root@pam:"}))

	code, result, _ := runModule(t, writeArgs(t, map[string]any{
		"name":   "test-vm",
		"memory": 2048,
		"cores":  2,
	}))

	require.Equal(t, 0, code)
	require.Equal(t, true, result["changed"])
	require.EqualValues(t, 100, result["vmid"])
	require.NotContains(t, result, "failed")

	info := transport.GetCallCountInfo()
	require.Equal(t, 1, info["POST "+testBaseURL+"/nodes/pve/qemu"])
}

func TestRun_CurrentStatus(t *testing.T) {
	transport := setupTransport(t)
	registerLogin(transport)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{
			"vmid":   100,
			"status": "running",
		}}))

	code, result, _ := runModule(t, writeArgs(t, map[string]any{"state": "current"}))

	require.Equal(t, 0, code)
	require.Equal(t, false, result["changed"])
	require.Equal(t, "running", result["status"])
}

func TestRun_CheckModeAbsent(t *testing.T) {
	transport := setupTransport(t)
	registerLogin(transport)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{"status": "stopped"}}))

	code, result, _ := runModule(t, writeArgs(t, map[string]any{
		"state":               "absent",
		"_ansible_check_mode": true,
	}))

	require.Equal(t, 0, code)
	require.Equal(t, true, result["changed"])
	require.Equal(t, 2, transport.GetTotalCallCount())
}

func TestRun_FlagsOverrideArgsFile(t *testing.T) {
	transport := setupTransport(t)
	registerLogin(transport)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/200/status/current",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{"status": "running"}}))
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/nodes/pve/qemu/200/status/stop",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": "UPID:pve:1:qmstop:200:root@pam:"}))

	code, result, _ := runModule(t, "--vmid=200", "--state=stopped", writeArgs(t, nil))

	require.Equal(t, 0, code)
	require.Equal(t, true, result["changed"])
	require.EqualValues(t, 200, result["vmid"])
}

func TestRun_PurgeDisabled(t *testing.T) {
	transport := setupTransport(t)
	registerLogin(transport)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{"status": "stopped"}}))

	var query url.Values
	transport.RegisterResponder(http.MethodDelete, `=~^`+testBaseURL+`/nodes/pve/qemu/100`,
		func(req *http.Request) (*http.Response, error) {
			query = req.URL.Query()
			return httpmock.NewJsonResponse(200, map[string]any{"data": "UPID:pve:1:qmdestroy:100:root@pam:"})
		})

	code, result, _ := runModule(t, writeArgs(t, map[string]any{"state": "absent", "purge": false}))

	require.Equal(t, 0, code)
	require.Equal(t, true, result["changed"])
	require.Empty(t, query.Get("purge"))
}

func TestRun_EnvironmentDefaults(t *testing.T) {
	transport := setupTransport(t)
	t.Setenv(moduleargs.EnvHost, "pve.local.test")
	t.Setenv(moduleargs.EnvUser, "root@pam")
	t.Setenv(moduleargs.EnvPassword, "s3cr3t")
	t.Setenv(moduleargs.EnvNode, "pve")
	registerLogin(transport)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{"status": "stopped"}}))

	code, result, _ := runModule(t, "--vmid=100", "--state=stopped")

	require.Equal(t, 0, code)
	require.Equal(t, false, result["changed"])
}

func TestRun_AuthenticationFailure(t *testing.T) {
	transport := setupTransport(t)
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/access/ticket",
		httpmock.NewStringResponder(401, `{"data":null}`))

	code, result, stdout := runModule(t, writeArgs(t, nil))

	require.Equal(t, 1, code)
	require.Equal(t, true, result["failed"])
	require.Equal(t, false, result["changed"])
	require.Regexp(t, "^Authentication failed: ", result["msg"])
	require.NotContains(t, stdout, "s3cr3t")
	require.Equal(t, 1, transport.GetTotalCallCount())
}

func TestRun_MutationFailure(t *testing.T) {
	transport := setupTransport(t)
	registerLogin(transport)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{"status": "stopped"}}))
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/nodes/pve/qemu/100/status/start",
		httpmock.NewStringResponder(500, `{"data":null}`))

	code, result, _ := runModule(t, writeArgs(t, map[string]any{"state": "started"}))

	require.Equal(t, 1, code)
	require.Equal(t, true, result["failed"])
	require.NotEmpty(t, result["msg"])
}

func TestRun_InvalidArguments(t *testing.T) {
	transport := setupTransport(t)

	code, result, _ := runModule(t, writeArgs(t, map[string]any{"state": "restarted"}))
	require.Equal(t, 1, code)
	require.Equal(t, true, result["failed"])
	require.Contains(t, result["msg"], "restarted")

	code, result, _ = runModule(t, "--vmid=100")
	require.Equal(t, 1, code)
	require.Contains(t, result["msg"], "missing required arguments")

	require.Zero(t, transport.GetTotalCallCount())
}

func TestRun_NonSuccessStatus(t *testing.T) {
	t.Run("current reports absent on 404", func(t *testing.T) {
		transport := setupTransport(t)
		registerLogin(transport)
		transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
			httpmock.NewStringResponder(404, `{"data":null}`))

		code, result, _ := runModule(t, writeArgs(t, map[string]any{"state": "current"}))
		require.Equal(t, 0, code)
		require.Equal(t, "absent", result["status"])
	})

	t.Run("failed start aborts on 595", func(t *testing.T) {
		transport := setupTransport(t)
		registerLogin(transport)
		transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
			httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{"status": "stopped"}}))
		transport.RegisterResponder(http.MethodPost, testBaseURL+"/nodes/pve/qemu/100/status/start",
			httpmock.NewStringResponder(595, `{"data":null}`))

		code, result, _ := runModule(t, writeArgs(t, map[string]any{"state": "started"}))
		require.Equal(t, 1, code)
		require.Equal(t, true, result["failed"])
		require.Equal(t, false, result["changed"])
		require.Contains(t, result["msg"], "595")
	})

	t.Run("failed delete aborts on 409", func(t *testing.T) {
		transport := setupTransport(t)
		registerLogin(transport)
		transport.RegisterResponder(http.MethodGet, testBaseURL+"/nodes/pve/qemu/100/status/current",
			httpmock.NewJsonResponderOrPanic(200, map[string]any{"data": map[string]any{"status": "running"}}))
		transport.RegisterResponder(http.MethodDelete, `=~^`+testBaseURL+`/nodes/pve/qemu/100`,
			httpmock.NewStringResponder(409, `{"data":null}`))

		code, result, _ := runModule(t, writeArgs(t, map[string]any{"state": "absent"}))
		require.Equal(t, 1, code)
		require.Equal(t, true, result["failed"])
		require.Equal(t, false, result["changed"])
	})

	t.Run("login rejected with 502", func(t *testing.T) {
		transport := setupTransport(t)
		transport.RegisterResponder(http.MethodPost, testBaseURL+"/access/ticket",
			httpmock.NewStringResponder(502, `{"data":{"ticket":"bogus"}}`))

		code, result, _ := runModule(t, writeArgs(t, nil))
		require.Equal(t, 1, code)
		require.Regexp(t, "^Authentication failed: ", result["msg"])
	})
}
