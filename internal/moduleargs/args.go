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

// Package moduleargs reads the arguments of the proxmox-vm module and renders its result.
//
// Arguments come from an Ansible-style args file (JSON or YAML), command
// line flags and PROXMOX_* environment variables, in decreasing precedence:
// flags win over the file, the environment only fills what is still unset.
package moduleargs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/utils/env"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/ionos-cloud/proxmox-vm-tools/internal/tlshelper"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox/goproxmox"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/scope"
)

// Environment variables consulted for unset connection arguments.
const (
	EnvHost     = "PROXMOX_HOST"
	EnvUser     = "PROXMOX_USER"
	EnvPassword = "PROXMOX_PASSWORD"
	EnvNode     = "PROXMOX_NODE"
)

const redacted = "VALUE_SPECIFIED_IN_NO_LOG_PARAMETER"

// Args are the module arguments.
type Args struct {
	APIHost     string `json:"api_host"`
	APIPort     int    `json:"api_port,omitempty"`
	APIUser     string `json:"api_user"`
	APIPassword string `json:"api_password"`
	Node        string `json:"node"`

	VMID    int64               `json:"vmid"`
	State   consts.DesiredState `json:"state,omitempty"`
	Name    string              `json:"name,omitempty"`
	Memory  *int                `json:"memory,omitempty"`
	Cores   *int                `json:"cores,omitempty"`
	Sockets *int                `json:"sockets,omitempty"`
	Config  map[string]any      `json:"config,omitempty"`

	Purge        *bool `json:"purge,omitempty"`
	UpdateConfig bool  `json:"update_config,omitempty"`

	ValidateCerts *bool  `json:"validate_certs,omitempty"`
	CAFile        string `json:"ca_file,omitempty"`

	// Timeout is in seconds.
	Timeout *int `json:"timeout,omitempty"`

	CheckMode bool `json:"_ansible_check_mode,omitempty"`
}

// Load reads an args file. JSON and YAML are both accepted; unknown keys,
// such as Ansible's internal _ansible_* keys, are ignored.
func Load(path string) (Args, error) {
	raw, err := os.ReadFile(path) //#nosec:G304 // Intended to read the given file
	if err != nil {
		return Args{}, errors.Wrap(err, "reading module arguments")
	}
	return Parse(raw)
}

// Parse decodes args from JSON or YAML. Like Ansible's argument_spec,
// integer arguments also accept numeric strings ("100") and boolean
// arguments accept Ansible's boolean words ("yes", "no", "on", "off", ...).
func Parse(raw []byte) (Args, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return Args{}, errors.Wrap(err, "decoding module arguments")
	}
	if err := coerce(fields); err != nil {
		return Args{}, err
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return Args{}, errors.Wrap(err, "decoding module arguments")
	}
	var args Args
	if err := json.Unmarshal(normalized, &args); err != nil {
		return Args{}, errors.Wrap(err, "decoding module arguments")
	}
	return args, nil
}

var (
	intArgs  = []string{"api_port", "vmid", "memory", "cores", "sockets", "timeout"}
	boolArgs = []string{"purge", "update_config", "validate_certs", "_ansible_check_mode"}
)

// coerce converts templated string values of typed arguments in place.
func coerce(fields map[string]any) error {
	for _, key := range intArgs {
		s, ok := fields[key].(string)
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("argument %s is of type string and we were unable to convert to int: %q", key, s)
		}
		fields[key] = v
	}

	for _, key := range boolArgs {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		b, err := ansibleBool(v)
		if err != nil {
			return fmt.Errorf("argument %s: %w", key, err)
		}
		fields[key] = b
	}
	return nil
}

// ansibleBool accepts the values Ansible's boolean() does.
func ansibleBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case float64:
		switch v {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "y", "yes", "on", "1", "true", "t":
			return true, nil
		case "n", "no", "off", "0", "false", "f":
			return false, nil
		}
	}
	return false, fmt.Errorf("the value %v is not a valid boolean", v)
}

// ApplyEnvDefaults fills unset connection arguments from the environment.
func (a *Args) ApplyEnvDefaults() {
	for _, f := range []struct {
		value *string
		key   string
	}{
		{&a.APIHost, EnvHost},
		{&a.APIUser, EnvUser},
		{&a.APIPassword, EnvPassword},
		{&a.Node, EnvNode},
	} {
		if *f.value == "" {
			*f.value = env.GetString(f.key, "")
		}
	}
}

// Validate checks required arguments and the desired state.
func (a *Args) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		unset bool
	}{
		{"api_host", a.APIHost == ""},
		{"api_user", a.APIUser == ""},
		{"api_password", a.APIPassword == ""},
		{"node", a.Node == ""},
		{"vmid", a.VMID == 0},
	} {
		if f.unset {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	if a.VMID < 0 {
		return fmt.Errorf("vmid must be a positive integer, got %d", a.VMID)
	}
	if a.State == "" {
		a.State = consts.StatePresent
	}
	if !a.State.Valid() {
		return fmt.Errorf("value of state must be one of: %v, got: %s", consts.DesiredStates, a.State)
	}
	if a.Timeout != nil && *a.Timeout <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds, got %d", *a.Timeout)
	}
	return nil
}

// Redacted returns a copy safe to log.
func (a Args) Redacted() Args {
	if a.APIPassword != "" {
		a.APIPassword = redacted
	}
	return a
}

// Credentials returns the login data.
func (a *Args) Credentials() goproxmox.Credentials {
	return goproxmox.Credentials{
		Host:     a.APIHost,
		Port:     a.APIPort,
		Node:     a.Node,
		Username: a.APIUser,
		Password: a.APIPassword,
	}
}

// TLSConfig returns the transport settings. Certificates are verified
// unless validate_certs is explicitly false.
func (a *Args) TLSConfig() tlshelper.Config {
	timeout := consts.DefaultReconcileTimeout
	if a.Timeout != nil {
		timeout = time.Duration(*a.Timeout) * time.Second
	}
	return tlshelper.Config{
		InsecureSkipVerify: !ptr.Deref(a.ValidateCerts, true),
		CAFile:             a.CAFile,
		Timeout:            timeout,
	}
}

// Descriptor returns the VM the arguments describe.
func (a *Args) Descriptor() scope.VMDescriptor {
	return scope.VMDescriptor{
		VMID:    a.VMID,
		Name:    a.Name,
		Memory:  a.Memory,
		Cores:   a.Cores,
		Sockets: a.Sockets,
		Config:  a.Config,
	}
}

// Result is what the module prints on stdout.
type Result struct {
	Changed bool   `json:"changed"`
	VMID    int64  `json:"vmid"`
	Status  string `json:"status"`
	Failed  bool   `json:"failed,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// Fail marks the result as failed with msg.
func (r Result) Fail(msg string) Result {
	r.Failed = true
	r.Msg = msg
	return r
}

// Write renders the result as one JSON document.
func (r Result) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}
