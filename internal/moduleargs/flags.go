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

package moduleargs

import (
	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
)

// Flags holds the command line overrides of Args.
type Flags struct {
	fs *pflag.FlagSet

	apiHost, apiUser, apiPassword, node string
	apiPort                             int
	vmID                                int64
	state                               string
	name                                string
	memory, cores, sockets              int
	config                              map[string]string
	purge, updateConfig                 bool
	insecure                            bool
	caFile                              string
	timeout                             int
	checkMode                           bool
}

// BindFlags registers the module flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVar(&f.apiHost, "api-host", "", "Proxmox API host. Defaults to $"+EnvHost+".")
	fs.IntVar(&f.apiPort, "api-port", consts.DefaultPort, "Proxmox API port.")
	fs.StringVar(&f.apiUser, "api-user", "", "Proxmox API user, e.g. root@pam. Defaults to $"+EnvUser+".")
	fs.StringVar(&f.apiPassword, "api-password", "", "Proxmox API password. Defaults to $"+EnvPassword+".")
	fs.StringVar(&f.node, "node", "", "Proxmox node name. Defaults to $"+EnvNode+".")
	fs.Int64Var(&f.vmID, "vmid", 0, "VM ID.")
	fs.StringVar(&f.state, "state", string(consts.StatePresent), "Desired state: present, absent, started, stopped or current.")
	fs.StringVar(&f.name, "name", "", "VM name.")
	fs.IntVar(&f.memory, "memory", 0, "Memory in MB.")
	fs.IntVar(&f.cores, "cores", 0, "Number of CPU cores.")
	fs.IntVar(&f.sockets, "sockets", 0, "Number of CPU sockets.")
	fs.StringToStringVar(&f.config, "config", nil, "Additional VM configuration, e.g. --config net0=virtio,bridge=vmbr0.")
	fs.BoolVar(&f.purge, "purge", true, "Remove disks, jobs and HA entries when deleting.")
	fs.BoolVar(&f.updateConfig, "update-config", false, "Apply the --config keys that differ from the current config of an existing VM when state is present.")
	fs.BoolVar(&f.insecure, "insecure-skip-tls-verify", false, "Do not verify the server certificate.")
	fs.StringVar(&f.caFile, "ca-file", "", "PEM bundle added to the system roots.")
	fs.IntVar(&f.timeout, "timeout", int(consts.DefaultReconcileTimeout.Seconds()), "Timeout in seconds for every API call.")
	fs.BoolVar(&f.checkMode, "check", false, "Report what would change without changing anything.")

	return f
}

// Apply copies every flag set on the command line into args.
func (f *Flags) Apply(args *Args) {
	changed := f.fs.Changed

	if changed("api-host") {
		args.APIHost = f.apiHost
	}
	if changed("api-port") {
		args.APIPort = f.apiPort
	}
	if changed("api-user") {
		args.APIUser = f.apiUser
	}
	if changed("api-password") {
		args.APIPassword = f.apiPassword
	}
	if changed("node") {
		args.Node = f.node
	}
	if changed("vmid") {
		args.VMID = f.vmID
	}
	if changed("state") {
		args.State = consts.DesiredState(f.state)
	}
	if changed("name") {
		args.Name = f.name
	}
	if changed("memory") {
		args.Memory = ptr.To(f.memory)
	}
	if changed("cores") {
		args.Cores = ptr.To(f.cores)
	}
	if changed("sockets") {
		args.Sockets = ptr.To(f.sockets)
	}
	if changed("config") {
		if args.Config == nil {
			args.Config = make(map[string]any, len(f.config))
		}
		for k, v := range f.config {
			args.Config[k] = v
		}
	}
	if changed("purge") {
		args.Purge = ptr.To(f.purge)
	}
	if changed("update-config") {
		args.UpdateConfig = f.updateConfig
	}
	if changed("insecure-skip-tls-verify") {
		args.ValidateCerts = ptr.To(!f.insecure)
	}
	if changed("ca-file") {
		args.CAFile = f.caFile
	}
	if changed("timeout") {
		args.Timeout = ptr.To(f.timeout)
	}
	if changed("check") {
		args.CheckMode = f.checkMode
	}
}
