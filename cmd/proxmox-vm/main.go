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

// main is the entry point of the proxmox-vm module. It converges one QEMU VM
// to the desired state and prints an Ansible-compatible JSON result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ionos-cloud/proxmox-vm-tools/internal/moduleargs"
	"github.com/ionos-cloud/proxmox-vm-tools/internal/service/vmservice"
	"github.com/ionos-cloud/proxmox-vm-tools/internal/tlshelper"
	pveerrors "github.com/ionos-cloud/proxmox-vm-tools/pkg/errors"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox/goproxmox"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/scope"
)

// newHTTPClient builds the client used for every API call.
var newHTTPClient = tlshelper.NewHTTPClient

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the module and returns the process exit code. The result is
// always written to stdout, failures included.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	exitCode := 0

	cmd := &cobra.Command{
		Use:   "proxmox-vm [ARGS_FILE]",
		Short: "Ensure the state of a Proxmox QEMU VM",
		Long: "proxmox-vm converges a QEMU VM to the desired state: present, absent, started,\n" +
			"stopped or current. Arguments are read from an Ansible args file, flags\n" +
			"and PROXMOX_HOST, PROXMOX_USER, PROXMOX_PASSWORD and PROXMOX_NODE.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.Flags().AddGoFlagSet(klogFlags)
	flags := moduleargs.BindFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, positional []string) error {
		args, err := loadArgs(positional, flags)
		result := moduleargs.Result{VMID: args.VMID}
		if err == nil {
			result, err = reconcile(cmd.Context(), args)
		}
		if err != nil {
			exitCode = 1
			result = result.Fail(failureMessage(err))
		}
		return result.Write(stdout)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return exitCode
}

func loadArgs(positional []string, flags *moduleargs.Flags) (moduleargs.Args, error) {
	var args moduleargs.Args
	if len(positional) == 1 {
		var err error
		if args, err = moduleargs.Load(positional[0]); err != nil {
			return args, err
		}
	}
	flags.Apply(&args)
	args.ApplyEnvDefaults()
	return args, args.Validate()
}

func reconcile(ctx context.Context, args moduleargs.Args) (moduleargs.Result, error) {
	result := moduleargs.Result{VMID: args.VMID}

	logger := klog.Background().WithValues("invocation", uuid.NewString())
	logger.V(4).Info("module arguments", "args", args.Redacted())

	httpClient, err := newHTTPClient(args.TLSConfig())
	if err != nil {
		return result, err
	}

	pveClient, err := newProxmoxClient(ctx, logger, args, httpClient)
	if err != nil {
		return result, err
	}

	vmScope, err := scope.NewVMScope(scope.VMScopeParams{
		ProxmoxClient: pveClient,
		Logger:        &logger,
		State:         args.State,
		VM:            args.Descriptor(),
		CheckMode:     args.CheckMode,
		Purge:         args.Purge,
		UpdateConfig:  args.UpdateConfig,
	})
	if err != nil {
		return result, err
	}

	res, err := vmservice.ReconcileVM(ctx, vmScope)
	result.Changed = res.Changed
	result.Status = res.Status
	return result, err
}

func newProxmoxClient(ctx context.Context, logger logr.Logger, args moduleargs.Args, httpClient *http.Client) (*goproxmox.APIClient, error) {
	session, err := goproxmox.Authenticate(ctx, logger, args.Credentials(), goproxmox.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return goproxmox.NewAPIClient(logger, session, goproxmox.WithHTTPClient(httpClient))
}

func failureMessage(err error) string {
	if pveerrors.IsAuthentication(err) {
		return fmt.Sprintf("Authentication failed: %v", err)
	}
	return err.Error()
}
