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

// main is the entry point of proxmox-get-vm-ip. It prints the first
// non-loopback IPv4 address the QEMU guest agent of a VM reports.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/luthermonson/go-proxmox"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ionos-cloud/proxmox-vm-tools/internal/service/vmservice"
	"github.com/ionos-cloud/proxmox-vm-tools/internal/tlshelper"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
	pveerrors "github.com/ionos-cloud/proxmox-vm-tools/pkg/errors"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox/goproxmox"
)

// newHTTPClient builds the client used for the login and the agent query.
var newHTTPClient = tlshelper.NewHTTPClient

type options struct {
	debug   bool
	port    int
	ranges  []string
	tls     tlshelper.Config
	timeout int
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run resolves the address and returns the process exit code. Only the
// address is ever written to stdout; diagnostics go to stderr and only
// with --debug.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts options
	exitCode := 0

	cmd := &cobra.Command{
		Use:           "proxmox-get-vm-ip HOST USER PASSWORD NODE VMID",
		Short:         "Print the IPv4 address reported by a VM's guest agent",
		Args:          cobra.ExactArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.BoolVar(&opts.debug, "debug", false, "Print diagnostics to stderr.")
	fs.IntVar(&opts.port, "port", consts.DefaultPort, "Proxmox API port.")
	fs.IntVar(&opts.timeout, "timeout", int(consts.DefaultResolveTimeout.Seconds()), "Timeout in seconds for every API call.")
	fs.BoolVar(&opts.tls.InsecureSkipVerify, "insecure-skip-tls-verify", false, "Do not verify the server certificate.")
	fs.StringVar(&opts.tls.CAFile, "ca-file", "", "PEM bundle added to the system roots.")
	fs.StringSliceVar(&opts.ranges, "cidr", nil, "Only accept addresses within these prefixes or a-b ranges. May be repeated.")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		configureLogging(opts.debug, stderr)

		ip, err := resolve(cmd.Context(), opts, args)
		if err != nil {
			exitCode = 1
			if opts.debug {
				report(stderr, err)
			}
			return nil
		}
		_, err = fmt.Fprintln(stdout, ip)
		return err
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return exitCode
}

func configureLogging(debug bool, stderr io.Writer) {
	if !debug {
		klog.LogToStderr(false)
		klog.SetOutput(io.Discard)
		return
	}
	klog.LogToStderr(false)
	klog.SetOutput(stderr)
}

func resolve(ctx context.Context, opts options, args []string) (string, error) {
	vmID, err := strconv.ParseInt(args[4], 10, 64)
	if err != nil || vmID <= 0 {
		return "", fmt.Errorf("invalid vmid %q", args[4])
	}
	if opts.timeout <= 0 {
		return "", fmt.Errorf("timeout must be a positive number of seconds, got %d", opts.timeout)
	}

	ranges, err := vmservice.ParseRanges(opts.ranges)
	if err != nil {
		return "", err
	}

	opts.tls.Timeout = time.Duration(opts.timeout) * time.Second
	httpClient, err := newHTTPClient(opts.tls)
	if err != nil {
		return "", err
	}

	logger := klog.Background().WithValues("invocation", uuid.NewString())

	return vmservice.ResolveGuestIP(ctx, logger, vmservice.ResolveParams{
		Credentials: goproxmox.Credentials{
			Host:     args[0],
			Port:     opts.port,
			Username: args[1],
			Password: args[2],
			Node:     args[3],
		},
		VMID:          vmID,
		ClientOptions: []proxmox.Option{goproxmox.WithHTTPClient(httpClient)},
		SelectOptions: []vmservice.SelectOption{vmservice.WithinRanges(ranges)},
	})
}

func report(w io.Writer, err error) {
	var queryErr *vmservice.GuestQueryError
	switch {
	case pveerrors.IsAuthentication(err):
		fmt.Fprintf(w, "Authentication failed: %v\n", err)
	case errors.As(err, &queryErr):
		fmt.Fprintf(w, "Failed to get network interfaces: %v\n", queryErr.Err)
		fmt.Fprintf(w, "URL: %s\n", queryErr.URL)
	case errors.Is(err, vmservice.ErrNoGuestIP):
		fmt.Fprintln(w, "No IP address found")
	default:
		fmt.Fprintln(w, err)
	}
}
