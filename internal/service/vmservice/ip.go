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

package vmservice

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	"github.com/go-logr/logr"
	"github.com/luthermonson/go-proxmox"
	"github.com/pkg/errors"
	"go4.org/netipx"

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
	capmox "github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox/goproxmox"
)

// ErrNoGuestIP is returned when no interface reports a usable IPv4 address.
var ErrNoGuestIP = errors.New("no IP address found")

type selectConfig struct {
	ranges *netipx.IPSet
}

// SelectOption tunes SelectGuestIPv4.
type SelectOption func(*selectConfig)

// WithinRanges only accepts candidates contained in set. A nil set accepts all.
func WithinRanges(set *netipx.IPSet) SelectOption {
	return func(c *selectConfig) {
		c.ranges = set
	}
}

// ParseRanges builds an IP set from CIDR prefixes ("10.0.0.0/24") and
// inclusive ranges ("10.0.0.10-10.0.0.20"). No input yields a nil set.
func ParseRanges(ranges []string) (*netipx.IPSet, error) {
	if len(ranges) == 0 {
		return nil, nil
	}

	var b netipx.IPSetBuilder
	for _, r := range ranges {
		if strings.Contains(r, "-") {
			ipRange, err := netipx.ParseIPRange(r)
			if err != nil {
				return nil, fmt.Errorf("invalid range %q: %w", r, err)
			}
			b.AddRange(ipRange)
			continue
		}
		prefix, err := netip.ParsePrefix(r)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix %q: %w", r, err)
		}
		b.AddPrefix(prefix)
	}
	return b.IPSet()
}

// SelectGuestIPv4 walks the interfaces and their addresses in agent order and
// returns the first address that is non-empty, not in 127.0.0.0/8 and
// contains no colon. The checks are textual: anything without a colon is
// taken as IPv4.
func SelectGuestIPv4(ifaces []capmox.GuestNetworkInterface, opts ...SelectOption) (string, bool) {
	var cfg selectConfig
	for _, o := range opts {
		o(&cfg)
	}

	for _, iface := range ifaces {
		for _, addr := range iface.IPAddresses {
			ip := addr.IPAddress
			if ip == "" || strings.HasPrefix(ip, consts.LoopbackPrefix) || strings.Contains(ip, ":") {
				continue
			}
			if cfg.ranges != nil && !inRanges(cfg.ranges, ip) {
				continue
			}
			return ip, true
		}
	}
	return "", false
}

func inRanges(set *netipx.IPSet, ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return set.Contains(addr)
}

// GuestQueryError is returned when the guest agent could not be queried.
type GuestQueryError struct {
	URL string
	Err error
}

func (e *GuestQueryError) Error() string {
	return fmt.Sprintf("failed to get network interfaces: %v", e.Err)
}

func (e *GuestQueryError) Unwrap() error {
	return e.Err
}

// ResolveParams defines the input of ResolveGuestIP.
type ResolveParams struct {
	Credentials goproxmox.Credentials
	VMID        int64

	// ClientOptions are applied to both the login and the guest agent call.
	ClientOptions []proxmox.Option
	SelectOptions []SelectOption
}

// ResolveGuestIP logs in, reads the guest agent's interfaces and returns the
// address chosen by SelectGuestIPv4. Errors are:
//   - *pveerrors.AuthenticationError when the login fails
//   - *GuestQueryError when the interfaces could not be read
//   - ErrNoGuestIP when no address qualifies
func ResolveGuestIP(ctx context.Context, logger logr.Logger, params ResolveParams) (string, error) {
	session, err := goproxmox.Authenticate(ctx, logger, params.Credentials, params.ClientOptions...)
	if err != nil {
		return "", err
	}

	client, err := goproxmox.NewAPIClient(logger, session, params.ClientOptions...)
	if err != nil {
		return "", err
	}

	ifaces, err := client.GuestNetworkInterfaces(ctx, params.VMID)
	if err != nil {
		return "", &GuestQueryError{
			URL: session.BaseURL() + client.NetworkInterfacesPath(params.VMID),
			Err: err,
		}
	}
	logger.V(4).Info("guest agent answered", "vmid", params.VMID, "interfaces", len(ifaces))

	ip, ok := SelectGuestIPv4(ifaces, params.SelectOptions...)
	if !ok {
		return "", ErrNoGuestIP
	}
	return ip, nil
}
