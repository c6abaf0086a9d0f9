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
	"errors"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"k8s.io/utils/ptr"

	"github.com/ionos-cloud/proxmox-vm-tools/pkg/consts"
	pveerrors "github.com/ionos-cloud/proxmox-vm-tools/pkg/errors"
	capmox "github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/proxmox/proxmoxtest"
	"github.com/ionos-cloud/proxmox-vm-tools/pkg/scope"
)

const testVMID = int64(100)

// observed VM states used by the transition table.
const (
	observedAbsent  = "absent"
	observedStopped = consts.VMStatusStopped
	observedPaused  = "paused"
	observedRunning = consts.VMStatusRunning
)

// mutating calls the reconciler may issue.
const (
	callNone   = ""
	callCreate = "create"
	callDelete = "delete"
	callStart  = "start"
	callStop   = "stop"
)

var testDescriptor = scope.VMDescriptor{
	VMID:   testVMID,
	Name:   "test-vm",
	Memory: ptr.To(2048),
	Cores:  ptr.To(2),
}

var testCreateOptions = []any{
	capmox.VirtualMachineOption{Name: "name", Value: "test-vm"},
	capmox.VirtualMachineOption{Name: "memory", Value: 2048},
	capmox.VirtualMachineOption{Name: "cores", Value: 2},
}

func newTestScope(client capmox.Client, state consts.DesiredState, checkMode bool) *scope.VMScope {
	logger := logr.Discard()
	s, err := scope.NewVMScope(scope.VMScopeParams{
		ProxmoxClient: client,
		Logger:        &logger,
		State:         state,
		VM:            testDescriptor,
		CheckMode:     checkMode,
	})
	Expect(err).NotTo(HaveOccurred())
	return s
}

func notFoundProbe() capmox.ProbeResult {
	return capmox.ProbeResult{
		Kind: capmox.ProbeNotFound,
		Err:  &pveerrors.NotFoundError{Op: "get status of vm 100", Err: errors.New("500 Configuration file 'nodes/pve/qemu-server/100.conf' does not exist")},
	}
}

func foundProbe(status string) capmox.ProbeResult {
	return capmox.ProbeResult{Kind: capmox.ProbeFound, Status: &capmox.VMStatus{VMID: testVMID, Status: status}}
}

// expectObserved programs the probe and, where the reconciler needs it, the strict status query.
func expectObserved(client *proxmoxtest.MockClient, state consts.DesiredState, observed string) {
	if observed == observedAbsent {
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(notFoundProbe()).Once()
		return
	}

	client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observed)).Once()
	switch state {
	case consts.StateStarted, consts.StateStopped, consts.StateCurrent:
		client.EXPECT().GetVMStatus(mock.Anything, testVMID).
			Return(&capmox.VMStatus{VMID: testVMID, Status: observed, Fields: map[string]any{"status": observed}}, nil).Once()
	}
}

func expectCall(client *proxmoxtest.MockClient, call string) {
	switch call {
	case callCreate:
		client.EXPECT().CreateVM(mock.Anything, testVMID, testCreateOptions...).
			Return("UPID:pve:1:qmcreate:100:root@pam:", nil).Once()
	case callDelete:
		client.EXPECT().DeleteVM(mock.Anything, testVMID, true).Return("UPID:pve:2:qmdestroy:100:root@pam:", nil).Once()
	case callStart:
		client.EXPECT().StartVM(mock.Anything, testVMID).Return("UPID:pve:3:qmstart:100:root@pam:", nil).Once()
	case callStop:
		client.EXPECT().StopVM(mock.Anything, testVMID).Return("UPID:pve:4:qmstop:100:root@pam:", nil).Once()
	}
}

var _ = Describe("ReconcileVM", func() {
	var (
		ctx    context.Context
		client *proxmoxtest.MockClient
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = proxmoxtest.NewMockClient(GinkgoT())
	})

	DescribeTable("transition table",
		func(state consts.DesiredState, observed, call string, changed bool, status string) {
			expectObserved(client, state, observed)
			expectCall(client, call)

			result, err := ReconcileVM(ctx, newTestScope(client, state, false))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.VMID).To(Equal(testVMID))
			Expect(result.Changed).To(Equal(changed))
			Expect(result.Status).To(Equal(status))
		},
		Entry("present, absent: create", consts.StatePresent, observedAbsent, callCreate, true, ""),
		Entry("present, stopped: no-op", consts.StatePresent, observedStopped, callNone, false, ""),
		Entry("present, running: no-op", consts.StatePresent, observedRunning, callNone, false, ""),

		Entry("absent, absent: no-op", consts.StateAbsent, observedAbsent, callNone, false, ""),
		Entry("absent, stopped: delete", consts.StateAbsent, observedStopped, callDelete, true, ""),
		Entry("absent, running: delete", consts.StateAbsent, observedRunning, callDelete, true, ""),

		Entry("started, absent: no-op", consts.StateStarted, observedAbsent, callNone, false, ""),
		Entry("started, stopped: start", consts.StateStarted, observedStopped, callStart, true, ""),
		Entry("started, paused: start", consts.StateStarted, observedPaused, callStart, true, ""),
		Entry("started, running: no-op", consts.StateStarted, observedRunning, callNone, false, ""),

		Entry("stopped, absent: no-op", consts.StateStopped, observedAbsent, callNone, false, ""),
		Entry("stopped, stopped: no-op", consts.StateStopped, observedStopped, callNone, false, ""),
		Entry("stopped, paused: no-op", consts.StateStopped, observedPaused, callNone, false, ""),
		Entry("stopped, running: stop", consts.StateStopped, observedRunning, callStop, true, ""),

		Entry("current, absent", consts.StateCurrent, observedAbsent, callNone, false, "absent"),
		Entry("current, stopped", consts.StateCurrent, observedStopped, callNone, false, "stopped"),
		Entry("current, running", consts.StateCurrent, observedRunning, callNone, false, "running"),
	)

	DescribeTable("check mode never mutates",
		func(state consts.DesiredState, observed string, changed bool) {
			// No mutating expectation is registered: any such call fails the mock.
			expectObserved(client, state, observed)

			result, err := ReconcileVM(ctx, newTestScope(client, state, true))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Changed).To(Equal(changed))
		},
		Entry("present, absent", consts.StatePresent, observedAbsent, true),
		Entry("present, running", consts.StatePresent, observedRunning, false),
		Entry("absent, stopped", consts.StateAbsent, observedStopped, true),
		Entry("absent, running", consts.StateAbsent, observedRunning, true),
		Entry("absent, absent", consts.StateAbsent, observedAbsent, false),
		Entry("started, stopped", consts.StateStarted, observedStopped, true),
		Entry("started, running", consts.StateStarted, observedRunning, false),
		Entry("stopped, running", consts.StateStopped, observedRunning, true),
		Entry("stopped, stopped", consts.StateStopped, observedStopped, false),
	)

	It("is idempotent for present", func() {
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(notFoundProbe()).Once()
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedStopped)).Once()
		expectCall(client, callCreate)

		s := newTestScope(client, consts.StatePresent, false)

		first, err := ReconcileVM(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(first.Changed).To(BeTrue())

		second, err := ReconcileVM(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Changed).To(BeFalse())
		client.AssertNumberOfCalls(GinkgoT(), "CreateVM", 1)
	})

	It("treats an unreachable server as an absent vm", func() {
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(capmox.ProbeResult{
			Kind: capmox.ProbeTransportFailure,
			Err:  &pveerrors.TransportError{Op: "get status of vm 100", Err: errors.New("i/o timeout")},
		}).Once()

		result, err := ReconcileVM(ctx, newTestScope(client, consts.StateCurrent, false))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Status).To(Equal(consts.VMStatusAbsent))
	})

	It("surfaces a failing status query", func() {
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedRunning)).Once()
		client.EXPECT().GetVMStatus(mock.Anything, testVMID).
			Return(nil, &pveerrors.TransportError{Op: "get status of vm 100", Err: errors.New("connection reset")}).Once()

		_, err := ReconcileVM(ctx, newTestScope(client, consts.StateStopped, false))
		Expect(err).To(HaveOccurred())
		Expect(pveerrors.IsTransport(err)).To(BeTrue())
	})

	It("surfaces a failing mutating call without further calls", func() {
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(notFoundProbe()).Once()
		client.EXPECT().CreateVM(mock.Anything, testVMID, testCreateOptions...).
			Return("", &pveerrors.APIError{Op: "create vm 100", Err: errors.New("500 storage 'local-lvm' does not support vm images")}).Once()

		result, err := ReconcileVM(ctx, newTestScope(client, consts.StatePresent, false))
		Expect(err).To(HaveOccurred())
		Expect(pveerrors.IsAPI(err)).To(BeTrue())
		Expect(result.Changed).To(BeFalse())
	})

	It("deletes a running vm without stopping it first", func() {
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedRunning)).Once()
		client.EXPECT().DeleteVM(mock.Anything, testVMID, true).
			Return("", &pveerrors.APIError{Op: "delete vm 100", Err: errors.New("500 VM 100 is running - destroy failed")}).Once()

		_, err := ReconcileVM(ctx, newTestScope(client, consts.StateAbsent, false))
		Expect(err).To(MatchError(ContainSubstring("is running")))
		client.AssertNotCalled(GinkgoT(), "StopVM", mock.Anything, testVMID)
	})

	It("honours purge=false", func() {
		client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedStopped)).Once()
		client.EXPECT().DeleteVM(mock.Anything, testVMID, false).Return("UPID:pve:2:qmdestroy:100:root@pam:", nil).Once()

		logger := logr.Discard()
		s, err := scope.NewVMScope(scope.VMScopeParams{
			ProxmoxClient: client,
			Logger:        &logger,
			State:         consts.StateAbsent,
			VM:            testDescriptor,
			Purge:         ptr.To(false),
		})
		Expect(err).NotTo(HaveOccurred())

		result, err := ReconcileVM(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Changed).To(BeTrue())
	})

	Context("with update_config", func() {
		newConfigScope := func(checkMode bool) *scope.VMScope {
			logger := logr.Discard()
			vm := testDescriptor
			vm.Config = map[string]any{"onboot": 1, "agent": "enabled=1"}
			s, err := scope.NewVMScope(scope.VMScopeParams{
				ProxmoxClient: client,
				Logger:        &logger,
				State:         consts.StatePresent,
				VM:            vm,
				CheckMode:     checkMode,
				UpdateConfig:  true,
			})
			Expect(err).NotTo(HaveOccurred())
			return s
		}

		It("applies the free-form config to an existing vm", func() {
			client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedRunning)).Once()
			client.EXPECT().GetVMConfig(mock.Anything, testVMID).Return(map[string]any{"name": "test-vm"}, nil).Once()
			client.EXPECT().ConfigureVM(mock.Anything, testVMID,
				capmox.VirtualMachineOption{Name: "agent", Value: "enabled=1"},
				capmox.VirtualMachineOption{Name: "onboot", Value: 1},
			).Return("", nil).Once()

			result, err := ReconcileVM(ctx, newConfigScope(false))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Changed).To(BeTrue())
		})

		It("only sends the keys that differ", func() {
			client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedRunning)).Once()
			client.EXPECT().GetVMConfig(mock.Anything, testVMID).Return(map[string]any{"onboot": float64(1), "agent": "0"}, nil).Once()
			client.EXPECT().ConfigureVM(mock.Anything, testVMID,
				capmox.VirtualMachineOption{Name: "agent", Value: "enabled=1"},
			).Return("", nil).Once()

			result, err := ReconcileVM(ctx, newConfigScope(false))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Changed).To(BeTrue())
		})

		It("is a no-op when the config already matches", func() {
			client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedRunning)).Twice()
			client.EXPECT().GetVMConfig(mock.Anything, testVMID).Return(map[string]any{"onboot": float64(1), "agent": "enabled=1"}, nil).Twice()

			for _, checkMode := range []bool{false, true} {
				result, err := ReconcileVM(ctx, newConfigScope(checkMode))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Changed).To(BeFalse())
			}
		})

		It("does not configure in check mode", func() {
			client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedRunning)).Once()
			client.EXPECT().GetVMConfig(mock.Anything, testVMID).Return(map[string]any{}, nil).Once()

			result, err := ReconcileVM(ctx, newConfigScope(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Changed).To(BeTrue())
		})

		It("fails when the current config cannot be read", func() {
			client.EXPECT().ProbeVM(mock.Anything, testVMID).Return(foundProbe(observedRunning)).Once()
			client.EXPECT().GetVMConfig(mock.Anything, testVMID).Return(nil, errors.New("HTTP 403 Permission check failed")).Once()

			result, err := ReconcileVM(ctx, newConfigScope(false))
			Expect(err).To(HaveOccurred())
			Expect(result.Changed).To(BeFalse())
		})
	})
})
