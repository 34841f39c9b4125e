package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/internal/services"
	"github.com/collabsec/admin-console/pkg/backend"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

type fakeVMClient struct {
	vmList    *backend.VMList
	vmListErr error

	status    *backend.VMStatusByOS
	statusErr error

	actionResp *backend.VMActionResponse
	actionErr  error

	listCalls    int
	statusCalls  int
	startCalls   int
	stopCalls    int
	restartCalls int

	lastOS       models.InstanceOS
	lastEmployee string
}

func (f *fakeVMClient) GetAllVMs(ctx context.Context) (*backend.VMList, error) {
	f.listCalls++
	return f.vmList, f.vmListErr
}

func (f *fakeVMClient) GetVMStatus(ctx context.Context, employeeID string) (*backend.VMStatusByOS, error) {
	f.statusCalls++
	f.lastEmployee = employeeID
	return f.status, f.statusErr
}

func (f *fakeVMClient) StartVM(ctx context.Context, os models.InstanceOS, employeeID string) (*backend.VMActionResponse, error) {
	f.startCalls++
	f.lastOS, f.lastEmployee = os, employeeID
	return f.actionResp, f.actionErr
}

func (f *fakeVMClient) StopVM(ctx context.Context, os models.InstanceOS, employeeID string) (*backend.VMActionResponse, error) {
	f.stopCalls++
	f.lastOS, f.lastEmployee = os, employeeID
	return f.actionResp, f.actionErr
}

func (f *fakeVMClient) RestartVM(ctx context.Context, os models.InstanceOS, employeeID string) (*backend.VMActionResponse, error) {
	f.restartCalls++
	f.lastOS, f.lastEmployee = os, employeeID
	return f.actionResp, f.actionErr
}

type notifierCall struct {
	title       string
	description string
}

type fakeNotifier struct {
	successes []notifierCall
	errors    []notifierCall
	infos     []notifierCall
}

func (f *fakeNotifier) Success(title, description string) {
	f.successes = append(f.successes, notifierCall{title, description})
}

func (f *fakeNotifier) Error(title, description string) {
	f.errors = append(f.errors, notifierCall{title, description})
}

func (f *fakeNotifier) Info(title, description string) {
	f.infos = append(f.infos, notifierCall{title, description})
}

var _ = Describe("VMService", func() {
	var (
		ctx      context.Context
		client   *fakeVMClient
		notifier *fakeNotifier
		service  *services.VMService
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &fakeVMClient{}
		notifier = &fakeNotifier{}

		now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
		mapper := services.NewVMMapperWithClock(
			fixedMetrics{res: models.VMResources{CPU: 40, Memory: 50, Disk: 30, Network: 20}},
			func() time.Time { return now },
		)
		service = services.NewVMService(client, mapper, notifier)
	})

	Describe("LoadVMs in all-VMs mode", func() {
		It("should map every record in the response", func() {
			client.vmList = &backend.VMList{Vms: []backend.VM{
				{
					ID: 1, InstanceID: "i-win", InstanceOS: "windows",
					EmployeeID: "emp-001", Status: "Running",
					UpdatedAt: "2025-06-01T09:55:00",
				},
				{
					ID: 2, InstanceID: "i-lin", InstanceOS: "linux",
					EmployeeID: "emp-002", Status: "Stopped",
					UpdatedAt: "2025-06-01T08:00:00",
				},
			}}

			vms := service.LoadVMs(ctx, "")
			Expect(vms).To(HaveLen(2))
			Expect(vms[0].ID).To(Equal("i-win"))
			Expect(vms[0].Uptime).To(Equal("2h 5m"))
			Expect(vms[1].Status).To(Equal(models.VMStatusStopped))
			Expect(notifier.errors).To(BeEmpty())
		})

		// Given a response without the vms field
		// When the list is loaded
		// Then exactly the two builtin entries come back and the user is told
		It("should fall back to the builtin dataset on a malformed body", func() {
			client.vmList = &backend.VMList{}

			vms := service.LoadVMs(ctx, "")
			Expect(vms).To(HaveLen(2))
			Expect(vms[0].ID).To(Equal("vm-win-001"))
			Expect(vms[1].ID).To(Equal("vm-lin-002"))
			Expect(notifier.errors).To(HaveLen(1))
			Expect(notifier.errors[0].title).To(Equal("Failed to load VMs"))
		})

		It("should fall back when the backend is unreachable", func() {
			client.vmListErr = srvErrors.NewBackendError("get all vms", 503, "backend down")

			vms := service.LoadVMs(ctx, "")
			Expect(vms).To(HaveLen(2))
			Expect(notifier.errors).To(HaveLen(1))
			Expect(notifier.errors[0].description).To(Equal("backend down"))
		})

		It("should fall back when a record cannot be mapped", func() {
			client.vmList = &backend.VMList{Vms: []backend.VM{
				{ID: 1, InstanceOS: "windows", UpdatedAt: "2025-06-01T08:00:00"},
			}}

			vms := service.LoadVMs(ctx, "")
			Expect(vms).To(HaveLen(2))
			Expect(vms[0].ID).To(Equal("vm-win-001"))
			Expect(notifier.errors).To(HaveLen(1))
		})

		// Given one caller mutated the slice it was handed
		// When the list is loaded again
		// Then the fresh copy is unaffected
		It("should hand out fresh builtin copies on every call", func() {
			client.vmList = &backend.VMList{}

			first := service.LoadVMs(ctx, "")
			first[0].Status = models.VMStatusPaused
			first[0].Resources.CPU = 99

			second := service.LoadVMs(ctx, "")
			Expect(second[0].Status).To(Equal(models.VMStatusRunning))
			Expect(second[0].Resources.CPU).To(Equal(45))
		})
	})

	Describe("LoadVMs in single-user mode", func() {
		It("should overlay the per-OS status onto the builtin entries", func() {
			client.status = &backend.VMStatusByOS{Windows: "Stopped", Linux: "Running"}

			vms := service.LoadVMs(ctx, "emp-001")
			Expect(client.statusCalls).To(Equal(1))
			Expect(client.lastEmployee).To(Equal("emp-001"))
			Expect(vms).To(HaveLen(2))

			windows, linux := vms[0], vms[1]
			Expect(windows.OS).To(Equal(models.InstanceOSWindows))
			Expect(windows.Status).To(Equal(models.VMStatusStopped))
			Expect(windows.Health).To(Equal(models.VMHealthUnknown))
			Expect(windows.Uptime).To(Equal("0h 0m"))
			Expect(windows.Resources).To(Equal(models.VMResources{}))

			Expect(linux.OS).To(Equal(models.InstanceOSLinux))
			Expect(linux.Status).To(Equal(models.VMStatusRunning))
			Expect(linux.Health).To(Equal(models.VMHealthHealthy))
		})

		It("should normalize unknown statuses in the overlay", func() {
			client.status = &backend.VMStatusByOS{Windows: "rebooting", Linux: "PAUSED"}

			vms := service.LoadVMs(ctx, "emp-001")
			Expect(vms[0].Status).To(Equal(models.VMStatusError))
			Expect(vms[1].Status).To(Equal(models.VMStatusPaused))
		})

		It("should fall back when the status call fails", func() {
			client.statusErr = srvErrors.NewBackendError("vm status", 500, "boom")

			vms := service.LoadVMs(ctx, "emp-001")
			Expect(vms).To(HaveLen(2))
			Expect(vms[0].Status).To(Equal(models.VMStatusRunning))
			Expect(notifier.errors).To(HaveLen(1))
			Expect(notifier.errors[0].title).To(Equal("Failed to load VM status"))
		})
	})

	Describe("DispatchAction", func() {
		BeforeEach(func() {
			client.actionResp = &backend.VMActionResponse{
				Message: "VM started successfully",
				URL:     "https://guac.local/c/1",
			}
		})

		It("should route start to the start endpoint", func() {
			resp, err := service.DispatchAction(ctx, "vm-win-001", "start", models.InstanceOSWindows, "emp-001")
			Expect(err).NotTo(HaveOccurred())
			Expect(client.startCalls).To(Equal(1))
			Expect(client.lastOS).To(Equal(models.InstanceOSWindows))
			Expect(client.lastEmployee).To(Equal("emp-001"))
			Expect(resp.URL).To(Equal("https://guac.local/c/1"))

			Expect(notifier.successes).To(HaveLen(1))
			Expect(notifier.successes[0].description).To(Equal("VM started successfully"))
		})

		It("should accept action names case-insensitively", func() {
			_, err := service.DispatchAction(ctx, "vm-win-001", "STOP", models.InstanceOSWindows, "emp-001")
			Expect(err).NotTo(HaveOccurred())
			Expect(client.stopCalls).To(Equal(1))
		})

		// Given the reset alias
		// When it is dispatched
		// Then the restart endpoint is called, exactly as for restart
		It("should treat reset as restart", func() {
			_, err := service.DispatchAction(ctx, "vm-lin-002", "reset", models.InstanceOSLinux, "emp-001")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.DispatchAction(ctx, "vm-lin-002", "restart", models.InstanceOSLinux, "emp-001")
			Expect(err).NotTo(HaveOccurred())

			Expect(client.restartCalls).To(Equal(2))
			Expect(client.startCalls).To(BeZero())
			Expect(client.stopCalls).To(BeZero())
		})

		// Given an action outside the supported set
		// When it is dispatched
		// Then it fails before any backend call and emits no notification
		It("should reject unsupported actions without calling the backend", func() {
			_, err := service.DispatchAction(ctx, "vm-win-001", "launch", models.InstanceOSWindows, "emp-001")
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsUnsupportedActionError(err)).To(BeTrue())

			Expect(client.startCalls).To(BeZero())
			Expect(client.stopCalls).To(BeZero())
			Expect(client.restartCalls).To(BeZero())
			Expect(notifier.successes).To(BeEmpty())
			Expect(notifier.errors).To(BeEmpty())
		})

		It("should fall back to a generic success message", func() {
			client.actionResp = &backend.VMActionResponse{}

			_, err := service.DispatchAction(ctx, "vm-lin-002", "stop", models.InstanceOSLinux, "emp-001")
			Expect(err).NotTo(HaveOccurred())
			Expect(notifier.successes).To(HaveLen(1))
			Expect(notifier.successes[0].description).To(Equal("VM stop completed successfully"))
		})

		// Given a failing backend call
		// When the action is dispatched
		// Then the user is notified and the failure is re-raised to the caller
		It("should notify and re-raise backend failures", func() {
			client.actionErr = srvErrors.NewBackendError("start vm", 502, "hypervisor offline")

			_, err := service.DispatchAction(ctx, "vm-win-001", "start", models.InstanceOSWindows, "emp-001")
			Expect(err).To(HaveOccurred())

			be, ok := srvErrors.AsBackendError(err)
			Expect(ok).To(BeTrue())
			Expect(be.StatusCode).To(Equal(502))

			Expect(notifier.errors).To(HaveLen(1))
			Expect(notifier.errors[0].description).To(Equal("hypervisor offline"))
			Expect(notifier.successes).To(BeEmpty())
		})

		It("should use a generic error description when the backend gave none", func() {
			client.actionErr = srvErrors.NewBackendError("restart vm", 500, "")

			_, err := service.DispatchAction(ctx, "vm-lin-002", "restart", models.InstanceOSLinux, "emp-001")
			Expect(err).To(HaveOccurred())
			Expect(notifier.errors).To(HaveLen(1))
			Expect(notifier.errors[0].description).To(Equal("Failed to restart VM"))
		})
	})
})
