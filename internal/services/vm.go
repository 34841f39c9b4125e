package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/collabsec/admin-console/internal/metrics"
	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/internal/notify"
	"github.com/collabsec/admin-console/pkg/backend"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

// VMClient is the slice of the backend client the VM service depends on.
type VMClient interface {
	GetAllVMs(ctx context.Context) (*backend.VMList, error)
	GetVMStatus(ctx context.Context, employeeID string) (*backend.VMStatusByOS, error)
	StartVM(ctx context.Context, os models.InstanceOS, employeeID string) (*backend.VMActionResponse, error)
	StopVM(ctx context.Context, os models.InstanceOS, employeeID string) (*backend.VMActionResponse, error)
	RestartVM(ctx context.Context, os models.InstanceOS, employeeID string) (*backend.VMActionResponse, error)
}

type VMService struct {
	client   VMClient
	mapper   *VMMapper
	notifier notify.Notifier
}

func NewVMService(client VMClient, mapper *VMMapper, notifier notify.Notifier) *VMService {
	return &VMService{
		client:   client,
		mapper:   mapper,
		notifier: notifier,
	}
}

// builtinVMs returns the dataset rendered when the backend cannot be
// reached. Every call builds fresh copies so overlays applied to one
// request never leak into the next.
func builtinVMs() []models.VirtualMachine {
	winSnap := time.Date(2025, time.June, 14, 9, 30, 0, 0, time.UTC)
	linSnap := time.Date(2025, time.June, 12, 17, 45, 0, 0, time.UTC)
	return []models.VirtualMachine{
		{
			ID:           "vm-win-001",
			Name:         "windows VM",
			OS:           models.InstanceOSWindows,
			Status:       models.VMStatusRunning,
			Health:       models.VMHealthHealthy,
			IPAddress:    "10.0.1.24",
			Uptime:       "3h 24m",
			Resources:    models.VMResources{CPU: 45, Memory: 62, Disk: 38, Network: 12},
			AssignedTo:   "emp-001",
			UserName:     "Dana Reyes",
			UserEmail:    "dana.reyes@collabsec.io",
			LastSnapshot: &winSnap,
		},
		{
			ID:           "vm-lin-002",
			Name:         "linux VM",
			OS:           models.InstanceOSLinux,
			Status:       models.VMStatusStopped,
			Health:       models.VMHealthUnknown,
			IPAddress:    "10.0.1.25",
			Uptime:       "0h 0m",
			Resources:    models.VMResources{Disk: 23},
			AssignedTo:   "emp-001",
			UserName:     "Dana Reyes",
			UserEmail:    "dana.reyes@collabsec.io",
			LastSnapshot: &linSnap,
		},
	}
}

// LoadVMs returns the display list for the VM control panel. With an
// employee id it overlays that employee's per-OS status onto the builtin
// entries; without one it maps the full backend list. Failures never
// propagate: the panel always renders, falling back to the builtin dataset.
func (s *VMService) LoadVMs(ctx context.Context, employeeID string) []models.VirtualMachine {
	if employeeID != "" {
		return s.loadUserVMs(ctx, employeeID)
	}
	return s.loadAllVMs(ctx)
}

func (s *VMService) loadAllVMs(ctx context.Context) []models.VirtualMachine {
	list, err := s.client.GetAllVMs(ctx)
	if err != nil {
		return s.fallback("all", "Failed to load VMs", err)
	}
	if list == nil || list.Vms == nil {
		err := srvErrors.NewMalformedResponseError("get all vms", "missing vms field")
		return s.fallback("all", "Failed to load VMs", err)
	}

	vms := make([]models.VirtualMachine, 0, len(list.Vms))
	for _, raw := range list.Vms {
		vm, err := s.mapper.Map(raw)
		if err != nil {
			return s.fallback("all", "Failed to load VMs", err)
		}
		vms = append(vms, vm)
	}

	metrics.VMLoadsTotal.WithLabelValues("all", "ok").Inc()
	return vms
}

func (s *VMService) loadUserVMs(ctx context.Context, employeeID string) []models.VirtualMachine {
	status, err := s.client.GetVMStatus(ctx, employeeID)
	if err != nil {
		return s.fallback("user", "Failed to load VM status", err)
	}

	vms := builtinVMs()
	for i := range vms {
		var raw string
		switch vms[i].OS {
		case models.InstanceOSWindows:
			raw = status.Windows
		case models.InstanceOSLinux:
			raw = status.Linux
		}

		st := models.NormalizeVMStatus(raw)
		vms[i].Status = st
		vms[i].Health = healthFor(st)
		if st == models.VMStatusStopped {
			vms[i].Resources = models.VMResources{}
			vms[i].Uptime = "0h 0m"
		}
	}

	metrics.VMLoadsTotal.WithLabelValues("user", "ok").Inc()
	return vms
}

func (s *VMService) fallback(mode, title string, err error) []models.VirtualMachine {
	zap.S().Named("vm_service").Errorw("falling back to builtin VM list", "mode", mode, "error", err)
	s.notifier.Error(title, errorDescription(err, "The server response was invalid"))
	metrics.VMLoadsTotal.WithLabelValues(mode, "fallback").Inc()
	return builtinVMs()
}

// DispatchAction routes a control-panel action to the backend. Unsupported
// actions fail before any backend call is made and emit no notification.
// Backend failures are notified and re-raised so the caller can reset the
// triggering control.
func (s *VMService) DispatchAction(ctx context.Context, vmID, action string, os models.InstanceOS, employeeID string) (*backend.VMActionResponse, error) {
	parsed, err := models.ParseVMAction(action)
	if err != nil {
		metrics.VMActionsTotal.WithLabelValues("invalid", "unsupported").Inc()
		return nil, err
	}

	var resp *backend.VMActionResponse
	switch parsed {
	case models.VMActionStart:
		resp, err = s.client.StartVM(ctx, os, employeeID)
	case models.VMActionStop:
		resp, err = s.client.StopVM(ctx, os, employeeID)
	case models.VMActionRestart:
		resp, err = s.client.RestartVM(ctx, os, employeeID)
	}
	if err != nil {
		zap.S().Named("vm_service").Errorw("vm action failed",
			"vm", vmID, "action", parsed, "employee", employeeID, "error", err)
		metrics.VMActionsTotal.WithLabelValues(string(parsed), "error").Inc()
		s.notifier.Error("Error", errorDescription(err, fmt.Sprintf("Failed to %s VM", parsed)))
		return nil, fmt.Errorf("%s vm %s: %w", parsed, vmID, err)
	}

	metrics.VMActionsTotal.WithLabelValues(string(parsed), "success").Inc()
	message := resp.Message
	if message == "" {
		message = fmt.Sprintf("VM %s completed successfully", parsed)
	}
	s.notifier.Success("Success", message)

	return resp, nil
}

// errorDescription picks the user-facing text for a notification. Backend
// errors carry the upstream message when one was present.
func errorDescription(err error, fallback string) string {
	if be, ok := srvErrors.AsBackendError(err); ok && be.Message != "" {
		return be.Message
	}
	return fallback
}
