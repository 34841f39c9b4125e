package services

import (
	"fmt"
	"time"

	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/pkg/backend"
)

// placeholderIP stands in for per-instance addressing, which the backend
// does not report yet.
const placeholderIP = "10.0.0.12"

// VMMapper converts raw backend VM records into display models.
type VMMapper struct {
	metrics MetricsProvider
	now     func() time.Time
}

func NewVMMapper(metrics MetricsProvider) *VMMapper {
	return NewVMMapperWithClock(metrics, time.Now)
}

// NewVMMapperWithClock pins the uptime clock. Tests use it to make the
// computed uptime deterministic.
func NewVMMapperWithClock(metrics MetricsProvider, now func() time.Time) *VMMapper {
	return &VMMapper{metrics: metrics, now: now}
}

// Map builds a VirtualMachine from a raw record. A record without a status,
// or with an updated_at that does not parse, is rejected so the caller can
// fall back instead of rendering a half-built entry.
func (m *VMMapper) Map(raw backend.VM) (models.VirtualMachine, error) {
	if raw.Status == "" {
		return models.VirtualMachine{}, fmt.Errorf("vm record %d has no status", raw.ID)
	}
	updatedAt, err := backend.ParseTimestamp(raw.UpdatedAt)
	if err != nil {
		return models.VirtualMachine{}, fmt.Errorf("vm record %d has no usable updated_at: %w", raw.ID, err)
	}

	status := models.NormalizeVMStatus(raw.Status)

	vm := models.VirtualMachine{
		ID:            raw.InstanceID,
		InstanceID:    raw.InstanceID,
		Name:          fmt.Sprintf("%s VM", raw.InstanceOS),
		OS:            models.InstanceOS(raw.InstanceOS),
		Status:        status,
		Health:        healthFor(status),
		IPAddress:     placeholderIP,
		Uptime:        m.uptime(status, updatedAt),
		Resources:     m.metrics.Snapshot(status),
		AssignedTo:    raw.EmployeeID,
		UserName:      raw.UserName,
		UserEmail:     raw.UserEmail,
		ConnectionURL: raw.GuacamoleURL,
	}

	if vm.ID == "" {
		vm.ID = fmt.Sprintf("vm-%d", raw.ID)
	}
	if created, err := backend.ParseTimestamp(raw.CreatedAt); err == nil {
		vm.CreatedAt = &created
	}

	return vm, nil
}

func healthFor(status models.VMStatus) string {
	if status == models.VMStatusRunning {
		return models.VMHealthHealthy
	}
	return models.VMHealthUnknown
}

// uptime renders the wall-clock delta since the record was last updated.
// Only a running machine accrues uptime.
func (m *VMMapper) uptime(status models.VMStatus, updatedAt time.Time) string {
	if status != models.VMStatusRunning {
		return "0h 0m"
	}
	return formatUptime(m.now().Sub(updatedAt))
}

func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
