package models

import (
	"fmt"
	"strings"
	"time"

	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

// VMStatus is the closed set of VM lifecycle states shown by the console.
type VMStatus string

const (
	VMStatusRunning  VMStatus = "Running"
	VMStatusStopped  VMStatus = "Stopped"
	VMStatusStarting VMStatus = "Starting"
	VMStatusStopping VMStatus = "Stopping"
	VMStatusPaused   VMStatus = "Paused"
	VMStatusError    VMStatus = "Error"
)

// NormalizeVMStatus maps a raw backend status string onto the VMStatus set.
// Matching is case-insensitive and exact; anything unrecognized, including
// the empty string, normalizes to VMStatusError.
func NormalizeVMStatus(raw string) VMStatus {
	switch strings.ToLower(raw) {
	case "running":
		return VMStatusRunning
	case "stopped":
		return VMStatusStopped
	case "starting":
		return VMStatusStarting
	case "stopping":
		return VMStatusStopping
	case "paused":
		return VMStatusPaused
	default:
		return VMStatusError
	}
}

type InstanceOS string

const (
	InstanceOSLinux   InstanceOS = "linux"
	InstanceOSWindows InstanceOS = "windows"
)

// ParseInstanceOS validates a user-supplied OS label. The backend only
// provisions linux and windows desktops.
func ParseInstanceOS(s string) (InstanceOS, error) {
	switch strings.ToLower(s) {
	case "linux":
		return InstanceOSLinux, nil
	case "windows":
		return InstanceOSWindows, nil
	default:
		return "", fmt.Errorf("invalid instance os: %s", s)
	}
}

type VMAction string

const (
	VMActionStart   VMAction = "start"
	VMActionStop    VMAction = "stop"
	VMActionRestart VMAction = "restart"
)

// ParseVMAction validates an action name. Matching is case-insensitive and
// "reset" is folded into restart. Unknown names produce an
// UnsupportedActionError so callers can reject them before any backend call.
func ParseVMAction(s string) (VMAction, error) {
	switch strings.ToLower(s) {
	case "start":
		return VMActionStart, nil
	case "stop":
		return VMActionStop, nil
	case "restart", "reset":
		return VMActionRestart, nil
	default:
		return "", srvErrors.NewUnsupportedActionError(s)
	}
}

// Health labels shown next to the status badge.
const (
	VMHealthHealthy = "Healthy"
	VMHealthUnknown = "Unknown"
)

// VMResources holds the gauge values displayed on a VM card. CPU, memory and
// disk are percentages, network is MB/s.
type VMResources struct {
	CPU     int
	Memory  int
	Disk    int
	Network int
}

// VirtualMachine is the display-ready representation of a remote desktop
// instance.
type VirtualMachine struct {
	ID            string
	InstanceID    string
	Name          string
	OS            InstanceOS
	Status        VMStatus
	Health        string
	IPAddress     string
	Uptime        string
	Resources     VMResources
	AssignedTo    string
	UserName      string
	UserEmail     string
	ConnectionURL string
	CreatedAt     *time.Time
	LastSnapshot  *time.Time
}
