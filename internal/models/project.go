package models

import (
	"fmt"
	"strings"
	"time"

	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "not started"
	ProjectStatusInProgress ProjectStatus = "in progress"
	ProjectStatusComplete   ProjectStatus = "complete"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(s) {
	case "not started":
		return ProjectStatusNotStarted, nil
	case "in progress":
		return ProjectStatusInProgress, nil
	case "complete":
		return ProjectStatusComplete, nil
	default:
		return "", fmt.Errorf("invalid project status: %s", s)
	}
}

// DateLayout is the wire format for project dates.
const DateLayout = "2006-01-02"

// Project is the canonical project representation. Wire and form shapes are
// converted to and from this struct at the boundaries; nothing else carries
// project state through the console.
type Project struct {
	ID          int
	Name        string
	Description string
	Scope       string
	Status      ProjectStatus
	Manager     string
	StartDate   string
	EndDate     string
	Archived    bool
}

// ProjectFormValues carries user input for the create and update operations.
type ProjectFormValues struct {
	Name        string
	Description string
	Scope       string
	Status      string
	StartDate   string
	EndDate     string
	Manager     string
}

// Validate checks required fields, date formats and the status set. The
// first violation is returned as a typed validation error naming the field.
func (f ProjectFormValues) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return srvErrors.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(f.Description) == "" {
		return srvErrors.NewValidationError("description", "is required")
	}
	if strings.TrimSpace(f.Scope) == "" {
		return srvErrors.NewValidationError("scope", "is required")
	}
	if strings.TrimSpace(f.Manager) == "" {
		return srvErrors.NewValidationError("manager", "is required")
	}

	start, err := time.Parse(DateLayout, f.StartDate)
	if err != nil {
		return srvErrors.NewValidationError("start_date", "must be a YYYY-MM-DD date")
	}
	if f.EndDate != "" {
		end, err := time.Parse(DateLayout, f.EndDate)
		if err != nil {
			return srvErrors.NewValidationError("end_date", "must be a YYYY-MM-DD date")
		}
		if end.Before(start) {
			return srvErrors.NewValidationError("end_date", "must not precede start_date")
		}
	}

	if f.Status != "" {
		if _, err := ParseProjectStatus(f.Status); err != nil {
			return srvErrors.NewValidationError("status", "must be one of: not started, in progress, complete")
		}
	}

	return nil
}
