package backend

import (
	"fmt"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// VM is a raw virtual machine record as returned by GET /admin/vm/get-all-vms.
type VM struct {
	ID           int    `json:"id"`
	InstanceID   string `json:"instance_id"`
	EmployeeID   string `json:"employee_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	InstanceOS   string `json:"instance_os"`
	Status       string `json:"status"`
	GuacamoleURL string `json:"guacamole_url"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// VMList is the envelope for GET /admin/vm/get-all-vms. Vms stays nil when
// the field is absent from the body, which is how callers distinguish a
// malformed response from a valid empty list.
type VMList struct {
	Vms []VM `json:"vms"`
}

// VMStatusByOS is the per-employee status response from POST /admin/vm/vm-status.
type VMStatusByOS struct {
	Windows string `json:"windows"`
	Linux   string `json:"linux"`
}

// VMActionResponse is returned by the start-vm, stop-vm and restart-vm
// endpoints. URL carries the Guacamole session link when the instance is up.
type VMActionResponse struct {
	Message string `json:"message"`
	URL     string `json:"URL,omitempty"`
}

// Project is a project record from the project admin endpoints.
type Project struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Scope       string      `json:"scope"`
	Status      string      `json:"status"`
	StartDate   types.Date  `json:"start_date"`
	EndDate     *types.Date `json:"end_date"`
	Manager     string      `json:"manager"`
	Archived    bool        `json:"archived"`
}

// ProjectPayload is the request body for create-project and update-project.
type ProjectPayload struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	Status      string `json:"status,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Manager     string `json:"manager"`
}

// AssignmentPayload is the request body for assign-project and
// remove-assignment.
type AssignmentPayload struct {
	ProjectID  int    `json:"project_id"`
	EmployeeID string `json:"employee_id"`
}

// User is an employee record from GET /admin/user/get-all-users.
type User struct {
	EmployeeID string      `json:"employee_id"`
	Name       string      `json:"name"`
	Email      types.Email `json:"email"`
	Role       string      `json:"role"`
	Status     string      `json:"status"`
}

// UserList is the envelope for GET /admin/user/get-all-users.
type UserList struct {
	Users []User `json:"users"`
}

// timestampLayouts covers RFC3339 and the zoneless isoformat variants the
// backend emits for created_at and updated_at.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses a backend timestamp. Zoneless values are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", s)
}
