package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	apiV1HealthPath        = "/api/v1/health"
	apiV1VMsPath           = "/api/v1/vms"
	apiV1ProjectsPath      = "/api/v1/projects"
	apiV1EmployeesPath     = "/api/v1/employees"
	apiV1NotificationsPath = "/api/v1/notifications"
)

// ConsoleClient drives the admin console API the way the UI would.
type ConsoleClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewConsoleClient creates an unauthenticated client for the console at baseURL.
func NewConsoleClient(baseURL string) *ConsoleClient {
	return &ConsoleClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client that sends the given bearer token.
// Usage: api.WithToken(adminToken).ListVMs("")
func (c *ConsoleClient) WithToken(token string) *ConsoleClient {
	return &ConsoleClient{baseURL: c.baseURL, token: token, http: c.http}
}

// Health probes the unauthenticated liveness endpoint.
func (c *ConsoleClient) Health() (int, []byte, error) {
	return c.do(http.MethodGet, apiV1HealthPath, nil)
}

// ListVMs fetches the VM panel, optionally scoped to one employee.
func (c *ConsoleClient) ListVMs(employeeID string) (int, []byte, error) {
	path := apiV1VMsPath
	if employeeID != "" {
		path += "?employee_id=" + employeeID
	}
	return c.do(http.MethodGet, path, nil)
}

// PostVMAction submits a power action for one VM.
func (c *ConsoleClient) PostVMAction(vmID string, payload any) (int, []byte, error) {
	return c.do(http.MethodPost, fmt.Sprintf("%s/%s/actions", apiV1VMsPath, vmID), payload)
}

// ListProjects fetches the active projects.
func (c *ConsoleClient) ListProjects() (int, []byte, error) {
	return c.do(http.MethodGet, apiV1ProjectsPath, nil)
}

// GetProject fetches a single project by id.
func (c *ConsoleClient) GetProject(id int) (int, []byte, error) {
	return c.do(http.MethodGet, fmt.Sprintf("%s/%d", apiV1ProjectsPath, id), nil)
}

// CreateProject submits a new project form.
func (c *ConsoleClient) CreateProject(payload any) (int, []byte, error) {
	return c.do(http.MethodPost, apiV1ProjectsPath, payload)
}

// UpdateProject submits changes to an existing project.
func (c *ConsoleClient) UpdateProject(id int, payload any) (int, []byte, error) {
	return c.do(http.MethodPut, fmt.Sprintf("%s/%d", apiV1ProjectsPath, id), payload)
}

// ArchiveProject hides a project from the default listing.
func (c *ConsoleClient) ArchiveProject(id int) (int, []byte, error) {
	return c.do(http.MethodPost, fmt.Sprintf("%s/%d/archive", apiV1ProjectsPath, id), nil)
}

// AssignMember adds an employee to a project.
func (c *ConsoleClient) AssignMember(projectID int, employeeID string) (int, []byte, error) {
	payload := map[string]string{"employee_id": employeeID}
	return c.do(http.MethodPost, fmt.Sprintf("%s/%d/members", apiV1ProjectsPath, projectID), payload)
}

// RemoveMember removes an employee from a project.
func (c *ConsoleClient) RemoveMember(projectID int, employeeID string) (int, []byte, error) {
	return c.do(http.MethodDelete, fmt.Sprintf("%s/%d/members/%s", apiV1ProjectsPath, projectID, employeeID), nil)
}

// ListEmployees fetches the employee directory.
func (c *ConsoleClient) ListEmployees() (int, []byte, error) {
	return c.do(http.MethodGet, apiV1EmployeesPath, nil)
}

// ListNotifications fetches the notification feed, newest first.
func (c *ConsoleClient) ListNotifications() (int, []byte, error) {
	return c.do(http.MethodGet, apiV1NotificationsPath, nil)
}

func (c *ConsoleClient) do(method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshaling payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}
