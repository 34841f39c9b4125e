// Package backend implements the REST client for the CollabSec backend
// admin API. The console never talks to compute providers directly; every
// project and VM operation goes through this client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/collabsec/admin-console/internal/models"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

// RequestEditorFn mutates an outgoing request before it is sent. Editors run
// in registration order.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithRequestEditorFn registers an editor applied to every outgoing request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) { c.editors = append(c.editors, fn) }
}

// WithServiceToken attaches a static bearer token to every request. Editors
// registered after this one can still override the header, so a forwarded
// caller token wins over the service token.
func WithServiceToken(token string) ClientOption {
	return WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
		if token == "" {
			return nil
		}
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		return nil
	})
}

// Client talks to the CollabSec backend admin API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	editors    []RequestEditorFn
}

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("backend base url is required")
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WaitReady blocks until the backend answers HTTP or ctx expires. Any status
// code counts as ready; only transport errors retry. This is the one retry
// loop in the console, VM actions are never retried.
func (c *Client) WaitReady(ctx context.Context, timeout time.Duration) error {
	probe := func() (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		resp.Body.Close()
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, probe,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
	)
	if err != nil {
		return fmt.Errorf("backend not ready: %w", err)
	}
	return nil
}

// GetAllProjects fetches the active (non-archived) projects.
// GET /admin/project/get-all-projects
func (c *Client) GetAllProjects(ctx context.Context) ([]Project, error) {
	resp, err := c.do(ctx, http.MethodGet, "/admin/project/get-all-projects", "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var projects []Project
		if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
			return nil, srvErrors.NewMalformedResponseError("get all projects", err.Error())
		}
		return projects, nil
	case http.StatusNotFound:
		// The backend answers 404 when no projects exist yet.
		return []Project{}, nil
	default:
		return nil, apiError("get all projects", resp)
	}
}

// CreateProject registers a new project.
// POST /admin/project/create-project
func (c *Client) CreateProject(ctx context.Context, payload ProjectPayload) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/admin/project/create-project", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	default:
		return apiError("create project", resp)
	}
}

// UpdateProject updates an existing project. Empty payload fields are
// omitted and keep their current value upstream.
// PUT /admin/project/update-project/{id}
func (c *Client) UpdateProject(ctx context.Context, id int, payload ProjectPayload) error {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/project/update-project/%d", id), payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return srvErrors.NewProjectNotFoundError(id)
	default:
		return apiError("update project", resp)
	}
}

// ArchiveProject soft-hides a project from the default listing.
// POST /admin/project/archive-project/{id}
func (c *Client) ArchiveProject(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/project/archive-project/%d", id), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return srvErrors.NewProjectNotFoundError(id)
	default:
		return apiError("archive project", resp)
	}
}

// AssignProject adds an employee to a project.
// POST /admin/project/assign-project
func (c *Client) AssignProject(ctx context.Context, projectID int, employeeID string) error {
	payload := AssignmentPayload{ProjectID: projectID, EmployeeID: employeeID}
	resp, err := c.doJSON(ctx, http.MethodPost, "/admin/project/assign-project", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	default:
		return apiError("assign project", resp)
	}
}

// RemoveAssignment removes an employee from a project.
// POST /admin/project/remove-assignment
func (c *Client) RemoveAssignment(ctx context.Context, projectID int, employeeID string) error {
	payload := AssignmentPayload{ProjectID: projectID, EmployeeID: employeeID}
	resp, err := c.doJSON(ctx, http.MethodPost, "/admin/project/remove-assignment", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	default:
		return apiError("remove assignment", resp)
	}
}

// StartVM powers on the employee's desktop instance for the given OS.
// POST /admin/vm/start-vm
func (c *Client) StartVM(ctx context.Context, os models.InstanceOS, employeeID string) (*VMActionResponse, error) {
	return c.vmAction(ctx, "start vm", "/admin/vm/start-vm", os, employeeID)
}

// StopVM powers off the employee's desktop instance for the given OS.
// POST /admin/vm/stop-vm
func (c *Client) StopVM(ctx context.Context, os models.InstanceOS, employeeID string) (*VMActionResponse, error) {
	return c.vmAction(ctx, "stop vm", "/admin/vm/stop-vm", os, employeeID)
}

// RestartVM reboots the employee's desktop instance for the given OS.
// POST /admin/vm/restart-vm
func (c *Client) RestartVM(ctx context.Context, os models.InstanceOS, employeeID string) (*VMActionResponse, error) {
	return c.vmAction(ctx, "restart vm", "/admin/vm/restart-vm", os, employeeID)
}

func (c *Client) vmAction(ctx context.Context, op, path string, os models.InstanceOS, employeeID string) (*VMActionResponse, error) {
	form := url.Values{}
	form.Set("employee_id", employeeID)
	form.Set("instance_os", string(os))

	zap.S().Named("backend").Debugw("dispatching vm action", "op", op, "employee_id", employeeID, "instance_os", os)

	resp, err := c.doForm(ctx, path, form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		var out VMActionResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, srvErrors.NewMalformedResponseError(op, err.Error())
		}
		return &out, nil
	default:
		return nil, apiError(op, resp)
	}
}

// GetVMStatus returns the per-OS instance status for one employee.
// POST /admin/vm/vm-status
func (c *Client) GetVMStatus(ctx context.Context, employeeID string) (*VMStatusByOS, error) {
	form := url.Values{}
	form.Set("employee_id", employeeID)

	resp, err := c.doForm(ctx, "/admin/vm/vm-status", form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out VMStatusByOS
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, srvErrors.NewMalformedResponseError("vm status", err.Error())
		}
		return &out, nil
	default:
		return nil, apiError("vm status", resp)
	}
}

// GetAllVMs returns every VM record with its assigned employee.
// GET /admin/vm/get-all-vms
func (c *Client) GetAllVMs(ctx context.Context) (*VMList, error) {
	resp, err := c.do(ctx, http.MethodGet, "/admin/vm/get-all-vms", "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out VMList
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, srvErrors.NewMalformedResponseError("get all vms", err.Error())
		}
		return &out, nil
	default:
		return nil, apiError("get all vms", resp)
	}
}

// ListUsers returns all employees.
// GET /admin/user/get-all-users
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/admin/user/get-all-users", "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out UserList
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, srvErrors.NewMalformedResponseError("list users", err.Error())
		}
		return out.Users, nil
	default:
		return nil, apiError("list users", resp)
	}
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, edit := range c.editors {
		if err := edit(ctx, req); err != nil {
			return nil, fmt.Errorf("request editor: %w", err)
		}
	}
	return c.httpClient.Do(req)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(data))
}

func (c *Client) doForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// apiError maps a non-2xx response to a typed error, extracting the upstream
// error or message field when the body is JSON.
func apiError(op string, resp *http.Response) error {
	msg := decodeErrorMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return srvErrors.NewUnauthorizedError(op)
	default:
		return srvErrors.NewBackendError(op, resp.StatusCode, msg)
	}
}

func decodeErrorMessage(body io.Reader) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}
