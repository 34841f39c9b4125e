package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FakeBackend is an in-process stand-in for the CollabSec management API. It
// serves the admin endpoints the console consumes, records every VM action
// and assignment call for assertions, and lets specs override individual
// responses to simulate outages and malformed bodies.
type FakeBackend struct {
	server  *http.Server
	baseURL string

	mu          sync.Mutex
	vms         []map[string]any
	statuses    map[string]map[string]string
	projects    []map[string]any
	users       []map[string]any
	nextID      int
	actionCalls []ActionCall
	assignCalls []AssignmentCall
	overrides   map[string]rawResponse
	authSeen    map[string]string
}

// ActionCall is one recorded VM power request.
type ActionCall struct {
	Op         string
	EmployeeID string
	InstanceOS string
}

// AssignmentCall is one recorded project membership change.
type AssignmentCall struct {
	Op         string
	ProjectID  int
	EmployeeID string
}

type rawResponse struct {
	status int
	body   string
}

type projectPayload struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Manager     string `json:"manager"`
}

// NewFakeBackend starts the fake on a random local port.
func NewFakeBackend() (*FakeBackend, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listening for fake backend: %w", err)
	}

	f := &FakeBackend{
		baseURL:   fmt.Sprintf("http://%s", listener.Addr().String()),
		overrides: map[string]rawResponse{},
		authSeen:  map[string]string{},
	}
	f.seed()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", f.handleReadiness)
	mux.HandleFunc("GET /admin/vm/get-all-vms", f.intercept(f.handleGetAllVMs))
	mux.HandleFunc("POST /admin/vm/vm-status", f.intercept(f.handleVMStatus))
	mux.HandleFunc("POST /admin/vm/start-vm", f.intercept(f.handleVMAction("start")))
	mux.HandleFunc("POST /admin/vm/stop-vm", f.intercept(f.handleVMAction("stop")))
	mux.HandleFunc("POST /admin/vm/restart-vm", f.intercept(f.handleVMAction("restart")))
	mux.HandleFunc("GET /admin/project/get-all-projects", f.intercept(f.handleGetAllProjects))
	mux.HandleFunc("POST /admin/project/create-project", f.intercept(f.handleCreateProject))
	mux.HandleFunc("PUT /admin/project/update-project/{id}", f.intercept(f.handleUpdateProject))
	mux.HandleFunc("POST /admin/project/archive-project/{id}", f.intercept(f.handleArchiveProject))
	mux.HandleFunc("POST /admin/project/assign-project", f.intercept(f.handleAssignment("assign")))
	mux.HandleFunc("POST /admin/project/remove-assignment", f.intercept(f.handleAssignment("remove")))
	mux.HandleFunc("GET /admin/user/get-all-users", f.intercept(f.handleGetAllUsers))

	f.server = &http.Server{Handler: mux}

	go func() {
		zap.S().Infof("fake backend started on %s", f.baseURL)
		if err := f.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			zap.S().Errorf("fake backend error: %v", err)
		}
	}()

	return f, nil
}

// Stop gracefully shuts the fake down.
func (f *FakeBackend) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return f.server.Shutdown(ctx)
}

// BaseURL returns the address the console should be pointed at.
func (f *FakeBackend) BaseURL() string {
	return f.baseURL
}

// RespondWith overrides the next responses for "METHOD /path" until Reset.
func (f *FakeBackend) RespondWith(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides[method+" "+path] = rawResponse{status: status, body: body}
}

// Reset drops recordings and overrides and reseeds the canned data.
func (f *FakeBackend) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actionCalls = nil
	f.assignCalls = nil
	f.overrides = map[string]rawResponse{}
	f.authSeen = map[string]string{}
	f.seed()
}

// ActionCalls returns the VM power requests seen so far.
func (f *FakeBackend) ActionCalls() []ActionCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ActionCall, len(f.actionCalls))
	copy(out, f.actionCalls)
	return out
}

// AssignmentCalls returns the membership changes seen so far.
func (f *FakeBackend) AssignmentCalls() []AssignmentCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]AssignmentCall, len(f.assignCalls))
	copy(out, f.assignCalls)
	return out
}

// LastAuthorization returns the Authorization header last seen on path.
func (f *FakeBackend) LastAuthorization(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authSeen[path]
}

// SetVMStatuses programs the per-OS answer of /admin/vm/vm-status for one
// employee.
func (f *FakeBackend) SetVMStatuses(employeeID, windows, linux string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[employeeID] = map[string]string{"windows": windows, "linux": linux}
}

func (f *FakeBackend) seed() {
	f.vms = []map[string]any{
		{
			"id":            1,
			"instance_id":   "i-0aa331f8",
			"employee_id":   "emp-042",
			"user_name":     "Priya Shah",
			"user_email":    "priya.shah@collabsec.io",
			"instance_os":   "windows",
			"status":        "Running",
			"guacamole_url": "https://gw.collabsec.io/s/i-0aa331f8",
			"created_at":    "2025-05-20T08:00:00",
			"updated_at":    "2025-06-01T09:55:00",
		},
		{
			"id":            2,
			"instance_id":   "",
			"employee_id":   "emp-042",
			"user_name":     "Priya Shah",
			"user_email":    "priya.shah@collabsec.io",
			"instance_os":   "linux",
			"status":        "Deleting",
			"guacamole_url": "",
			"created_at":    "2025-05-20T08:00:00",
			"updated_at":    "2025-06-01T10:12:00",
		},
	}
	f.statuses = map[string]map[string]string{
		"emp-042": {"windows": "Stopped", "linux": "Running"},
	}
	f.projects = []map[string]any{
		{
			"id":          1,
			"name":        "Zero Trust Rollout",
			"description": "Phase in hardware keys for every employee",
			"scope":       "All offices",
			"status":      "In Progress",
			"start_date":  "2025-04-01",
			"end_date":    nil,
			"manager":     "Dana Reyes",
			"archived":    false,
		},
	}
	f.users = []map[string]any{
		{
			"employee_id": "emp-042",
			"name":        "Priya Shah",
			"email":       "priya.shah@collabsec.io",
			"role":        "developer",
			"status":      "active",
		},
	}
	f.nextID = 2
}

// intercept records the Authorization header and applies overrides before
// handing the request to the real handler.
func (f *FakeBackend) intercept(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authSeen[r.URL.Path] = r.Header.Get("Authorization")
		override, ok := f.overrides[r.Method+" "+r.URL.Path]
		f.mu.Unlock()

		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(override.status)
			fmt.Fprint(w, override.body)
			return
		}
		next(w, r)
	}
}

func (f *FakeBackend) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (f *FakeBackend) handleGetAllVMs(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"vms": f.vms})
}

func (f *FakeBackend) handleVMStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := r.PostFormValue("employee_id")

	f.mu.Lock()
	status, ok := f.statuses[employeeID]
	f.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Employee not found"})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (f *FakeBackend) handleVMAction(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		call := ActionCall{
			Op:         op,
			EmployeeID: r.PostFormValue("employee_id"),
			InstanceOS: r.PostFormValue("instance_os"),
		}

		f.mu.Lock()
		f.actionCalls = append(f.actionCalls, call)
		f.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Instance %s accepted for %s", op, call.EmployeeID),
			"URL":     "https://gw.collabsec.io/s/i-0aa331f8",
		})
	}
}

func (f *FakeBackend) handleGetAllProjects(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	active := make([]map[string]any, 0, len(f.projects))
	for _, p := range f.projects {
		if archived, _ := p["archived"].(bool); !archived {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No projects found"})
		return
	}
	writeJSON(w, http.StatusOK, active)
}

func (f *FakeBackend) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
		return
	}

	f.mu.Lock()
	f.nextID++
	doc := map[string]any{
		"id":          f.nextID,
		"name":        payload.ProjectName,
		"description": payload.Description,
		"scope":       payload.Scope,
		"status":      payload.Status,
		"start_date":  payload.StartDate,
		"end_date":    nil,
		"manager":     payload.Manager,
		"archived":    false,
	}
	if payload.EndDate != "" {
		doc["end_date"] = payload.EndDate
	}
	f.projects = append(f.projects, doc)
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Project created"})
}

func (f *FakeBackend) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid project id"})
		return
	}

	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p["id"] == id {
			if payload.ProjectName != "" {
				p["name"] = payload.ProjectName
			}
			if payload.Description != "" {
				p["description"] = payload.Description
			}
			if payload.Scope != "" {
				p["scope"] = payload.Scope
			}
			if payload.Status != "" {
				p["status"] = payload.Status
			}
			if payload.StartDate != "" {
				p["start_date"] = payload.StartDate
			}
			if payload.EndDate != "" {
				p["end_date"] = payload.EndDate
			}
			if payload.Manager != "" {
				p["manager"] = payload.Manager
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "Project updated"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Project not found"})
}

func (f *FakeBackend) handleArchiveProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid project id"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p["id"] == id {
			p["archived"] = true
			writeJSON(w, http.StatusOK, map[string]string{"message": "Project archived"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Project not found"})
}

func (f *FakeBackend) handleAssignment(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProjectID  int    `json:"project_id"`
			EmployeeID string `json:"employee_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
			return
		}

		f.mu.Lock()
		f.assignCalls = append(f.assignCalls, AssignmentCall{
			Op:         op,
			ProjectID:  payload.ProjectID,
			EmployeeID: payload.EmployeeID,
		})
		f.mu.Unlock()

		if op == "assign" {
			writeJSON(w, http.StatusCreated, map[string]string{"message": "Assignment created"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Assignment removed"})
	}
}

func (f *FakeBackend) handleGetAllUsers(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"users": f.users})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
