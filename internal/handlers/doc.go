// Package handlers implements the HTTP API layer of the admin console.
//
// This package contains HTTP handlers that expose the console's
// functionality via a RESTful API. Handlers delegate business logic to the
// services layer and focus on request validation, response formatting, and
// HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request binding and validation                               │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  VMService │ ProjectService │ EmployeeService │ notify.Center   │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Handler Structure
//
// All handlers are methods on a single Handler struct that holds service
// dependencies. Routes are registered through RegisterRoutes, which keeps
// /health open and puts every other route behind the authentication
// middleware handed in by the server:
//
//	handler := handlers.New(vmSrv, projectSrv, employeeSrv, center)
//	handler.RegisterRoutes(apiGroup, authn)
//
// # API Endpoints
//
// VM Endpoints (vms.go):
//
//	┌────────┬────────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint           │ Description                          │
//	├────────┼────────────────────┼──────────────────────────────────────┤
//	│ GET    │ /vms               │ List VMs (all, or one employee's     │
//	│        │                    │ via ?employee_id=)                   │
//	│ POST   │ /vms/{id}/actions  │ Dispatch start/stop/restart          │
//	└────────┴────────────────────┴──────────────────────────────────────┘
//
// Project Endpoints (projects.go):
//
//	┌────────┬──────────────────────────────────────┬────────────────────┐
//	│ Method │ Endpoint                             │ Description        │
//	├────────┼──────────────────────────────────────┼────────────────────┤
//	│ GET    │ /projects                            │ List projects      │
//	│ POST   │ /projects                            │ Create project     │
//	│ GET    │ /projects/{id}                       │ Get one project    │
//	│ PUT    │ /projects/{id}                       │ Update project     │
//	│ POST   │ /projects/{id}/archive               │ Archive project    │
//	│ POST   │ /projects/{id}/members               │ Assign an employee │
//	│ DELETE │ /projects/{id}/members/{employeeId}  │ Remove an employee │
//	└────────┴──────────────────────────────────────┴────────────────────┘
//
// Directory and feed endpoints:
//
//	┌────────┬────────────────┬─────────────────────────────────────────┐
//	│ Method │ Endpoint       │ Description                             │
//	├────────┼────────────────┼─────────────────────────────────────────┤
//	│ GET    │ /employees     │ List directory users                    │
//	│ GET    │ /notifications │ Notification feed, newest first         │
//	│ GET    │ /health        │ Liveness probe (unauthenticated)        │
//	└────────┴────────────────┴─────────────────────────────────────────┘
//
// # VM Action Handler
//
// POST /vms/{id}/actions dispatches a lifecycle action.
//
// Request:
//
//	{
//	    "action": "restart",        // start|stop|restart (reset = restart)
//	    "instance_os": "windows",   // windows|linux
//	    "employee_id": "emp-001"
//	}
//
// Response: 202 Accepted
//
//	{
//	    "message": "VM restarted successfully",
//	    "url": "https://guac.example.com/c/abc"   // present when provided
//	}
//
// Errors:
//   - 400 Bad Request: missing fields, unknown OS, unsupported action
//     (unsupported actions never reach the backend)
//   - 502 Bad Gateway: the backend rejected or failed the action
//
// # Error Handling
//
// Handlers use a consistent error response format:
//
//	{ "error": "error message" }
//
// HTTP Status Code Mapping:
//
//	┌─────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                  │ Status │ When                         │
//	├─────────────────────────────┼────────┼──────────────────────────────┤
//	│ Binding/validation error    │ 400    │ Invalid request body/params  │
//	│ UnsupportedActionError      │ 400    │ Unknown VM action            │
//	│ ResourceNotFoundError       │ 404    │ Project doesn't exist        │
//	│ Backend failure             │ 502    │ Upstream error or timeout    │
//	└─────────────────────────────┴────────┴──────────────────────────────┘
//
// GET /vms never fails: loader errors degrade to the builtin dataset inside
// the service layer, so the panel always has rows to render.
//
// # Model Conversion
//
// Handlers convert between internal models and API types using the
// conversion functions in api/v1/extension.go:
//
//   - v1.NewVMFromModel(models.VirtualMachine) → v1.VM
//   - v1.NewProjectFromModel(models.Project) → v1.Project
//   - v1.NewEmployeeFromModel(models.Employee) → v1.Employee
//   - v1.NewNotificationFromModel(notify.Notification) → v1.Notification
//   - v1.ProjectRequest.ToFormValues() → models.ProjectFormValues
package handlers
