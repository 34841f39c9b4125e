// Package services implements the business logic layer of the admin console.
//
// This package contains services that act as intermediaries between HTTP
// handlers and the CollabSec backend client, providing a clean separation of
// concerns. Each service encapsulates specific domain logic; none of them
// hold state beyond their collaborator references.
//
// # Architecture Overview
//
// The services layer follows these design principles:
//   - Interface-based dependencies for testability (each service declares
//     the client slice it needs)
//   - Total conversion functions at the wire/domain boundary
//   - Failures on read paths degrade to safe defaults, failures on write
//     paths propagate to the caller
//   - User-facing outcomes are reported through the notify.Notifier sink
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── VMService ───────► VMClient, VMMapper, Notifier
//	    ├── ProjectService ──► ProjectClient, Notifier
//	    └── EmployeeService ─► EmployeeClient
//
// # VMMapper
//
// VMMapper converts raw backend VM records into display models. Field
// derivation:
//
//	┌────────────────┬──────────────────────────────────────────────────┐
//	│ Field          │ Derivation                                       │
//	├────────────────┼──────────────────────────────────────────────────┤
//	│ ID             │ instance_id, else "vm-<record id>"               │
//	│ Name           │ "<instance_os> VM"                               │
//	│ Status         │ NormalizeVMStatus(status)                        │
//	│ Health         │ Healthy when Running, Unknown otherwise          │
//	│ Uptime         │ now − updated_at as "<h>h <m>m" when Running,    │
//	│                │ "0h 0m" otherwise                                │
//	│ Resources      │ MetricsProvider.Snapshot(status)                 │
//	│ IPAddress      │ fixed placeholder                                │
//	└────────────────┴──────────────────────────────────────────────────┘
//
// A record without a status, or with an updated_at that does not parse, is
// rejected with an error. The mapper never panics on malformed input; the
// loader decides how to recover.
//
// # VMService
//
// VMService drives the VM control panel: loading the instance list and
// dispatching lifecycle actions.
//
// Loading runs in one of two modes:
//
//	LoadVMs(ctx, "")          all-VMs mode: GET the full list and map
//	                          every record
//	LoadVMs(ctx, "emp-001")   single-user mode: fetch that employee's
//	                          per-OS status and overlay it onto the
//	                          builtin entries
//
// LoadVMs never returns an error. Any failure (transport error, malformed
// body, unmappable record) is logged, surfaced as an error notification and
// masked by the builtin fallback dataset, so the panel always renders. The
// builtin entries are rebuilt on every call; overlays applied to one request
// are invisible to the next.
//
// Action dispatch:
//
//	┌───────────┐   parse    ┌────────────┐   success   ┌──────────────┐
//	│  request  │──────────► │ backend op │───────────► │ Success toast│
//	└───────────┘            └────────────┘             └──────────────┘
//	      │                        │
//	      │ unsupported            │ failure
//	      ▼                        ▼
//	┌──────────────┐         ┌──────────────────────────┐
//	│ typed error, │         │ Error toast + wrapped    │
//	│ no backend   │         │ error to the caller      │
//	│ call         │         └──────────────────────────┘
//	└──────────────┘
//
// "reset" is folded into restart at parse time; both reach the same backend
// endpoint. An unsupported action name fails before any backend call and
// emits no notification. Backend failures notify and re-raise so the caller
// can reset its loading state. Actions are never retried.
//
// Usage:
//
//	mapper := services.NewVMMapper(services.SimulatedMetrics{})
//	vmService := services.NewVMService(client, mapper, notifier)
//	vms := vmService.LoadVMs(ctx, "")
//	resp, err := vmService.DispatchAction(ctx, "vm-win-001", "restart", models.InstanceOSWindows, "emp-001")
//
// # ProjectService
//
// ProjectService wraps the project admin endpoints. List follows the same
// degrade-to-default contract as the VM loader and returns the empty list on
// failure. Mutations (Create, Update, Archive, AssignMember, RemoveMember)
// validate their input, notify success or failure, and return the wrapped
// error so forms can surface it inline.
//
// The backend exposes no single-project route; Get filters the full listing
// and reports a typed not-found error on a miss.
//
// # EmployeeService
//
// EmployeeService provides read-only access to the backend user directory.
// It is a thin facade used by the assignment pickers; errors propagate
// unmasked.
//
// # MetricsProvider
//
// The resource figures on VM cards come from a MetricsProvider. The default
// SimulatedMetrics draws values inside fixed bands because the backend has
// no telemetry endpoint; swapping in a real adapter changes no mapper code.
//
// # Thread Safety
//
// All services are stateless aside from collaborator references and are safe
// for concurrent use as long as their collaborators are. The builtin VM
// dataset is constructed per call and never shared.
package services
