/*
Package main provides end-to-end testing infrastructure for the admin console.

# Package Structure

	test/e2e/
	├── main.go          Entry point: flags, harness boot, Ginkgo runner
	├── tests.go         Ginkgo test specs (auth, VM panel, projects, notifications)
	├── doc.go           This file
	├── infra/           Infrastructure management
	│   ├── backend.go   FakeBackend — in-process management API with recording
	│   ├── console.go   Console — boots the real console server in-process
	│   └── auth.go      TokenSigner — HS256 JWT minting
	└── service/
	    └── console.go   ConsoleClient — HTTP client for the console API

# Harness

The suite runs everything in one process:

	┌───────────────┐      ┌───────────────┐      ┌──────────────┐
	│ ConsoleClient │─────▶│ Admin console │─────▶│ FakeBackend  │
	│ (specs)       │      │ (real server) │      │ (recording)  │
	└───────────────┘      └───────────────┘      └──────────────┘

The console is assembled exactly the way the binary assembles it (real gin
server, real middleware, real services) and listens on a local port. The
FakeBackend serves the upstream admin endpoints with canned data, records
every VM action and assignment call, and lets specs override individual
responses to simulate outages and malformed bodies:

	fakeBackend.RespondWith("GET", "/admin/vm/get-all-vms", 200, `{}`)
	fakeBackend.ActionCalls() // assert what reached the backend

Authentication is real as well: main() writes the shared HS256 secret to a
file, the console loads it, and TokenSigner mints admin and non-admin tokens
for the specs.

# Flags

	-console-port   Port the in-process console listens on (default 18080)
	-jwt-secret     HS256 secret shared by console and signer

# Running

	go run ./test/e2e -console-port 18080
*/
package main
