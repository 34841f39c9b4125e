// Package server provides the HTTP server for the admin console.
//
// The server uses the Gin web framework and supports two modes of operation:
// development (HTTP) and production (HTTPS with auto-generated TLS certificates).
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                                                               │
//	│  Production Mode (TLS)          Development Mode              │
//	│  ┌─────────────────────┐        ┌─────────────────────┐       │
//	│  │ HTTPS :8000         │        │ HTTP :8000          │       │
//	│  │ Self-signed cert    │        │ No TLS              │       │
//	│  │ Static file serving │        │ API only            │       │
//	│  │ SPA fallback        │        │                     │       │
//	│  └─────────────────────┘        └─────────────────────┘       │
//	│                                                               │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request/response logging)                      │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  │  Authenticator (JWT, applied per route group)           │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                Router (/api/v1, /metrics)                     │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (Server.Mode = "dev"):
//   - HTTP only (no TLS)
//   - Gin runs in debug mode
//   - API endpoints only
//
// Production Mode (Server.Mode = "prod"):
//   - HTTPS with auto-generated self-signed certificate (1 year validity)
//   - Gin runs in release mode
//   - Static file serving from StaticsFolder
//   - SPA fallback: non-API routes serve index.html
//   - API 404s return JSON error response
//
// # Server Lifecycle
//
// Creation:
//
//	srv, err := server.New(cfg, func(router *gin.RouterGroup) {
//	    handler.RegisterRoutes(router, authn)
//	})
//
// The registerFn callback receives a RouterGroup prefixed with /api/v1.
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Start automatically chooses HTTP or HTTPS based on TLS configuration.
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to complete.
//
// # Middleware
//
// The server applies two middleware to all routes:
//
// Logger Middleware (middlewares.Logger):
//   - Logs request start: method, path, query, IP, user-agent, timestamp
//   - Logs request end: all above + status code, latency
//   - Errors logged separately if present
//   - Uses zap structured logging with "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
//
// Authentication Middleware (middlewares.Authenticator):
//   - Not applied here; the registerFn callback attaches it to the API
//     group so /api/v1/health can stay open
//   - Validates HS256 bearer tokens and the role claim
//   - 401 {"error": "Unauthorized"} for missing/invalid tokens
//   - 403 {"error": "Unauthorized"} for valid tokens with the wrong role
//   - Stows the raw token in the request context for upstream forwarding
//
// # Metrics
//
// When Server.MetricsEnabled is set, Prometheus metrics are exposed on the
// root router at /metrics via promhttp. The endpoint is unauthenticated and
// carries operational counters only.
//
// # Static File Serving (Production Only)
//
// In production mode, the server serves:
//
//	/static/*     → StaticsFolder/
//	/             → StaticsFolder/index.html
//	/favicon.ico  → StaticsFolder/favicon.ico
//	/any/path     → StaticsFolder/index.html (SPA fallback)
//	/api/*        → 404 JSON error (if route not found)
//
// # TLS Configuration
//
// In production mode, TLS is configured with:
//   - Self-signed certificate generated at startup
//   - RSA private key
//   - 1 year certificate validity
//   - Certificate generated via pkg/certificates
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithServer(config.Server{
//	        Mode:          "prod",
//	        HTTPPort:      8443,
//	        StaticsFolder: "/app/static",
//	    }),
//	)
//
//	srv, err := server.New(cfg, func(router *gin.RouterGroup) {
//	    handler.RegisterRoutes(router, authn)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start in goroutine
//	go func() {
//	    if err := srv.Start(ctx); err != http.ErrServerClosed {
//	        log.Printf("server error: %v", err)
//	    }
//	}()
//
//	// Graceful shutdown on signal
//	<-shutdownCh
//	srv.Stop(ctx)
package server
