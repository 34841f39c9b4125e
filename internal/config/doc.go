// Package config defines the configuration structure for the admin console.
//
// Configuration is organized into logical sections (Server, Backend, Auth,
// Notifications) and uses code generation via optgen to create functional
// option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Backend        - Upstream management API connection
//	├── Auth           - Console JWT verification
//	├── Notifications  - Notification center and NATS fan-out
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬───────────────┬────────────────────────────────────────┐
//	│ Field            │ Default       │ Description                            │
//	├──────────────────┼───────────────┼────────────────────────────────────────┤
//	│ Mode             │ "dev"         │ Server mode: "prod" or "dev"           │
//	│ Address          │ "0.0.0.0"     │ Listen address                         │
//	│ HTTPPort         │ 8000          │ HTTP server listen port                │
//	│ StaticsFolder    │ ""            │ Path to static files for the admin UI  │
//	│ TLSHosts         │ ["localhost"] │ SANs for the self-signed certificate   │
//	│ MetricsEnabled   │ true          │ Expose Prometheus /metrics             │
//	└──────────────────┴───────────────┴────────────────────────────────────────┘
//
// Server modes:
//   - prod: HTTPS with a self-signed certificate, static file serving
//   - dev: plain HTTP, API only
//
// # Backend Configuration
//
//	┌──────────────────┬─────────────────────────┬───────────────────────────────┐
//	│ Field            │ Default                 │ Description                   │
//	├──────────────────┼─────────────────────────┼───────────────────────────────┤
//	│ URL              │ "http://localhost:5000" │ Management API base URL       │
//	│ TokenFile        │ ""                      │ Path to a service token file  │
//	│ ReadinessTimeout │ 30s                     │ Boot-time readiness probe cap │
//	└──────────────────┴─────────────────────────┴───────────────────────────────┘
//
// # Auth Configuration
//
//	┌───────────────┬─────────┬────────────────────────────────────────┐
//	│ Field         │ Default │ Description                            │
//	├───────────────┼─────────┼────────────────────────────────────────┤
//	│ Enabled       │ true    │ Enable JWT authentication              │
//	│ JWTSecretFile │ ""      │ Path to the HS256 signing secret       │
//	└───────────────┴─────────┴────────────────────────────────────────┘
//
// # Notifications Configuration
//
//	┌─────────────┬──────────────────────────────────┬─────────────────────────────┐
//	│ Field       │ Default                          │ Description                 │
//	├─────────────┼──────────────────────────────────┼─────────────────────────────┤
//	│ BufferSize  │ 100                              │ In-memory feed capacity     │
//	│ NatsURL     │ ""                               │ NATS server URL (optional)  │
//	│ NatsSubject │ "collabsec.console.notifications"│ Publish subject             │
//	└─────────────┴──────────────────────────────────┴─────────────────────────────┘
//
// # Loading
//
// Load(path) merges three sources in increasing order of precedence:
//
//  1. Struct defaults (creasty/defaults tags)
//  2. An optional YAML file
//  3. CONSOLE_* environment variables (viper, dots become underscores)
//
// For example CONSOLE_SERVER_HTTPPORT=9000 overrides server.httpPort from
// the file, which overrides the 8000 default.
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Backend Auth Notifications
//
// Generated helpers include:
//
//   - NewConfigurationWithOptions(...ConfigurationOption) - Create with options
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithServer(Server), WithBackend(Backend), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Usage Example
//
// Create configuration with defaults and overrides:
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithServer(config.Server{
//	        Mode:     "prod",
//	        HTTPPort: 8443,
//	    }),
//	    config.WithBackend(config.Backend{
//	        URL: "http://backend.collabsec.internal:5000",
//	    }),
//	    config.WithLogLevel("info"),
//	)
//
// Or create with individual options:
//
//	server := config.NewServerWithOptionsAndDefaults(
//	    config.WithHTTPPort(9000),
//	)
//
// # Debug Logging
//
// All fields are tagged with `debugmap:"visible"` allowing safe logging
// of configuration values via DebugMap():
//
//	log.Info("configuration loaded", zap.Any("config", cfg.DebugMap()))
//
// This produces a map suitable for structured logging without exposing
// sensitive values (if any were marked with `debugmap:"hidden"`).
package config
