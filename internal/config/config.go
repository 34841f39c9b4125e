package config

import "time"

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Backend Auth Notifications

// Configuration is the root configuration for the admin console.
type Configuration struct {
	Server        Server        `debugmap:"visible"`
	Backend       Backend       `debugmap:"visible"`
	Auth          Auth          `debugmap:"visible"`
	Notifications Notifications `debugmap:"visible"`

	LogLevel  string `debugmap:"visible" default:"info"`
	LogFormat string `debugmap:"visible" default:"pretty"`
}

// Server holds the HTTP server settings.
type Server struct {
	// Mode selects "dev" (plain HTTP) or "prod" (TLS plus statics).
	Mode           string   `debugmap:"visible" default:"dev"`
	Address        string   `debugmap:"visible" default:"0.0.0.0"`
	HTTPPort       int      `debugmap:"visible" default:"8000"`
	StaticsFolder  string   `debugmap:"visible"`
	TLSHosts       []string `debugmap:"visible" default:"[\"localhost\"]"`
	MetricsEnabled bool     `debugmap:"visible" default:"true"`
}

// Backend holds the connection settings for the upstream management API.
type Backend struct {
	URL              string        `debugmap:"visible" default:"http://localhost:5000"`
	TokenFile        string        `debugmap:"visible"`
	ReadinessTimeout time.Duration `debugmap:"visible" default:"30s"`
}

// Auth holds the console's own JWT verification settings.
type Auth struct {
	Enabled       bool   `debugmap:"visible" default:"true"`
	JWTSecretFile string `debugmap:"visible"`
}

// Notifications holds the notification center and NATS fan-out settings.
// NatsURL is optional; when empty, notifications stay in-process.
type Notifications struct {
	BufferSize  int    `debugmap:"visible" default:"100"`
	NatsURL     string `debugmap:"visible"`
	NatsSubject string `debugmap:"visible" default:"collabsec.console.notifications"`
}
