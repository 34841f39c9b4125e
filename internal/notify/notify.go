// Package notify delivers operator-facing notifications. The service layer
// emits through the Notifier interface and stays unaware of the sinks behind
// it: an in-memory center served over the API, and optionally a NATS
// publisher for external consumers.
package notify

import (
	"time"
)

// Level classifies a notification for display purposes.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a single operator-facing message.
type Notification struct {
	ID          string    `json:"id"`
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier is the sink contract the service layer emits through.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
	Info(title, description string)
}
