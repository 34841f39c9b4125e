package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/collabsec/admin-console/internal/metrics"
)

// DefaultCapacity bounds the center when the configured capacity is not
// positive.
const DefaultCapacity = 100

// Center is a bounded in-memory notification feed. When the buffer is full
// the oldest entries are dropped.
type Center struct {
	mu       sync.Mutex
	capacity int
	items    []Notification

	now func() time.Time
}

var _ Notifier = (*Center)(nil)

func NewCenter(capacity int) *Center {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Center{
		capacity: capacity,
		items:    make([]Notification, 0, capacity),
		now:      time.Now,
	}
}

func (c *Center) Success(title, description string) {
	c.add(LevelSuccess, title, description)
}

func (c *Center) Error(title, description string) {
	c.add(LevelError, title, description)
}

func (c *Center) Info(title, description string) {
	c.add(LevelInfo, title, description)
}

func (c *Center) add(level Level, title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, Notification{
		ID:          uuid.NewString(),
		Level:       level,
		Title:       title,
		Description: description,
		CreatedAt:   c.now(),
	})
	if len(c.items) > c.capacity {
		c.items = c.items[len(c.items)-c.capacity:]
	}

	metrics.NotificationsTotal.WithLabelValues(string(level)).Inc()
}

// Recent returns the buffered notifications newest first. The returned slice
// is a copy and safe to hold across further emissions.
func (c *Center) Recent() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	recent := make([]Notification, len(c.items))
	for i, n := range c.items {
		recent[len(c.items)-1-i] = n
	}
	return recent
}
