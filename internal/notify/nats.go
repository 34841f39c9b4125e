package notify

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Publisher mirrors notifications onto a NATS subject as JSON so external
// consumers (audit trails, chat bridges) can follow the console feed.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

var _ Notifier = (*Publisher)(nil)

// NewPublisher connects to the NATS server at url. The connection reconnects
// indefinitely; notifications emitted while disconnected are dropped.
func NewPublisher(url, subject string) (*Publisher, error) {
	log := zap.S().Named("notify")
	opts := []nats.Option{
		nats.Name("collabsec-admin-console"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warnw("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infow("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc, subject: subject}, nil
}

func (p *Publisher) Success(title, description string) {
	p.publish(LevelSuccess, title, description)
}

func (p *Publisher) Error(title, description string) {
	p.publish(LevelError, title, description)
}

func (p *Publisher) Info(title, description string) {
	p.publish(LevelInfo, title, description)
}

func (p *Publisher) publish(level Level, title, description string) {
	if p.nc == nil || p.nc.IsClosed() {
		return
	}

	payload, err := json.Marshal(Notification{
		ID:          uuid.NewString(),
		Level:       level,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		zap.S().Named("notify").Errorw("Failed to marshal notification", "error", err)
		return
	}
	if err := p.nc.Publish(p.subject, payload); err != nil {
		zap.S().Named("notify").Warnw("Failed to publish notification", "subject", p.subject, "error", err)
	}
}

// Close drains buffered messages before closing the connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}
