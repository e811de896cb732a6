package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/mzimmersmith/portfolio-api/internal/pkg/logger"
)

// LogDispatcher is a development sink: it logs the message instead of
// sending it and fabricates a message id, so the full request path can be
// exercised without provider credentials.
type LogDispatcher struct{}

// NewLogDispatcher creates a log-only dispatcher.
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

// Send logs the message (recipient redacted) and returns a generated id.
func (d *LogDispatcher) Send(ctx context.Context, msg *Message) (*Result, error) {
	id := uuid.NewString()
	logger.Info("email dispatched (log only)",
		"id", id,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
	)
	return &Result{ID: id}, nil
}
