// Package dispatch abstracts the outbound email provider behind a single
// Send contract so the contact handler never depends on a concrete API.
package dispatch

import (
	"context"
	"fmt"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Result reports a successful dispatch.
type Result struct {
	// ID is the provider's message identifier. May be empty if the provider
	// did not return one.
	ID string
}

// ProviderError is a structured failure reported by the email provider
// itself (as opposed to a transport or programming error). Callers map it
// to an upstream-failure response.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("email provider error (status %d)", e.StatusCode)
	}
	return e.Message
}

// Dispatcher sends one email. Implementations return *ProviderError when the
// provider itself rejected the message, and any other error for transport or
// client faults.
type Dispatcher interface {
	Send(ctx context.Context, msg *Message) (*Result, error)
}
