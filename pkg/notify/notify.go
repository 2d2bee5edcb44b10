// Package notify is the outbound notification collaborator. Sends are
// best-effort: callers log failures and never fail the triggering request.
package notify

import (
	"context"
	"log"
	"time"
)

const sendTimeout = 3 * time.Second

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsoleSender logs instead of delivering. Stands in for the real
// SMS/email provider in development.
type ConsoleSender struct{}

func (ConsoleSender) Send(ctx context.Context, to, subject, body string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	log.Printf("[notify] to=%s subject=%q body=%q", to, subject, body)
	return nil
}

// NoopSender drops everything.
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, to, subject, body string) error { return nil }

// FromProvider picks the implementation once at startup.
func FromProvider(provider string) Sender {
	switch provider {
	case "none":
		return NoopSender{}
	default:
		return ConsoleSender{}
	}
}

// BestEffort runs a send with a bounded timeout and swallows the error.
func BestEffort(s Sender, to, subject, body string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := s.Send(ctx, to, subject, body); err != nil {
		log.Printf("notify failed (ignored): %v", err)
	}
}
