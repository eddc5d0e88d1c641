// Package feedback implements the dashboard's transient notification slot: one
// globally visible message that any mutation may set, replaced immediately by the
// next one and dismissed after a fixed duration or on request.
package feedback

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL matches the toast duration of the dashboard.
const DefaultTTL = 5 * time.Second

// Severity of a feedback message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// ErrInvalidSeverity is returned when publishing with an unknown severity.
var ErrInvalidSeverity = errors.New("feedback: invalid severity")

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityInfo, SeverityWarning:
		return true
	}
	return false
}

// Message is the content of the slot.
type Message struct {
	Severity  Severity  `json:"severity"`
	Text      string    `json:"text"`
	ShownAt   time.Time `json:"shown_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Channel is a single-slot notification sink.
type Channel interface {
	// Publish replaces the current message.
	Publish(ctx context.Context, severity Severity, text string) error
	// Current returns the visible message, or nil when the slot is empty or expired.
	Current(ctx context.Context) (*Message, error)
	// Dismiss empties the slot.
	Dismiss(ctx context.Context) error
}

// Discard is a Channel that drops everything.
type Discard struct{}

func (Discard) Publish(context.Context, Severity, string) error { return nil }
func (Discard) Current(context.Context) (*Message, error)       { return nil, nil }
func (Discard) Dismiss(context.Context) error                   { return nil }
