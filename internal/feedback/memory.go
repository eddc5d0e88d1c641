package feedback

import (
	"context"
	"sync"
	"time"
)

// Memory keeps the slot in process memory.
type Memory struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	msg *Message
}

// NewMemory constructs an in-memory channel. A non-positive ttl uses DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now}
}

// WithClock overrides the time source; used by tests.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
	return m
}

func (m *Memory) Publish(_ context.Context, severity Severity, text string) error {
	if !severity.Valid() {
		return ErrInvalidSeverity
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	shown := m.now()
	m.msg = &Message{Severity: severity, Text: text, ShownAt: shown, ExpiresAt: shown.Add(m.ttl)}
	return nil
}

func (m *Memory) Current(context.Context) (*Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.msg == nil {
		return nil, nil
	}
	if !m.now().Before(m.msg.ExpiresAt) {
		m.msg = nil
		return nil, nil
	}
	out := *m.msg
	return &out, nil
}

func (m *Memory) Dismiss(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msg = nil
	return nil
}
