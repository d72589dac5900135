package mailer

import (
	"context"
	"sync"
)

// MockSender records messages instead of delivering them. Used in tests and
// when the service runs without Microsoft credentials.
type MockSender struct {
	mu   sync.Mutex
	sent []Message
	Err  error // returned from Send when set
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) Send(ctx context.Context, msg Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

// Sent returns a copy of the recorded messages.
func (m *MockSender) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
