package testutils

import (
	"context"
	"sync"

	"github.com/wneessen/go-mail"
)

// MockMailClient stands in for go-mail's SMTP client. It records every
// message it is asked to deliver and can be told to fail.
type MockMailClient struct {
	mu       sync.Mutex
	SendErr  error
	messages []*mail.Msg
}

func (m *MockMailClient) DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendErr != nil {
		return m.SendErr
	}

	m.messages = append(m.messages, messages...)
	return nil
}

func (m *MockMailClient) Sent() []*mail.Msg {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*mail.Msg, len(m.messages))
	copy(out, m.messages)
	return out
}
