package services

import (
	"fmt"
	"sync"
)

// MockEmailService records outbound email for testing
type MockEmailService struct {
	sent     []EmailMessage
	failNext bool
	mu       sync.Mutex
}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SetAsMockForTesting sets this mock as the global email instance for testing
func (m *MockEmailService) SetAsMockForTesting() {
	SetEmailService(m)
}

// FailNext makes the next Send call fail
func (m *MockEmailService) FailNext() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = true
}

// Send records the message instead of delivering it
func (m *MockEmailService) Send(msg EmailMessage) (map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext {
		m.failNext = false
		return nil, fmt.Errorf("mock email provider failure")
	}

	m.sent = append(m.sent, msg)
	return map[string]interface{}{"id": fmt.Sprintf("mock-email-%d", len(m.sent))}, nil
}

// SentMessages returns a copy of all recorded messages
func (m *MockEmailService) SentMessages() []EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

// SentCount returns the number of recorded messages
func (m *MockEmailService) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// Clear removes all recorded messages
func (m *MockEmailService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failNext = false
}
