package notify

import (
	"context"
	"sync"

	"labfeedback-backend/internal/models"
)

// MockNotifier records notice recipients instead of sending email. Used in
// tests and wherever outbound mail is unwanted.
type MockNotifier struct {
	mu         sync.Mutex
	recipients []string
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) CompletionNotice(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipients = append(m.recipients, user.Email)
	return nil
}

// Recipients returns a copy of every email a notice was recorded for.
func (m *MockNotifier) Recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.recipients))
	copy(out, m.recipients)
	return out
}
