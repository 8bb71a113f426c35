package notify

import (
	"context"

	"labfeedback-backend/internal/models"
)

// Notifier delivers a completion notice to a user who has just reviewed the
// full product set. Implementations must be safe for concurrent use — the
// feedback handler fires notices from a background goroutine.
type Notifier interface {
	CompletionNotice(ctx context.Context, user *models.User) error
}
