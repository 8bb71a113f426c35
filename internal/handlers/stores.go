package handlers

import (
	"context"

	"labfeedback-backend/internal/models"
	"labfeedback-backend/internal/repository"
)

// Store interfaces cover exactly the operations the handlers need. The mongo
// repositories satisfy them; tests swap in in-memory fakes.

type FeedbackStore interface {
	Create(ctx context.Context, entry *models.FeedbackEntry) error
	Find(ctx context.Context, filter repository.FeedbackFilter) ([]models.FeedbackEntry, error)
	Stats(ctx context.Context) (*repository.FeedbackStats, error)
}

type UserStore interface {
	RecordProduct(ctx context.Context, email, productID string) (*models.User, bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
}

type LabStore interface {
	All(ctx context.Context) ([]models.Lab, error)
	Seed(ctx context.Context, labs []models.Lab) (bool, error)
}

type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Seed(ctx context.Context, admin *models.Admin) (bool, error)
	TouchLastLogin(ctx context.Context, username string) error
}
