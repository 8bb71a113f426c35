package handlers

import (
	"context"
	"math"
	"slices"
	"sort"
	"time"

	"labfeedback-backend/internal/models"
	"labfeedback-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory stores mirroring the mongo repositories' contracts.

type fakeFeedbackStore struct {
	entries []models.FeedbackEntry
	err     error
}

func (f *fakeFeedbackStore) Create(ctx context.Context, entry *models.FeedbackEntry) error {
	if f.err != nil {
		return f.err
	}
	entry.ID = bson.NewObjectID()
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeFeedbackStore) Find(ctx context.Context, filter repository.FeedbackFilter) ([]models.FeedbackEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.FeedbackEntry{}
	for _, e := range f.entries {
		if filter.Email != "" && e.StudentEmail != filter.Email {
			continue
		}
		if filter.ProductID != "" && e.TableID != filter.ProductID {
			continue
		}
		if filter.Department != "" && e.StudentDepartment != filter.Department {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (f *fakeFeedbackStore) Stats(ctx context.Context) (*repository.FeedbackStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	emails := map[string]struct{}{}
	sum := 0
	for _, e := range f.entries {
		emails[e.StudentEmail] = struct{}{}
		sum += e.Rating
	}
	avg := 0.0
	if len(f.entries) > 0 {
		avg = float64(sum) / float64(len(f.entries))
	}
	return &repository.FeedbackStats{
		TotalUsers:    len(emails),
		TotalFeedback: int64(len(f.entries)),
		AverageRating: math.Round(avg*100) / 100,
	}, nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) RecordProduct(ctx context.Context, email, productID string) (*models.User, bool, error) {
	now := time.Now()
	u, ok := f.users[email]
	if !ok {
		u = &models.User{Email: email, CompletedFeedback: []string{}, CreatedAt: now}
		f.users[email] = u
	}
	if !slices.Contains(u.CompletedFeedback, productID) {
		u.CompletedFeedback = append(u.CompletedFeedback, productID)
	}
	u.UpdatedAt = now

	justCompleted := false
	if u.Completed() && u.CompletionDate == nil {
		ts := now
		u.CompletionDate = &ts
		justCompleted = true
	}
	out := *u
	return &out, justCompleted, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (f *fakeUserStore) All(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeLabStore struct {
	labs []models.Lab
}

func (f *fakeLabStore) All(ctx context.Context) ([]models.Lab, error) {
	return f.labs, nil
}

func (f *fakeLabStore) Seed(ctx context.Context, labs []models.Lab) (bool, error) {
	if len(f.labs) > 0 {
		return false, nil
	}
	f.labs = labs
	return true, nil
}

type fakeAdminStore struct {
	admin       *models.Admin
	lastLoginAt *time.Time
}

func (f *fakeAdminStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if f.admin == nil || f.admin.Username != username {
		return nil, nil
	}
	out := *f.admin
	return &out, nil
}

func (f *fakeAdminStore) Seed(ctx context.Context, admin *models.Admin) (bool, error) {
	if f.admin != nil {
		return false, nil
	}
	admin.CreatedAt = time.Now()
	f.admin = admin
	return true, nil
}

func (f *fakeAdminStore) TouchLastLogin(ctx context.Context, username string) error {
	now := time.Now()
	f.lastLoginAt = &now
	return nil
}
