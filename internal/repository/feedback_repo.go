package repository

import (
	"context"
	"math"
	"time"

	"labfeedback-backend/internal/apperr"
	"labfeedback-backend/internal/database"
	"labfeedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection("feedback"),
	}
}

// FeedbackFilter narrows a feedback query. Empty fields are ignored; set
// fields are exact matches combined with AND.
type FeedbackFilter struct {
	Email      string
	ProductID  string
	Department string
}

// FeedbackStats is the global summary returned by GET /feedback/stats.
type FeedbackStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalFeedback int64   `json:"totalFeedback"`
	AverageRating float64 `json:"averageRating"`
}

func (r *FeedbackRepo) Create(ctx context.Context, entry *models.FeedbackEntry) error {
	entry.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return apperr.Storage(err)
	}
	entry.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Find returns entries matching the filter, most recent submission first.
// An empty filter returns everything.
func (r *FeedbackRepo) Find(ctx context.Context, filter FeedbackFilter) ([]models.FeedbackEntry, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["studentEmail"] = filter.Email
	}
	if filter.ProductID != "" {
		query["tableId"] = filter.ProductID
	}
	if filter.Department != "" {
		query["studentDepartment"] = filter.Department
	}

	cursor, err := r.collection.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, apperr.Storage(err)
	}

	entries := []models.FeedbackEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperr.Storage(err)
	}
	return entries, nil
}

// Stats computes total entry count, distinct submitter count and the mean
// rating (rounded to two decimals, zero on an empty collection).
func (r *FeedbackRepo) Stats(ctx context.Context) (*FeedbackStats, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Storage(err)
	}

	res := r.collection.Distinct(ctx, "studentEmail", bson.M{})
	if err := res.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	var emails []string
	if err := res.Decode(&emails); err != nil {
		return nil, apperr.Storage(err)
	}

	avg := 0.0
	if total > 0 {
		cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			}}},
		})
		if err != nil {
			return nil, apperr.Storage(err)
		}
		var out []struct {
			AvgRating float64 `bson:"avgRating"`
		}
		if err := cursor.All(ctx, &out); err != nil {
			return nil, apperr.Storage(err)
		}
		if len(out) > 0 {
			avg = out[0].AvgRating
		}
	}

	return &FeedbackStats{
		TotalUsers:    len(emails),
		TotalFeedback: total,
		AverageRating: math.Round(avg*100) / 100,
	}, nil
}

// EnsureIndexes creates necessary indexes for the feedback collection
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "studentEmail", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tableId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
