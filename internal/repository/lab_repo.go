package repository

import (
	"context"

	"labfeedback-backend/internal/apperr"
	"labfeedback-backend/internal/database"
	"labfeedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type LabRepo struct {
	collection *mongo.Collection
}

func NewLabRepo() *LabRepo {
	return &LabRepo{
		collection: database.GetCollection("labs"),
	}
}

func (r *LabRepo) All(ctx context.Context) ([]models.Lab, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Storage(err)
	}
	labs := []models.Lab{}
	if err := cursor.All(ctx, &labs); err != nil {
		return nil, apperr.Storage(err)
	}
	return labs, nil
}

// Seed inserts the static catalog if the collection is empty. Reports whether
// anything was written, so repeated /init calls are no-ops.
func (r *LabRepo) Seed(ctx context.Context, labs []models.Lab) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, apperr.Storage(err)
	}
	if count > 0 {
		return false, nil
	}
	if _, err := r.collection.InsertMany(ctx, labs); err != nil {
		return false, apperr.Storage(err)
	}
	return true, nil
}

// EnsureIndexes creates necessary indexes for the labs collection
func (r *LabRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "labId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
