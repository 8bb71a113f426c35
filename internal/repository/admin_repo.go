package repository

import (
	"context"
	"time"

	"labfeedback-backend/internal/apperr"
	"labfeedback-backend/internal/database"
	"labfeedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type AdminRepo struct {
	collection *mongo.Collection
}

func NewAdminRepo() *AdminRepo {
	return &AdminRepo{
		collection: database.GetCollection("admins"),
	}
}

func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, apperr.Storage(err)
	}
	return &admin, nil
}

// Seed inserts the admin credential if the collection is empty. Reports
// whether anything was written.
func (r *AdminRepo) Seed(ctx context.Context, admin *models.Admin) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, apperr.Storage(err)
	}
	if count > 0 {
		return false, nil
	}
	admin.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		return false, apperr.Storage(err)
	}
	admin.ID = result.InsertedID.(bson.ObjectID)
	return true, nil
}

func (r *AdminRepo) TouchLastLogin(ctx context.Context, username string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"username": username}, bson.M{
		"$set": bson.M{"lastLogin": time.Now()},
	})
	return apperr.Storage(err)
}

// EnsureIndexes creates necessary indexes for the admins collection
func (r *AdminRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
