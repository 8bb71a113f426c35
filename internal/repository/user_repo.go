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

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		collection: database.GetCollection("users"),
	}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, apperr.Storage(err)
	}
	return &user, nil
}

func (r *UserRepo) All(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Storage(err)
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}

// RecordProduct adds productID to the user's distinct reviewed set, creating
// the user on first submission. $addToSet keeps re-submissions of the same
// product from growing the set, so the call is idempotent per (email,
// productID). The follow-up update sets completionDate at most once: the
// $exists filter means a concurrent submission cannot overwrite it. Returns
// the updated user and whether this call crossed the completion threshold.
func (r *UserRepo) RecordProduct(ctx context.Context, email, productID string) (*models.User, bool, error) {
	now := time.Now()
	res := r.collection.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{
			"$addToSet": bson.M{"completedFeedback": productID},
			"$set":      bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{
				"name":          "",
				"department":    "",
				"totalRating":   0,
				"averageRating": 0,
				"createdAt":     now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var user models.User
	if err := res.Decode(&user); err != nil {
		return nil, false, apperr.Storage(err)
	}

	justCompleted := false
	if user.Completed() && user.CompletionDate == nil {
		result, err := r.collection.UpdateOne(ctx,
			bson.M{"email": email, "completionDate": bson.M{"$exists": false}},
			bson.M{"$set": bson.M{"completionDate": now}},
		)
		if err != nil {
			return nil, false, apperr.Storage(err)
		}
		justCompleted = result.ModifiedCount > 0
		user.CompletionDate = &now
	}
	return &user, justCompleted, nil
}

// EnsureIndexes creates necessary indexes for the users collection
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
