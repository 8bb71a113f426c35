package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CompletionThreshold is the number of distinct products a user must review
// to unlock the reward screen.
const CompletionThreshold = 25

// User is created lazily on a student's first feedback submission. The
// completedFeedback set holds distinct product ids; completionDate is set at
// most once, when the set first reaches CompletionThreshold, and never
// cleared. totalRating/averageRating are denormalized — the leaderboard
// recomputes them from the feedback log instead of trusting them.
type User struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string        `bson:"name" json:"name"`
	Email             string        `bson:"email" json:"email"`
	Department        string        `bson:"department" json:"department"`
	CompletedFeedback []string      `bson:"completedFeedback" json:"completedFeedback"`
	CompletionDate    *time.Time    `bson:"completionDate,omitempty" json:"completionDate,omitempty"`
	TotalRating       int           `bson:"totalRating" json:"totalRating"`
	AverageRating     float64       `bson:"averageRating" json:"averageRating"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Completed reports whether the user has reviewed enough distinct products.
func (u *User) Completed() bool {
	return len(u.CompletedFeedback) >= CompletionThreshold
}
