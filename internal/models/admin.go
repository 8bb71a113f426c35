package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Admin is the single seeded credential pair for the admin panel. The
// password is stored as-is; hardening is out of scope for this deployment.
type Admin struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string        `bson:"username" json:"username"`
	Password    string        `bson:"password" json:"-"`
	LastLogin   *time.Time    `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	Permissions []string      `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}
