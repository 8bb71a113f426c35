package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Product is one reviewable item inside a lab. The id is unique across the
// whole catalog and is the sole key feedback entries are stored under.
type Product struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Icon string `bson:"icon" json:"icon"`
}

// Lab is a static catalog entity: an ordered list of products under one room.
// Seeded once by POST /init and read-only thereafter.
type Lab struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LabID    string        `bson:"labId" json:"labId"`
	LabName  string        `bson:"labName" json:"labName"`
	Products []Product     `bson:"products" json:"products"`
}
