package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FeedbackEntry is one rating+comment submission tied to a student and a
// product. Entries are immutable once written; there is no update or delete
// path. Field names match the stored documents exactly — do not rename.
type FeedbackEntry struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentName       string        `bson:"studentName" json:"studentName"`
	StudentEmail      string        `bson:"studentEmail" json:"studentEmail"`
	StudentDepartment string        `bson:"studentDepartment" json:"studentDepartment"`
	Rating            int           `bson:"rating" json:"rating"`
	Comment           string        `bson:"comment" json:"comment"`
	TableID           string        `bson:"tableId" json:"tableId"`
	Timestamp         string        `bson:"timestamp" json:"timestamp"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
}

// HasComment reports whether the entry carries a real comment.
// Whitespace-only comments count as empty.
func (f *FeedbackEntry) HasComment() bool {
	return strings.TrimSpace(f.Comment) != ""
}
