package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unit is an ordered subdivision of a Subject. Order values are unique
// within a subject and define navigation sequence.
type Unit struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	SubjectID   primitive.ObjectID   `bson:"subjectId" json:"subjectId"`
	Topics      []primitive.ObjectID `bson:"topics" json:"topics"`
	Order       int                  `bson:"order" json:"order"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
