package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Example struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Code        string `bson:"code" json:"code"`
	Language    string `bson:"language" json:"language"`
}

// Topic carries the unit of content and completion. It holds a denormalized
// dual reference: SubjectID must equal the parent subject of UnitID.
type Topic struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Examples  []Example          `bson:"examples" json:"examples"`
	UnitID    primitive.ObjectID `bson:"unitId" json:"unitId"`
	SubjectID primitive.ObjectID `bson:"subjectId" json:"subjectId"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
