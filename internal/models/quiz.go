package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Question struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question      string             `bson:"question" json:"question"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer int                `bson:"correctAnswer" json:"correctAnswer"`
	Explanation   string             `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// Quiz is a multiple-choice quiz owned by a unit. At most one quiz exists
// per unit; lookups go through the unit id.
type Quiz struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	UnitID    primitive.ObjectID `bson:"unitId" json:"unitId"`
	SubjectID primitive.ObjectID `bson:"subjectId" json:"subjectId"`
	Questions []Question         `bson:"questions" json:"questions"`
	TimeLimit int                `bson:"timeLimit" json:"timeLimit"` // minutes
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the invariants enforced on authoring paths: every question
// has options and a correct answer index within range.
func (q *Quiz) Validate() bool {
	for _, question := range q.Questions {
		if len(question.Options) == 0 {
			return false
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
			return false
		}
	}
	return true
}
