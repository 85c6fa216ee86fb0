package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CompletionManual      = "manual_submit"
	CompletionTimeExpired = "time_expired"
)

// QuizResult is the persisted outcome of a completed attempt: the final
// score and the answers as submitted. Abandoned attempts leave no result.
type QuizResult struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AttemptID      string             `bson:"attemptId" json:"attemptId"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	QuizID         primitive.ObjectID `bson:"quizId" json:"quizId"`
	SubjectID      primitive.ObjectID `bson:"subjectId" json:"subjectId"`
	Score          int                `bson:"score" json:"score"`
	CorrectCount   int                `bson:"correctCount" json:"correctCount"`
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	CompletionType string             `bson:"completionType" json:"completionType"`
	Answers        map[string]int     `bson:"answers" json:"answers"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
