package attempt

import (
	"sync"
	"time"

	"learning-service/internal/models"
)

type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateAbandoned  State = "abandoned"
)

// Attempt is one user's run through a quiz. All mutation goes through the
// internal mutex so the timer tick and handler calls serialize; completion
// happens exactly once.
type Attempt struct {
	mu sync.Mutex

	ID     string
	QuizID string
	UserID string

	questions []models.Question

	current          int
	answers          map[string]int // question id (hex) -> selected option index
	remainingSeconds int
	state            State
	result           *Result
	startedAt        time.Time
}

// QuestionReview is the post-completion view of a single question.
type QuestionReview struct {
	QuestionID     string `json:"questionId"`
	Correct        bool   `json:"correct"`
	CorrectOption  int    `json:"correctOption"`
	SelectedOption int    `json:"selectedOption"` // -1 when unanswered
	Answered       bool   `json:"answered"`
	Explanation    string `json:"explanation,omitempty"`
}

// Result is the scored outcome of a completed attempt.
type Result struct {
	Score          int              `json:"score"`
	CorrectCount   int              `json:"correctCount"`
	TotalQuestions int              `json:"totalQuestions"`
	CompletionType string           `json:"completionType"`
	Answers        map[string]int   `json:"answers"`
	Breakdown      []QuestionReview `json:"breakdown"`
}

// Snapshot is a read-only view of attempt state for status endpoints.
type Snapshot struct {
	ID               string    `json:"id"`
	QuizID           string    `json:"quizId"`
	CurrentQuestion  int       `json:"currentQuestion"`
	TotalQuestions   int       `json:"totalQuestions"`
	AnsweredCount    int       `json:"answeredCount"`
	RemainingSeconds int       `json:"remainingSeconds"`
	State            State     `json:"state"`
	StartedAt        time.Time `json:"startedAt"`
}
