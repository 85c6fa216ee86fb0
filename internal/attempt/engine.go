package attempt

import (
	"math"
	"time"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

// Start begins an attempt on the given quiz: question index 0, no answers
// recorded, full time budget. A quiz with zero questions cannot be started.
func Start(id string, quiz *models.Quiz, userID string) (*Attempt, error) {
	if len(quiz.Questions) == 0 {
		return nil, common.ErrEmptyQuiz
	}
	questions := make([]models.Question, len(quiz.Questions))
	copy(questions, quiz.Questions)
	return &Attempt{
		ID:               id,
		QuizID:           quiz.ID.Hex(),
		UserID:           userID,
		questions:        questions,
		answers:          make(map[string]int),
		remainingSeconds: quiz.TimeLimit * 60,
		state:            StateInProgress,
		startedAt:        time.Now(),
	}, nil
}

// SelectAnswer records the chosen option for a question, overwriting any
// prior choice. Out-of-range options are rejected before any state changes.
func (a *Attempt) SelectAnswer(questionID string, optionIndex int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateInProgress {
		return common.ErrAlreadyCompleted
	}
	q := a.questionByID(questionID)
	if q == nil {
		return common.ErrNotFound
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return common.ErrInvalidOption
	}
	a.answers[questionID] = optionIndex
	return nil
}

// Advance moves to the next question when the current one has an answer
// recorded; with no answer it is a no-op. On the last question it behaves
// as Submit, returning the result.
func (a *Attempt) Advance() (*Result, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateInProgress {
		return nil, false, common.ErrAlreadyCompleted
	}
	if _, answered := a.answers[a.questions[a.current].ID.Hex()]; !answered {
		return nil, false, nil
	}
	if a.current == len(a.questions)-1 {
		res := a.complete(models.CompletionManual)
		return res, true, nil
	}
	a.current++
	return nil, true, nil
}

// Retreat moves to the previous question. It is always permitted while the
// attempt is in progress and never touches recorded answers.
func (a *Attempt) Retreat() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateInProgress {
		return common.ErrAlreadyCompleted
	}
	if a.current > 0 {
		a.current--
	}
	return nil
}

// Submit scores the attempt from whatever answers are recorded; unanswered
// questions count as incorrect. A second submit is rejected, never rescored.
func (a *Attempt) Submit() (*Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateInProgress {
		return nil, common.ErrAlreadyCompleted
	}
	return a.complete(models.CompletionManual), nil
}

// Tick decrements the remaining time by one second. When time runs out the
// attempt is force-submitted with the answers recorded so far.
func (a *Attempt) Tick() (*Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateInProgress {
		return nil, common.ErrAlreadyCompleted
	}
	if a.remainingSeconds > 0 {
		a.remainingSeconds--
	}
	if a.remainingSeconds <= 0 {
		return a.complete(models.CompletionTimeExpired), nil
	}
	return nil, nil
}

// Abandon silently ends the attempt: no score, no result, no trace.
func (a *Attempt) Abandon() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateInProgress {
		a.state = StateAbandoned
	}
}

// ReviewFor returns the review for one question of a completed attempt.
func (a *Attempt) ReviewFor(questionID string) (*QuestionReview, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateCompleted {
		return nil, common.ErrNotFound
	}
	for _, r := range a.result.Breakdown {
		if r.QuestionID == questionID {
			review := r
			return &review, nil
		}
	}
	return nil, common.ErrNotFound
}

// Result returns the scored outcome, or nil while the attempt is open.
func (a *Attempt) Result() *Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

func (a *Attempt) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		ID:               a.ID,
		QuizID:           a.QuizID,
		CurrentQuestion:  a.current,
		TotalQuestions:   len(a.questions),
		AnsweredCount:    len(a.answers),
		RemainingSeconds: a.remainingSeconds,
		State:            a.state,
		StartedAt:        a.startedAt,
	}
}

// complete scores the attempt and transitions it to completed. Callers must
// hold the mutex and have checked the state.
func (a *Attempt) complete(completionType string) *Result {
	correct := 0
	breakdown := make([]QuestionReview, 0, len(a.questions))
	answers := make(map[string]int, len(a.answers))

	for _, q := range a.questions {
		id := q.ID.Hex()
		review := QuestionReview{
			QuestionID:     id,
			CorrectOption:  q.CorrectAnswer,
			SelectedOption: -1,
			Explanation:    q.Explanation,
		}
		if selected, ok := a.answers[id]; ok {
			review.Answered = true
			review.SelectedOption = selected
			answers[id] = selected
			if selected == q.CorrectAnswer {
				review.Correct = true
				correct++
			}
		}
		breakdown = append(breakdown, review)
	}

	a.state = StateCompleted
	a.result = &Result{
		Score:          scorePercentage(correct, len(a.questions)),
		CorrectCount:   correct,
		TotalQuestions: len(a.questions),
		CompletionType: completionType,
		Answers:        answers,
		Breakdown:      breakdown,
	}
	return a.result
}

func (a *Attempt) questionByID(id string) *models.Question {
	for i := range a.questions {
		if a.questions[i].ID.Hex() == id {
			return &a.questions[i]
		}
	}
	return nil
}

// scorePercentage rounds half-up: 2 of 3 correct scores 67.
func scorePercentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
