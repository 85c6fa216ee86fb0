package attempt

import (
	"errors"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

// buildQuiz makes a quiz where every question has 4 options and the
// correct answer follows the given key.
func buildQuiz(correctAnswers []int, timeLimitMinutes int) *models.Quiz {
	quiz := &models.Quiz{
		ID:        primitive.NewObjectID(),
		Title:     "Test Quiz",
		TimeLimit: timeLimitMinutes,
	}
	for _, correct := range correctAnswers {
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:            primitive.NewObjectID(),
			Question:      "pick one",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: correct,
		})
	}
	return quiz
}

func mustStart(t *testing.T, quiz *models.Quiz) *Attempt {
	t.Helper()
	att, err := Start("attempt-1", quiz, "user-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return att
}

func questionID(quiz *models.Quiz, i int) string {
	return quiz.Questions[i].ID.Hex()
}

func TestStartEmptyQuiz(t *testing.T) {
	quiz := &models.Quiz{ID: primitive.NewObjectID(), Title: "empty", TimeLimit: 10}
	if _, err := Start("attempt-1", quiz, "user-1"); !errors.Is(err, common.ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}
}

func TestScoring(t *testing.T) {
	testCases := []struct {
		name          string
		correctKey    []int
		selections    []int // per question; -1 leaves it unanswered
		expectedScore int
		expectedRight int
	}{
		{"all correct", []int{0, 1, 2}, []int{0, 1, 2}, 100, 3},
		{"none correct", []int{0, 1, 2}, []int{1, 2, 0}, 0, 0},
		{"two of three rounds up", []int{0, 2, 1}, []int{0, 1, 1}, 67, 2},
		{"unanswered count as incorrect", []int{0, 0, 0, 0}, []int{0, -1, -1, 0}, 50, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := buildQuiz(tc.correctKey, 10)
			att := mustStart(t, quiz)

			for i, sel := range tc.selections {
				if sel < 0 {
					continue
				}
				if err := att.SelectAnswer(questionID(quiz, i), sel); err != nil {
					t.Fatalf("SelectAnswer(%d): %v", i, err)
				}
			}

			res, err := att.Submit()
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if res.Score != tc.expectedScore {
				t.Errorf("expected score %d, got %d", tc.expectedScore, res.Score)
			}
			if res.CorrectCount != tc.expectedRight {
				t.Errorf("expected %d correct, got %d", tc.expectedRight, res.CorrectCount)
			}
			if res.TotalQuestions != len(tc.correctKey) {
				t.Errorf("expected %d total, got %d", len(tc.correctKey), res.TotalQuestions)
			}
			if res.CompletionType != models.CompletionManual {
				t.Errorf("expected manual completion, got %s", res.CompletionType)
			}
		})
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	quiz := buildQuiz([]int{2}, 10)
	att := mustStart(t, quiz)
	qid := questionID(quiz, 0)

	if err := att.SelectAnswer(qid, 0); err != nil {
		t.Fatalf("first select: %v", err)
	}
	if err := att.SelectAnswer(qid, 2); err != nil {
		t.Fatalf("second select: %v", err)
	}
	if err := att.SelectAnswer(qid, 2); err != nil {
		t.Fatalf("repeat select: %v", err)
	}

	res, err := att.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 100 {
		t.Errorf("last selection should win, expected 100 got %d", res.Score)
	}
	if res.Answers[qid] != 2 {
		t.Errorf("expected recorded answer 2, got %d", res.Answers[qid])
	}
}

func TestSelectAnswerValidation(t *testing.T) {
	quiz := buildQuiz([]int{0}, 10)
	att := mustStart(t, quiz)
	qid := questionID(quiz, 0)

	if err := att.SelectAnswer(qid, 7); !errors.Is(err, common.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption for index 7, got %v", err)
	}
	if err := att.SelectAnswer(qid, -1); !errors.Is(err, common.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption for index -1, got %v", err)
	}
	// the rejected selection must not leave a partial write
	if got := att.Snapshot().AnsweredCount; got != 0 {
		t.Errorf("expected 0 answers after rejected selections, got %d", got)
	}

	if err := att.SelectAnswer(primitive.NewObjectID().Hex(), 0); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown question, got %v", err)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	quiz := buildQuiz([]int{0, 1}, 10)
	att := mustStart(t, quiz)

	res, moved, err := att.Advance()
	if err != nil || res != nil || moved {
		t.Fatalf("advance without answer should be a no-op, got res=%v moved=%v err=%v", res, moved, err)
	}
	if att.Snapshot().CurrentQuestion != 0 {
		t.Errorf("current question moved without an answer")
	}

	if err := att.SelectAnswer(questionID(quiz, 0), 0); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	res, moved, err = att.Advance()
	if err != nil || res != nil || !moved {
		t.Fatalf("advance with answer should move, got res=%v moved=%v err=%v", res, moved, err)
	}
	if att.Snapshot().CurrentQuestion != 1 {
		t.Errorf("expected current question 1, got %d", att.Snapshot().CurrentQuestion)
	}
}

func TestAdvanceOnLastQuestionSubmits(t *testing.T) {
	quiz := buildQuiz([]int{0, 1}, 10)
	att := mustStart(t, quiz)

	if err := att.SelectAnswer(questionID(quiz, 0), 0); err != nil {
		t.Fatal(err)
	}
	if _, _, err := att.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := att.SelectAnswer(questionID(quiz, 1), 1); err != nil {
		t.Fatal(err)
	}

	res, _, err := att.Advance()
	if err != nil {
		t.Fatalf("Advance on last question: %v", err)
	}
	if res == nil {
		t.Fatal("expected advancing past the last question to complete the attempt")
	}
	if res.Score != 100 {
		t.Errorf("expected 100, got %d", res.Score)
	}
	if res.CompletionType != models.CompletionManual {
		t.Errorf("expected manual completion, got %s", res.CompletionType)
	}
}

func TestRetreat(t *testing.T) {
	quiz := buildQuiz([]int{0, 1, 2}, 10)
	att := mustStart(t, quiz)

	// retreat at the first question stays put
	if err := att.Retreat(); err != nil {
		t.Fatalf("Retreat at start: %v", err)
	}
	if att.Snapshot().CurrentQuestion != 0 {
		t.Errorf("retreat at question 0 should stay at 0")
	}

	if err := att.SelectAnswer(questionID(quiz, 0), 0); err != nil {
		t.Fatal(err)
	}
	if _, _, err := att.Advance(); err != nil {
		t.Fatal(err)
	}

	if err := att.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	snap := att.Snapshot()
	if snap.CurrentQuestion != 0 {
		t.Errorf("expected current question 0 after retreat, got %d", snap.CurrentQuestion)
	}
	if snap.AnsweredCount != 1 {
		t.Errorf("retreat must not touch recorded answers, got %d", snap.AnsweredCount)
	}
}

func TestSubmitOnlyOnce(t *testing.T) {
	quiz := buildQuiz([]int{0}, 10)
	att := mustStart(t, quiz)

	if _, err := att.Submit(); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if _, err := att.Submit(); !errors.Is(err, common.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted on second submit, got %v", err)
	}
	if err := att.SelectAnswer(questionID(quiz, 0), 0); !errors.Is(err, common.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted selecting after submit, got %v", err)
	}
	if err := att.Retreat(); !errors.Is(err, common.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted retreating after submit, got %v", err)
	}
}

func TestConcurrentSubmitCompletesOnce(t *testing.T) {
	quiz := buildQuiz([]int{0, 1, 2, 3}, 10)
	att := mustStart(t, quiz)

	var wg sync.WaitGroup
	successes := make(chan *Result, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res, err := att.Submit(); err == nil {
				successes <- res
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly one successful submit, got %d", count)
	}
}

func TestTickExpiryForceSubmits(t *testing.T) {
	// two of five answered, one minute budget
	quiz := buildQuiz([]int{0, 0, 0, 0, 0}, 1)
	att := mustStart(t, quiz)

	if err := att.SelectAnswer(questionID(quiz, 0), 0); err != nil {
		t.Fatal(err)
	}
	if err := att.SelectAnswer(questionID(quiz, 1), 0); err != nil {
		t.Fatal(err)
	}

	var res *Result
	for i := 0; i < 60; i++ {
		var err error
		res, err = att.Tick()
		if err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
		if res != nil {
			if i != 59 {
				t.Fatalf("expired after %d ticks, expected 60", i+1)
			}
			break
		}
	}
	if res == nil {
		t.Fatal("expected the final tick to force-submit")
	}
	if res.CompletionType != models.CompletionTimeExpired {
		t.Errorf("expected time_expired, got %s", res.CompletionType)
	}
	if res.CorrectCount != 2 || res.Score != 40 {
		t.Errorf("expected 2 correct for score 40, got %d correct score %d", res.CorrectCount, res.Score)
	}

	if _, err := att.Tick(); !errors.Is(err, common.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted after expiry, got %v", err)
	}
}

func TestAbandon(t *testing.T) {
	quiz := buildQuiz([]int{0}, 10)
	att := mustStart(t, quiz)

	att.Abandon()
	if att.Result() != nil {
		t.Error("abandoned attempt must not carry a result")
	}
	if _, err := att.Submit(); !errors.Is(err, common.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted submitting an abandoned attempt, got %v", err)
	}
	if att.Snapshot().State != StateAbandoned {
		t.Errorf("expected abandoned state, got %s", att.Snapshot().State)
	}
}

func TestReviewFor(t *testing.T) {
	quiz := buildQuiz([]int{1, 2}, 10)
	quiz.Questions[0].Explanation = "because"
	att := mustStart(t, quiz)

	qid := questionID(quiz, 0)
	if _, err := att.ReviewFor(qid); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("review before completion should be ErrNotFound, got %v", err)
	}

	if err := att.SelectAnswer(qid, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := att.Submit(); err != nil {
		t.Fatal(err)
	}

	review, err := att.ReviewFor(qid)
	if err != nil {
		t.Fatalf("ReviewFor: %v", err)
	}
	if !review.Correct || !review.Answered || review.SelectedOption != 1 || review.Explanation != "because" {
		t.Errorf("unexpected review: %+v", review)
	}

	unanswered, err := att.ReviewFor(questionID(quiz, 1))
	if err != nil {
		t.Fatalf("ReviewFor unanswered: %v", err)
	}
	if unanswered.Answered || unanswered.SelectedOption != -1 || unanswered.Correct {
		t.Errorf("unexpected unanswered review: %+v", unanswered)
	}
}
