package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"learning-service/internal/attempt"
	"learning-service/internal/catalog"
	"learning-service/internal/common"
	"learning-service/internal/event"
	"learning-service/internal/models"
	"learning-service/internal/progress"
	"learning-service/internal/repository"
)

// AttemptService owns the in-memory table of live quiz attempts. Attempts
// are transient: only the final score and answers of a completed attempt
// reach storage, and abandoned attempts leave no trace.
type AttemptService struct {
	mu       sync.RWMutex
	attempts map[string]*liveAttempt

	Catalog   *catalog.Catalog
	Results   *repository.ResultRepository
	Tracker   *progress.Tracker
	Publisher *event.Publisher
}

type liveAttempt struct {
	att       *attempt.Attempt
	quizID    primitive.ObjectID
	subjectID primitive.ObjectID
	userID    primitive.ObjectID
}

func NewAttemptService(cat *catalog.Catalog, results *repository.ResultRepository, tracker *progress.Tracker, publisher *event.Publisher) *AttemptService {
	return &AttemptService{
		attempts:  make(map[string]*liveAttempt),
		Catalog:   cat,
		Results:   results,
		Tracker:   tracker,
		Publisher: publisher,
	}
}

// Start begins an attempt on a quiz and launches its one-second ticker.
func (s *AttemptService) Start(ctx context.Context, quizID, userID string) (attempt.Snapshot, error) {
	quiz, err := s.Catalog.QuizByID(ctx, quizID)
	if err != nil {
		return attempt.Snapshot{}, err
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return attempt.Snapshot{}, fmt.Errorf("user id %q: %w", userID, common.ErrInvalidIdentifier)
	}

	att, err := attempt.Start(uuid.NewString(), quiz, userID)
	if err != nil {
		return attempt.Snapshot{}, err
	}

	live := &liveAttempt{att: att, quizID: quiz.ID, subjectID: quiz.SubjectID, userID: userOID}
	s.mu.Lock()
	s.attempts[att.ID] = live
	s.mu.Unlock()

	go s.runTimer(live)

	s.Publisher.Publish("learning.attempt.started", map[string]string{
		"attempt_id": att.ID,
		"quiz_id":    quizID,
		"user_id":    userID,
	})
	return att.Snapshot(), nil
}

func (s *AttemptService) SelectAnswer(ctx context.Context, attemptID, userID, questionID string, optionIndex int) error {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return err
	}
	return live.att.SelectAnswer(questionID, optionIndex)
}

// Advance moves forward; on the last question it completes the attempt.
func (s *AttemptService) Advance(ctx context.Context, attemptID, userID string) (*attempt.Result, attempt.Snapshot, error) {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return nil, attempt.Snapshot{}, err
	}
	res, _, err := live.att.Advance()
	if err != nil {
		return nil, attempt.Snapshot{}, err
	}
	if res != nil {
		s.finalize(ctx, live, res)
	}
	return res, live.att.Snapshot(), nil
}

func (s *AttemptService) Retreat(ctx context.Context, attemptID, userID string) (attempt.Snapshot, error) {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return attempt.Snapshot{}, err
	}
	if err := live.att.Retreat(); err != nil {
		return attempt.Snapshot{}, err
	}
	return live.att.Snapshot(), nil
}

func (s *AttemptService) Submit(ctx context.Context, attemptID, userID string) (*attempt.Result, error) {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return nil, err
	}
	res, err := live.att.Submit()
	if err != nil {
		return nil, err
	}
	s.finalize(ctx, live, res)
	return res, nil
}

// Abandon drops the attempt without scoring or persisting anything.
func (s *AttemptService) Abandon(ctx context.Context, attemptID, userID string) error {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return err
	}
	live.att.Abandon()
	s.mu.Lock()
	delete(s.attempts, attemptID)
	s.mu.Unlock()
	return nil
}

func (s *AttemptService) Snapshot(attemptID, userID string) (attempt.Snapshot, error) {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return attempt.Snapshot{}, err
	}
	return live.att.Snapshot(), nil
}

func (s *AttemptService) Review(attemptID, userID string) (*attempt.Result, error) {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return nil, err
	}
	res := live.att.Result()
	if res == nil {
		return nil, common.ErrNotFound
	}
	return res, nil
}

func (s *AttemptService) ReviewQuestion(attemptID, userID, questionID string) (*attempt.QuestionReview, error) {
	live, err := s.owned(attemptID, userID)
	if err != nil {
		return nil, err
	}
	return live.att.ReviewFor(questionID)
}

func (s *AttemptService) owned(attemptID, userID string) (*liveAttempt, error) {
	s.mu.RLock()
	live, ok := s.attempts[attemptID]
	s.mu.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	if live.att.UserID != userID {
		return nil, common.ErrForbidden
	}
	return live, nil
}

// runTimer drives the attempt clock at a one-second cadence. The tick that
// exhausts the budget force-submits; a manual submit ends the loop via the
// completed-state error.
func (s *AttemptService) runTimer(live *liveAttempt) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		res, err := live.att.Tick()
		if err != nil {
			return
		}
		if res != nil {
			s.finalize(context.Background(), live, res)
			return
		}
	}
}

// finalize persists the result and reports the score to the progress
// tracker. The attempt stays in the table so review endpoints keep working.
func (s *AttemptService) finalize(ctx context.Context, live *liveAttempt, res *attempt.Result) {
	record := &models.QuizResult{
		AttemptID:      live.att.ID,
		UserID:         live.userID,
		QuizID:         live.quizID,
		SubjectID:      live.subjectID,
		Score:          res.Score,
		CorrectCount:   res.CorrectCount,
		TotalQuestions: res.TotalQuestions,
		CompletionType: res.CompletionType,
		Answers:        res.Answers,
		CreatedAt:      time.Now(),
	}
	if err := s.Results.Create(ctx, record); err != nil {
		log.Printf("failed to persist result for attempt %s: %v", live.att.ID, err)
	}
	if _, err := s.Tracker.RecomputePercentage(ctx, live.userID.Hex(), live.subjectID.Hex()); err != nil {
		log.Printf("failed to recompute progress for attempt %s: %v", live.att.ID, err)
	}
	s.Publisher.Publish("learning.attempt.completed", map[string]interface{}{
		"attempt_id":      live.att.ID,
		"quiz_id":         live.quizID.Hex(),
		"user_id":         live.att.UserID,
		"score":           res.Score,
		"completion_type": res.CompletionType,
	})
}
