// Package progress maintains per-user, per-subject completion state.
// Unit completion is derived from topic completion, and the percentage is
// recomputed from the live catalog on every change.
package progress

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

// ContentSource is the slice of the catalog the tracker validates
// references against.
type ContentSource interface {
	SubjectExists(ctx context.Context, id string) (bool, error)
	UnitByID(ctx context.Context, id string) (*models.Unit, error)
	TopicByID(ctx context.Context, id string) (*models.Topic, error)
	TopicsForUnit(ctx context.Context, unitID string) ([]models.Topic, error)
	TopicCountForSubject(ctx context.Context, subjectID string) (int, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ReplaceProgress(ctx context.Context, userID string, progress []models.ProgressEntry) error
}

type Tracker struct {
	content ContentSource
	users   UserStore
}

func NewTracker(content ContentSource, users UserStore) *Tracker {
	return &Tracker{content: content, users: users}
}

// MarkTopicComplete adds the topic to the user's completed set for the
// subject, creating the progress entry lazily. Marking an already-complete
// topic is a no-op. When every topic of the unit is complete the unit is
// added to completedUnits.
func (t *Tracker) MarkTopicComplete(ctx context.Context, userID, subjectID, unitID, topicID string) error {
	topic, err := t.resolveTopic(ctx, subjectID, unitID, topicID)
	if err != nil {
		return err
	}
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	entry := user.ProgressFor(topic.SubjectID)
	if entry == nil {
		user.Progress = append(user.Progress, models.ProgressEntry{SubjectID: topic.SubjectID})
		entry = &user.Progress[len(user.Progress)-1]
	}

	if !containsID(entry.CompletedTopics, topic.ID) {
		entry.CompletedTopics = append(entry.CompletedTopics, topic.ID)
	}

	unitTopics, err := t.content.TopicsForUnit(ctx, unitID)
	if err != nil {
		return err
	}
	if allComplete(unitTopics, entry.CompletedTopics) && !containsID(entry.CompletedUnits, topic.UnitID) {
		entry.CompletedUnits = append(entry.CompletedUnits, topic.UnitID)
	}

	if err := t.refreshPercentage(ctx, entry); err != nil {
		return err
	}
	return t.users.ReplaceProgress(ctx, userID, user.Progress)
}

// UnmarkTopicComplete removes the topic from the completed set. Unit
// completion is derived, so removing any topic of a completed unit also
// removes the unit. Unmarking an absent topic is a no-op.
func (t *Tracker) UnmarkTopicComplete(ctx context.Context, userID, subjectID, unitID, topicID string) error {
	topic, err := t.resolveTopic(ctx, subjectID, unitID, topicID)
	if err != nil {
		return err
	}
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	entry := user.ProgressFor(topic.SubjectID)
	if entry == nil {
		return nil
	}

	entry.CompletedTopics = removeID(entry.CompletedTopics, topic.ID)
	entry.CompletedUnits = removeID(entry.CompletedUnits, topic.UnitID)

	if err := t.refreshPercentage(ctx, entry); err != nil {
		return err
	}
	return t.users.ReplaceProgress(ctx, userID, user.Progress)
}

// RecomputePercentage re-derives the subject percentage from the catalog's
// current topic count. The total is read at call time, so catalog growth
// moves previously computed percentages.
func (t *Tracker) RecomputePercentage(ctx context.Context, userID, subjectID string) (int, error) {
	exists, err := t.content.SubjectExists(ctx, subjectID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("subject %q: %w", subjectID, common.ErrUnknownReference)
	}
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	oid, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return 0, fmt.Errorf("subject id %q: %w", subjectID, common.ErrInvalidIdentifier)
	}
	entry := user.ProgressFor(oid)
	if entry == nil {
		return 0, nil
	}
	if err := t.refreshPercentage(ctx, entry); err != nil {
		return 0, err
	}
	if err := t.users.ReplaceProgress(ctx, userID, user.Progress); err != nil {
		return 0, err
	}
	return entry.ProgressPercentage, nil
}

// SubjectProgress returns the user's progress entry for a subject, or a
// zero-valued entry when the user has not interacted with it yet.
func (t *Tracker) SubjectProgress(ctx context.Context, userID, subjectID string) (*models.ProgressEntry, error) {
	oid, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, fmt.Errorf("subject id %q: %w", subjectID, common.ErrInvalidIdentifier)
	}
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entry := user.ProgressFor(oid); entry != nil {
		return entry, nil
	}
	return &models.ProgressEntry{
		SubjectID:       oid,
		CompletedTopics: []primitive.ObjectID{},
		CompletedUnits:  []primitive.ObjectID{},
	}, nil
}

// UnitProgress reports completed/total topic counts and the percentage for
// a single unit.
func (t *Tracker) UnitProgress(ctx context.Context, userID, unitID string) (completed, total, percentage int, err error) {
	unit, err := t.content.UnitByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			err = fmt.Errorf("unit %q: %w", unitID, common.ErrUnknownReference)
		}
		return 0, 0, 0, err
	}
	topics, err := t.content.TopicsForUnit(ctx, unitID)
	if err != nil {
		return 0, 0, 0, err
	}
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return 0, 0, 0, err
	}

	total = len(topics)
	entry := user.ProgressFor(unit.SubjectID)
	if entry != nil {
		for _, topic := range topics {
			if containsID(entry.CompletedTopics, topic.ID) {
				completed++
			}
		}
	}
	return completed, total, percent(completed, total), nil
}

func (t *Tracker) resolveTopic(ctx context.Context, subjectID, unitID, topicID string) (*models.Topic, error) {
	topic, err := t.content.TopicByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("topic %q: %w", topicID, common.ErrUnknownReference)
		}
		return nil, err
	}
	// The dual reference is denormalized; both halves must agree.
	if topic.UnitID.Hex() != unitID || topic.SubjectID.Hex() != subjectID {
		return nil, fmt.Errorf("topic %q does not belong to unit %q in subject %q: %w",
			topicID, unitID, subjectID, common.ErrUnknownReference)
	}
	return topic, nil
}

func (t *Tracker) refreshPercentage(ctx context.Context, entry *models.ProgressEntry) error {
	total, err := t.content.TopicCountForSubject(ctx, entry.SubjectID.Hex())
	if err != nil {
		return err
	}
	entry.ProgressPercentage = percent(len(entry.CompletedTopics), total)
	return nil
}

func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func allComplete(topics []models.Topic, completed []primitive.ObjectID) bool {
	if len(topics) == 0 {
		return false
	}
	for _, topic := range topics {
		if !containsID(completed, topic.ID) {
			return false
		}
	}
	return true
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
