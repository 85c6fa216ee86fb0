// Package catalog exposes ordered, read-only access to the subject →
// unit → topic hierarchy and the quizzes attached to units.
package catalog

import (
	"context"
	"errors"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

type SubjectStore interface {
	FindAll(ctx context.Context, category, search string) ([]models.Subject, error)
	FindByID(ctx context.Context, id string) (*models.Subject, error)
}

type UnitStore interface {
	FindByID(ctx context.Context, id string) (*models.Unit, error)
	FindBySubject(ctx context.Context, subjectID string) ([]models.Unit, error)
}

type TopicStore interface {
	FindByID(ctx context.Context, id string) (*models.Topic, error)
	FindByUnit(ctx context.Context, unitID string) ([]models.Topic, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
}

type QuizStore interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	FindByUnit(ctx context.Context, unitID string) (*models.Quiz, error)
}

type Catalog struct {
	subjects SubjectStore
	units    UnitStore
	topics   TopicStore
	quizzes  QuizStore
}

func New(subjects SubjectStore, units UnitStore, topics TopicStore, quizzes QuizStore) *Catalog {
	return &Catalog{subjects: subjects, units: units, topics: topics, quizzes: quizzes}
}

// UnitView is a unit with its ordered topics attached.
type UnitView struct {
	Unit   models.Unit    `json:"unit"`
	Topics []models.Topic `json:"topics"`
}

// SubjectView is a subject with its ordered units and their topics.
type SubjectView struct {
	Subject models.Subject `json:"subject"`
	Units   []UnitView     `json:"units"`
}

// UnitDetail carries the owning subject's title alongside the unit.
type UnitDetail struct {
	Unit         models.Unit    `json:"unit"`
	Topics       []models.Topic `json:"topics"`
	SubjectTitle string         `json:"subjectTitle"`
}

// TopicDetail carries the owning unit and subject titles alongside the
// topic. The titles are a read-only join, never stored.
type TopicDetail struct {
	Topic        models.Topic `json:"topic"`
	UnitTitle    string       `json:"unitTitle"`
	SubjectTitle string       `json:"subjectTitle"`
}

func (c *Catalog) ListSubjects(ctx context.Context, category, search string) ([]models.Subject, error) {
	return c.subjects.FindAll(ctx, category, search)
}

func (c *Catalog) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	return c.subjects.FindByID(ctx, id)
}

// GetSubjectWithUnits resolves a subject together with its units in
// presentation order, each unit carrying its ordered topics.
func (c *Catalog) GetSubjectWithUnits(ctx context.Context, id string) (*SubjectView, error) {
	subject, err := c.subjects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	units, err := c.units.FindBySubject(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &SubjectView{Subject: *subject}
	for _, u := range units {
		topics, err := c.topics.FindByUnit(ctx, u.ID.Hex())
		if err != nil {
			return nil, err
		}
		view.Units = append(view.Units, UnitView{Unit: u, Topics: topics})
	}
	return view, nil
}

func (c *Catalog) ListUnits(ctx context.Context, subjectID string) ([]models.Unit, error) {
	return c.units.FindBySubject(ctx, subjectID)
}

func (c *Catalog) GetUnit(ctx context.Context, id string) (*UnitDetail, error) {
	unit, err := c.units.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	topics, err := c.topics.FindByUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &UnitDetail{Unit: *unit, Topics: topics}
	if subject, err := c.subjects.FindByID(ctx, unit.SubjectID.Hex()); err == nil {
		detail.SubjectTitle = subject.Title
	}
	return detail, nil
}

func (c *Catalog) ListTopics(ctx context.Context, unitID string) ([]models.Topic, error) {
	return c.topics.FindByUnit(ctx, unitID)
}

func (c *Catalog) GetTopic(ctx context.Context, id string) (*TopicDetail, error) {
	topic, err := c.topics.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &TopicDetail{Topic: *topic}
	if unit, err := c.units.FindByID(ctx, topic.UnitID.Hex()); err == nil {
		detail.UnitTitle = unit.Title
	}
	if subject, err := c.subjects.FindByID(ctx, topic.SubjectID.Hex()); err == nil {
		detail.SubjectTitle = subject.Title
	}
	return detail, nil
}

func (c *Catalog) QuizForUnit(ctx context.Context, unitID string) (*models.Quiz, error) {
	return c.quizzes.FindByUnit(ctx, unitID)
}

func (c *Catalog) QuizByID(ctx context.Context, id string) (*models.Quiz, error) {
	return c.quizzes.FindByID(ctx, id)
}

// SubjectExists reports whether the subject is present; a malformed id
// is an error, a missing record is not.
func (c *Catalog) SubjectExists(ctx context.Context, id string) (bool, error) {
	_, err := c.subjects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Catalog) TopicExists(ctx context.Context, id string) (bool, error) {
	_, err := c.topics.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Catalog) UnitByID(ctx context.Context, id string) (*models.Unit, error) {
	return c.units.FindByID(ctx, id)
}

func (c *Catalog) TopicByID(ctx context.Context, id string) (*models.Topic, error) {
	return c.topics.FindByID(ctx, id)
}

func (c *Catalog) TopicsForUnit(ctx context.Context, unitID string) ([]models.Topic, error) {
	return c.topics.FindByUnit(ctx, unitID)
}

func (c *Catalog) TopicCountForSubject(ctx context.Context, subjectID string) (int, error) {
	n, err := c.topics.CountBySubject(ctx, subjectID)
	return int(n), err
}
