package catalog

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

type fakeSubjects struct {
	subjects []models.Subject
}

func (f *fakeSubjects) FindAll(_ context.Context, category, search string) ([]models.Subject, error) {
	var out []models.Subject
	for _, s := range f.subjects {
		if category != "" && s.Category != category {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSubjects) FindByID(_ context.Context, id string) (*models.Subject, error) {
	for i := range f.subjects {
		if f.subjects[i].ID.Hex() == id {
			return &f.subjects[i], nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeUnits struct {
	units []models.Unit
}

func (f *fakeUnits) FindByID(_ context.Context, id string) (*models.Unit, error) {
	for i := range f.units {
		if f.units[i].ID.Hex() == id {
			return &f.units[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUnits) FindBySubject(_ context.Context, subjectID string) ([]models.Unit, error) {
	var out []models.Unit
	for _, u := range f.units {
		if u.SubjectID.Hex() == subjectID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeTopics struct {
	topics []models.Topic
}

func (f *fakeTopics) FindByID(_ context.Context, id string) (*models.Topic, error) {
	for i := range f.topics {
		if f.topics[i].ID.Hex() == id {
			return &f.topics[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeTopics) FindByUnit(_ context.Context, unitID string) ([]models.Topic, error) {
	var out []models.Topic
	for _, topic := range f.topics {
		if topic.UnitID.Hex() == unitID {
			out = append(out, topic)
		}
	}
	return out, nil
}

func (f *fakeTopics) CountBySubject(_ context.Context, subjectID string) (int64, error) {
	var n int64
	for _, topic := range f.topics {
		if topic.SubjectID.Hex() == subjectID {
			n++
		}
	}
	return n, nil
}

type fakeQuizzes struct {
	quizzes []models.Quiz
}

func (f *fakeQuizzes) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	for i := range f.quizzes {
		if f.quizzes[i].ID.Hex() == id {
			return &f.quizzes[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeQuizzes) FindByUnit(_ context.Context, unitID string) (*models.Quiz, error) {
	for i := range f.quizzes {
		if f.quizzes[i].UnitID.Hex() == unitID {
			return &f.quizzes[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func buildCatalog() (*Catalog, models.Subject, models.Unit, models.Topic, models.Quiz) {
	subject := models.Subject{ID: primitive.NewObjectID(), Title: "Algorithms", Category: models.CategoryCore}
	unit := models.Unit{ID: primitive.NewObjectID(), Title: "Sorting", SubjectID: subject.ID, Order: 1}
	topic := models.Topic{ID: primitive.NewObjectID(), Title: "Quicksort", UnitID: unit.ID, SubjectID: subject.ID, Order: 1}
	quiz := models.Quiz{ID: primitive.NewObjectID(), Title: "Sorting Quiz", UnitID: unit.ID, SubjectID: subject.ID, TimeLimit: 10}

	cat := New(
		&fakeSubjects{subjects: []models.Subject{subject}},
		&fakeUnits{units: []models.Unit{unit}},
		&fakeTopics{topics: []models.Topic{topic}},
		&fakeQuizzes{quizzes: []models.Quiz{quiz}},
	)
	return cat, subject, unit, topic, quiz
}

func TestGetSubjectWithUnits(t *testing.T) {
	cat, subject, unit, topic, _ := buildCatalog()

	view, err := cat.GetSubjectWithUnits(context.Background(), subject.ID.Hex())
	if err != nil {
		t.Fatalf("GetSubjectWithUnits: %v", err)
	}
	if view.Subject.Title != subject.Title {
		t.Errorf("expected subject %q, got %q", subject.Title, view.Subject.Title)
	}
	if len(view.Units) != 1 || view.Units[0].Unit.ID != unit.ID {
		t.Fatalf("expected one unit, got %+v", view.Units)
	}
	if len(view.Units[0].Topics) != 1 || view.Units[0].Topics[0].ID != topic.ID {
		t.Errorf("expected the unit's topic attached, got %+v", view.Units[0].Topics)
	}
}

func TestGetUnitAttachesSubjectTitle(t *testing.T) {
	cat, subject, unit, _, _ := buildCatalog()

	detail, err := cat.GetUnit(context.Background(), unit.ID.Hex())
	if err != nil {
		t.Fatalf("GetUnit: %v", err)
	}
	if detail.SubjectTitle != subject.Title {
		t.Errorf("expected subject title %q, got %q", subject.Title, detail.SubjectTitle)
	}
	if len(detail.Topics) != 1 {
		t.Errorf("expected the unit's topics attached, got %d", len(detail.Topics))
	}
}

func TestGetTopicAttachesTitles(t *testing.T) {
	cat, subject, unit, topic, _ := buildCatalog()

	detail, err := cat.GetTopic(context.Background(), topic.ID.Hex())
	if err != nil {
		t.Fatalf("GetTopic: %v", err)
	}
	if detail.UnitTitle != unit.Title {
		t.Errorf("expected unit title %q, got %q", unit.Title, detail.UnitTitle)
	}
	if detail.SubjectTitle != subject.Title {
		t.Errorf("expected subject title %q, got %q", subject.Title, detail.SubjectTitle)
	}
}

func TestNotFoundPropagates(t *testing.T) {
	cat, _, _, _, _ := buildCatalog()
	missing := primitive.NewObjectID().Hex()

	if _, err := cat.GetSubjectWithUnits(context.Background(), missing); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("subject: expected ErrNotFound, got %v", err)
	}
	if _, err := cat.GetUnit(context.Background(), missing); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unit: expected ErrNotFound, got %v", err)
	}
	if _, err := cat.GetTopic(context.Background(), missing); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("topic: expected ErrNotFound, got %v", err)
	}
	if _, err := cat.QuizForUnit(context.Background(), missing); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("quiz: expected ErrNotFound, got %v", err)
	}
}

func TestExistenceChecks(t *testing.T) {
	cat, subject, _, topic, _ := buildCatalog()

	ok, err := cat.SubjectExists(context.Background(), subject.ID.Hex())
	if err != nil || !ok {
		t.Errorf("expected subject to exist, got ok=%v err=%v", ok, err)
	}
	ok, err = cat.SubjectExists(context.Background(), primitive.NewObjectID().Hex())
	if err != nil || ok {
		t.Errorf("expected subject to be absent, got ok=%v err=%v", ok, err)
	}

	ok, err = cat.TopicExists(context.Background(), topic.ID.Hex())
	if err != nil || !ok {
		t.Errorf("expected topic to exist, got ok=%v err=%v", ok, err)
	}

	n, err := cat.TopicCountForSubject(context.Background(), subject.ID.Hex())
	if err != nil || n != 1 {
		t.Errorf("expected 1 topic for subject, got %d err=%v", n, err)
	}
}
