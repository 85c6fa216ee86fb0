// Package seed loads the starter curriculum. Seeding is a bulk reseed:
// existing catalog content is dropped and rebuilt, which is the only path
// that ever deletes subjects.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learning-service/internal/common"
	"learning-service/internal/common/security"
	"learning-service/internal/models"
	"learning-service/internal/repository"
)

type Seeder struct {
	Subjects *repository.SubjectRepository
	Units    *repository.UnitRepository
	Topics   *repository.TopicRepository
	Quizzes  *repository.QuizRepository
	Users    *repository.UserRepository
}

func NewSeeder(subjects *repository.SubjectRepository, units *repository.UnitRepository, topics *repository.TopicRepository, quizzes *repository.QuizRepository, users *repository.UserRepository) *Seeder {
	return &Seeder{Subjects: subjects, Units: units, Topics: topics, Quizzes: quizzes, Users: users}
}

type Summary struct {
	Subjects int `json:"subjects"`
	Units    int `json:"units"`
	Topics   int `json:"topics"`
	Quizzes  int `json:"quizzes"`
}

// Run clears the catalog collections and loads the starter dataset.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	for name, clear := range map[string]func(context.Context) error{
		"subjects": s.Subjects.DeleteAll,
		"units":    s.Units.DeleteAll,
		"topics":   s.Topics.DeleteAll,
		"quizzes":  s.Quizzes.DeleteAll,
	} {
		if err := clear(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}

	summary := &Summary{}
	now := time.Now()

	for _, sd := range starterSubjects() {
		subject := &models.Subject{
			Title:       sd.title,
			Description: sd.description,
			Image:       sd.image,
			Category:    sd.category,
			Units:       []primitive.ObjectID{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Subjects.Create(ctx, subject); err != nil {
			return nil, err
		}
		summary.Subjects++

		for unitOrder, ud := range sd.units {
			unit := &models.Unit{
				Title:       ud.title,
				Description: ud.description,
				SubjectID:   subject.ID,
				Topics:      []primitive.ObjectID{},
				Order:       unitOrder + 1,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := s.Units.Create(ctx, unit); err != nil {
				return nil, err
			}
			if err := s.Subjects.AddUnit(ctx, subject.ID, unit.ID); err != nil {
				return nil, err
			}
			summary.Units++

			for topicOrder, td := range ud.topics {
				topic := &models.Topic{
					Title:     td.title,
					Content:   td.content,
					Examples:  td.examples,
					UnitID:    unit.ID,
					SubjectID: subject.ID,
					Order:     topicOrder + 1,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := s.Topics.Create(ctx, topic); err != nil {
					return nil, err
				}
				if err := s.Units.AddTopic(ctx, unit.ID, topic.ID); err != nil {
					return nil, err
				}
				summary.Topics++
			}

			if ud.quiz != nil {
				quiz := &models.Quiz{
					Title:     ud.quiz.title,
					UnitID:    unit.ID,
					SubjectID: subject.ID,
					Questions: buildQuestions(ud.quiz.questions),
					TimeLimit: ud.quiz.timeLimit,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if !quiz.Validate() {
					return nil, fmt.Errorf("seed quiz %q has an out-of-range answer", quiz.Title)
				}
				if err := s.Quizzes.Create(ctx, quiz); err != nil {
					return nil, err
				}
				summary.Quizzes++
			}
		}
		log.Printf("seeded subject %q", subject.Title)
	}
	return summary, nil
}

// EnsureAdmin creates an admin account when no user holds the email yet.
func (s *Seeder) EnsureAdmin(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, common.ErrConflict
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      models.RoleAdmin,
		Bookmarks: []primitive.ObjectID{},
		Progress:  []models.ProgressEntry{},
		Theme:     "system",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, admin); err != nil {
		return nil, err
	}
	admin.Password = ""
	return admin, nil
}

// Embedded questions get their own ids so attempts can address them.
func buildQuestions(qs []questionData) []models.Question {
	questions := make([]models.Question, 0, len(qs))
	for _, q := range qs {
		questions = append(questions, models.Question{
			ID:            primitive.NewObjectID(),
			Question:      q.question,
			Options:       q.options,
			CorrectAnswer: q.correctAnswer,
			Explanation:   q.explanation,
		})
	}
	return questions
}
