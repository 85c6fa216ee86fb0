package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("quiz id %q: %w", id, common.ErrInvalidIdentifier)
	}
	var quiz models.Quiz
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&quiz); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// FindByUnit returns the unit's quiz. The data carries at most one quiz
// per unit, so the first match wins.
func (r *QuizRepository) FindByUnit(ctx context.Context, unitID string) (*models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(unitID)
	if err != nil {
		return nil, fmt.Errorf("unit id %q: %w", unitID, common.ErrInvalidIdentifier)
	}
	var quiz models.Quiz
	if err := r.Col.FindOne(ctx, bson.M{"unitId": objID}).Decode(&quiz); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	res, err := r.Col.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quiz.ID = oid
	}
	return nil
}

func (r *QuizRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{})
	return err
}
