package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

type TopicRepository struct {
	Col *mongo.Collection
}

func NewTopicRepository(db *mongo.Database) *TopicRepository {
	return &TopicRepository{Col: db.Collection("topics")}
}

func (r *TopicRepository) FindByID(ctx context.Context, id string) (*models.Topic, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("topic id %q: %w", id, common.ErrInvalidIdentifier)
	}
	var topic models.Topic
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&topic); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// FindByUnit lists a unit's topics ascending by order.
func (r *TopicRepository) FindByUnit(ctx context.Context, unitID string) ([]models.Topic, error) {
	objID, err := primitive.ObjectIDFromHex(unitID)
	if err != nil {
		return nil, fmt.Errorf("unit id %q: %w", unitID, common.ErrInvalidIdentifier)
	}
	cur, err := r.Col.Find(ctx, bson.M{"unitId": objID}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var topics []models.Topic
	for cur.Next(ctx) {
		var t models.Topic
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, cur.Err()
}

// CountBySubject returns the total number of topics across a subject.
func (r *TopicRepository) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return 0, fmt.Errorf("subject id %q: %w", subjectID, common.ErrInvalidIdentifier)
	}
	return r.Col.CountDocuments(ctx, bson.M{"subjectId": objID})
}

func (r *TopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	res, err := r.Col.InsertOne(ctx, topic)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		topic.ID = oid
	}
	return nil
}

func (r *TopicRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{})
	return err
}
