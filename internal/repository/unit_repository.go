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

type UnitRepository struct {
	Col *mongo.Collection
}

func NewUnitRepository(db *mongo.Database) *UnitRepository {
	return &UnitRepository{Col: db.Collection("units")}
}

func (r *UnitRepository) FindByID(ctx context.Context, id string) (*models.Unit, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("unit id %q: %w", id, common.ErrInvalidIdentifier)
	}
	var unit models.Unit
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&unit); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// FindBySubject lists a subject's units ascending by order.
func (r *UnitRepository) FindBySubject(ctx context.Context, subjectID string) ([]models.Unit, error) {
	objID, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, fmt.Errorf("subject id %q: %w", subjectID, common.ErrInvalidIdentifier)
	}
	cur, err := r.Col.Find(ctx, bson.M{"subjectId": objID}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var units []models.Unit
	for cur.Next(ctx) {
		var u models.Unit
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, cur.Err()
}

func (r *UnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	res, err := r.Col.InsertOne(ctx, unit)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		unit.ID = oid
	}
	return nil
}

func (r *UnitRepository) AddTopic(ctx context.Context, unitID, topicID primitive.ObjectID) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": unitID}, bson.M{"$addToSet": bson.M{"topics": topicID}})
	return err
}

func (r *UnitRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{})
	return err
}
