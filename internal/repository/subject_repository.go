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

type SubjectRepository struct {
	Col *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) *SubjectRepository {
	return &SubjectRepository{Col: db.Collection("subjects")}
}

// FindAll lists subjects, optionally filtered by category and a
// case-insensitive title/description search.
func (r *SubjectRepository) FindAll(ctx context.Context, category, search string) ([]models.Subject, error) {
	filter := bson.M{}
	if category != "" && category != "all" {
		filter["category"] = category
	}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	cur, err := r.Col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subjects []models.Subject
	for cur.Next(ctx) {
		var s models.Subject
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, cur.Err()
}

func (r *SubjectRepository) FindByID(ctx context.Context, id string) (*models.Subject, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("subject id %q: %w", id, common.ErrInvalidIdentifier)
	}
	var subject models.Subject
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&subject); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	res, err := r.Col.InsertOne(ctx, subject)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		subject.ID = oid
	}
	return nil
}

func (r *SubjectRepository) AddUnit(ctx context.Context, subjectID, unitID primitive.ObjectID) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": subjectID}, bson.M{"$addToSet": bson.M{"units": unitID}})
	return err
}

func (r *SubjectRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{})
	return err
}
