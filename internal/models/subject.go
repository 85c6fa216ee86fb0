package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryCore     = "core"
	CategoryAIML     = "ai-ml"
)

type Subject struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Image       string               `bson:"image" json:"image"`
	Category    string               `bson:"category" json:"category"`
	Units       []primitive.ObjectID `bson:"units" json:"units"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ValidCategory reports whether c is one of the known subject categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryCore, CategoryAIML:
		return true
	}
	return false
}
