// Package bookmark keeps the set of topics a user has saved. Pure set
// semantics: duplicate adds and absent removes are no-ops.
package bookmark

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

// ContentSource validates topic ids against the catalog.
type ContentSource interface {
	TopicExists(ctx context.Context, id string) (bool, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ReplaceBookmarks(ctx context.Context, userID string, bookmarks []primitive.ObjectID) error
}

type Store struct {
	content ContentSource
	users   UserStore
}

func NewStore(content ContentSource, users UserStore) *Store {
	return &Store{content: content, users: users}
}

func (s *Store) Add(ctx context.Context, userID, topicID string) error {
	topicOID, user, err := s.resolve(ctx, userID, topicID)
	if err != nil {
		return err
	}
	if contains(user.Bookmarks, topicOID) {
		return nil
	}
	return s.users.ReplaceBookmarks(ctx, userID, append(user.Bookmarks, topicOID))
}

func (s *Store) Remove(ctx context.Context, userID, topicID string) error {
	topicOID, user, err := s.resolve(ctx, userID, topicID)
	if err != nil {
		return err
	}
	if !contains(user.Bookmarks, topicOID) {
		return nil
	}
	return s.users.ReplaceBookmarks(ctx, userID, remove(user.Bookmarks, topicOID))
}

// Toggle flips the bookmark and reports the new state.
func (s *Store) Toggle(ctx context.Context, userID, topicID string) (bookmarked bool, err error) {
	topicOID, user, err := s.resolve(ctx, userID, topicID)
	if err != nil {
		return false, err
	}
	if contains(user.Bookmarks, topicOID) {
		return false, s.users.ReplaceBookmarks(ctx, userID, remove(user.Bookmarks, topicOID))
	}
	return true, s.users.ReplaceBookmarks(ctx, userID, append(user.Bookmarks, topicOID))
}

func (s *Store) IsBookmarked(ctx context.Context, userID, topicID string) (bool, error) {
	topicOID, err := primitive.ObjectIDFromHex(topicID)
	if err != nil {
		return false, fmt.Errorf("topic id %q: %w", topicID, common.ErrInvalidIdentifier)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return contains(user.Bookmarks, topicOID), nil
}

// List returns the user's bookmarked topic ids. No ordering guarantee.
func (s *Store) List(ctx context.Context, userID string) ([]primitive.ObjectID, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Bookmarks, nil
}

func (s *Store) resolve(ctx context.Context, userID, topicID string) (primitive.ObjectID, *models.User, error) {
	topicOID, err := primitive.ObjectIDFromHex(topicID)
	if err != nil {
		return primitive.NilObjectID, nil, fmt.Errorf("topic id %q: %w", topicID, common.ErrInvalidIdentifier)
	}
	exists, err := s.content.TopicExists(ctx, topicID)
	if err != nil {
		return primitive.NilObjectID, nil, err
	}
	if !exists {
		return primitive.NilObjectID, nil, fmt.Errorf("topic %q: %w", topicID, common.ErrUnknownReference)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return primitive.NilObjectID, nil, err
	}
	return topicOID, user, nil
}

func contains(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func remove(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
