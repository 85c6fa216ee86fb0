package bookmark

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learning-service/internal/common"
	"learning-service/internal/models"
)

type fakeContent struct {
	topics map[string]bool
}

func (f *fakeContent) TopicExists(_ context.Context, id string) (bool, error) {
	return f.topics[id], nil
}

type fakeUsers struct {
	user     *models.User
	replaced int
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.user == nil || f.user.ID.Hex() != id {
		return nil, common.ErrNotFound
	}
	copied := *f.user
	copied.Bookmarks = append([]primitive.ObjectID(nil), f.user.Bookmarks...)
	return &copied, nil
}

func (f *fakeUsers) ReplaceBookmarks(_ context.Context, userID string, bookmarks []primitive.ObjectID) error {
	if f.user == nil || f.user.ID.Hex() != userID {
		return common.ErrNotFound
	}
	f.user.Bookmarks = bookmarks
	f.replaced++
	return nil
}

func newStore(topicIDs ...primitive.ObjectID) (*Store, *fakeUsers, *models.User) {
	content := &fakeContent{topics: make(map[string]bool)}
	for _, id := range topicIDs {
		content.topics[id.Hex()] = true
	}
	user := &models.User{ID: primitive.NewObjectID()}
	users := &fakeUsers{user: user}
	return NewStore(content, users), users, user
}

func TestAddAndRemove(t *testing.T) {
	topicID := primitive.NewObjectID()
	store, users, user := newStore(topicID)
	ctx := context.Background()
	userID := user.ID.Hex()

	if err := store.Add(ctx, userID, topicID.Hex()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(users.user.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(users.user.Bookmarks))
	}

	// duplicate add is a silent no-op
	if err := store.Add(ctx, userID, topicID.Hex()); err != nil {
		t.Fatalf("duplicate Add: %v", err)
	}
	if len(users.user.Bookmarks) != 1 {
		t.Fatalf("duplicate add must not grow the set, got %d", len(users.user.Bookmarks))
	}
	if users.replaced != 1 {
		t.Errorf("duplicate add must not write, got %d writes", users.replaced)
	}

	if err := store.Remove(ctx, userID, topicID.Hex()); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(users.user.Bookmarks) != 0 {
		t.Fatalf("expected empty set after remove, got %d", len(users.user.Bookmarks))
	}

	// absent remove is a silent no-op
	if err := store.Remove(ctx, userID, topicID.Hex()); err != nil {
		t.Fatalf("absent Remove: %v", err)
	}
	if users.replaced != 2 {
		t.Errorf("absent remove must not write, got %d writes", users.replaced)
	}
}

func TestToggle(t *testing.T) {
	topicID := primitive.NewObjectID()
	store, _, user := newStore(topicID)
	ctx := context.Background()
	userID := user.ID.Hex()

	on, err := store.Toggle(ctx, userID, topicID.Hex())
	if err != nil {
		t.Fatalf("Toggle on: %v", err)
	}
	if !on {
		t.Error("first toggle should report bookmarked")
	}

	bookmarked, err := store.IsBookmarked(ctx, userID, topicID.Hex())
	if err != nil || !bookmarked {
		t.Fatalf("expected bookmarked=true, got %v err=%v", bookmarked, err)
	}

	off, err := store.Toggle(ctx, userID, topicID.Hex())
	if err != nil {
		t.Fatalf("Toggle off: %v", err)
	}
	if off {
		t.Error("second toggle should report not bookmarked")
	}

	bookmarked, err = store.IsBookmarked(ctx, userID, topicID.Hex())
	if err != nil || bookmarked {
		t.Fatalf("expected bookmarked=false, got %v err=%v", bookmarked, err)
	}
}

func TestAddValidatesTopic(t *testing.T) {
	store, users, user := newStore()
	ctx := context.Background()
	userID := user.ID.Hex()

	if err := store.Add(ctx, userID, "not-a-hex-id"); !errors.Is(err, common.ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
	if err := store.Add(ctx, userID, primitive.NewObjectID().Hex()); !errors.Is(err, common.ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
	if users.replaced != 0 {
		t.Errorf("rejected adds must not write")
	}
}

func TestList(t *testing.T) {
	topicA := primitive.NewObjectID()
	topicB := primitive.NewObjectID()
	store, _, user := newStore(topicA, topicB)
	ctx := context.Background()
	userID := user.ID.Hex()

	if err := store.Add(ctx, userID, topicA.Hex()); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(ctx, userID, topicB.Hex()); err != nil {
		t.Fatal(err)
	}

	ids, err := store.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(ids))
	}
}
