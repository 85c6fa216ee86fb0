package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ProgressEntry records, per subject, the topics and units a user has
// completed. ProgressPercentage is derived, never set independently.
type ProgressEntry struct {
	SubjectID          primitive.ObjectID   `bson:"subjectId" json:"subjectId"`
	CompletedTopics    []primitive.ObjectID `bson:"completedTopics" json:"completedTopics"`
	CompletedUnits     []primitive.ObjectID `bson:"completedUnits" json:"completedUnits"`
	ProgressPercentage int                  `bson:"progressPercentage" json:"progressPercentage"`
}

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Role      string               `bson:"role" json:"role"`
	Bookmarks []primitive.ObjectID `bson:"bookmarks" json:"bookmarks"`
	Progress  []ProgressEntry      `bson:"progress" json:"progress"`
	Theme     string               `bson:"theme" json:"theme"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ProgressFor returns the progress entry for a subject, or nil.
func (u *User) ProgressFor(subjectID primitive.ObjectID) *ProgressEntry {
	for i := range u.Progress {
		if u.Progress[i].SubjectID == subjectID {
			return &u.Progress[i]
		}
	}
	return nil
}

func ValidTheme(t string) bool {
	switch t {
	case "light", "dark", "system":
		return true
	}
	return false
}
