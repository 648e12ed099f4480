package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`          // unique
	PasswordHash string             `bson:"passwordHash" json:"-"`       // never exposed via JSON
	PhotoKey     string             `bson:"photoKey,omitempty" json:"-"` // object key of the avatar in storage
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FirstName returns the first word of the user's full name, used for
// greeting headers.
func (u *User) FirstName() string {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return ""
	}
	return strings.Fields(name)[0]
}
