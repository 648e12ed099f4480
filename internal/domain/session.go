package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType is the exercise category a workout entry belongs to.
type WorkoutType string

const (
	TypeBack     WorkoutType = "Back"
	TypeBiceps   WorkoutType = "Biceps"
	TypeChest    WorkoutType = "Chest"
	TypeLegs     WorkoutType = "Legs"
	TypeShoulder WorkoutType = "Shoulder"
	TypeTriceps  WorkoutType = "Triceps"
)

// WorkoutTypes lists every category in display order.
var WorkoutTypes = []WorkoutType{
	TypeBack, TypeBiceps, TypeChest, TypeLegs, TypeShoulder, TypeTriceps,
}

// IsValid reports whether t is one of the known categories.
func (t WorkoutType) IsValid() bool {
	for _, wt := range WorkoutTypes {
		if t == wt {
			return true
		}
	}
	return false
}

// Workout is one logged set within a session. Entries are appended in
// logging order and removed by ID, never edited in place.
type Workout struct {
	ID     string      `bson:"id" json:"id"` // client-generated, unique within the session
	Type   WorkoutType `bson:"type" json:"type"`
	Name   string      `bson:"name" json:"name"`
	Weight float64     `bson:"weight" json:"weight"`
	Reps   int         `bson:"reps" json:"reps"`
}

// WorkoutSession is a single tracking episode for one user.
// CompletedAt is nil while the session is active; its presence is the sole
// discriminant between "current" and "historical".
type WorkoutSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	CompletedAt *time.Time         `bson:"completedAt" json:"completedAt,omitempty"`
	Workouts    []Workout          `bson:"workouts" json:"workouts"`
}

// IsActive reports whether the session has not been finalized yet.
func (s *WorkoutSession) IsActive() bool {
	return s.CompletedAt == nil
}
