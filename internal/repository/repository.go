package repository

import (
	"context"

	"sanam/my-workouts/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound          = RepositoryError("not found")
	ErrSessionInProgress = RepositoryError("an active session already exists")
	ErrUpdateFailed      = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionRepository defines the interface for workout session documents.
// Callers must treat ErrNotFound as "no matching session", never as a
// transport failure.
type SessionRepository interface {
	// FindCurrent returns the newest session for the user whose completedAt
	// is unset, or ErrNotFound when none exists.
	FindCurrent(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	// Create inserts a fresh active session (empty workouts, repo-assigned
	// createdAt). ErrSessionInProgress when the user already has one.
	Create(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	// AppendWorkout atomically appends one entry to the session's workouts.
	AppendWorkout(ctx context.Context, sessionID primitive.ObjectID, workout domain.Workout) error
	// RemoveWorkout removes the entry with the given id; removing an unknown
	// workout id succeeds with zero effect.
	RemoveWorkout(ctx context.Context, sessionID primitive.ObjectID, workoutID string) error
	// End stamps completedAt, finalizing the session.
	End(ctx context.Context, sessionID primitive.ObjectID) error
	// Delete destroys the session document irrecoverably.
	Delete(ctx context.Context, sessionID primitive.ObjectID) error
	// ListPrevious returns up to count finalized sessions, newest
	// completedAt first. count <= 0 falls back to the default of 2.
	ListPrevious(ctx context.Context, userID string, count int) ([]domain.WorkoutSession, error)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	SetPhotoKey(ctx context.Context, id primitive.ObjectID, photoKey string) error
}
