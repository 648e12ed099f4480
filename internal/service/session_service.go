package service

import (
	"context"
	"errors"
	"fmt"

	"sanam/my-workouts/internal/domain"
	"sanam/my-workouts/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrNoActiveSession   = errors.New("no active workout session")
	ErrSessionInProgress = errors.New("a workout session is already in progress")
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrValidation        = errors.New("validation failed")
)

// How many finalized sessions the flattened workout listing draws from, and
// the cap on history page size.
const (
	allWorkoutsSessionLimit = 50
	maxHistoryCount         = 50
)

// AddWorkoutInput carries one set to log against the active session.
type AddWorkoutInput struct {
	Type   domain.WorkoutType
	Name   string
	Weight float64
	Reps   int
}

// SessionService owns the workout session lifecycle rules: a user has at
// most one active session, entries are validated against the exercise
// catalog before any store call, and every operation is scoped to the
// calling user.
type SessionService interface {
	Current(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	Start(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	AddWorkout(ctx context.Context, userID, sessionID string, input AddWorkoutInput) (*domain.Workout, error)
	RemoveWorkout(ctx context.Context, userID, sessionID, workoutID string) error
	End(ctx context.Context, userID, sessionID string) error
	Discard(ctx context.Context, userID, sessionID string) error
	History(ctx context.Context, userID string, count int) ([]domain.WorkoutSession, error)
	AllWorkouts(ctx context.Context, userID string) ([]domain.Workout, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

// Current returns the caller's active session. ErrNoActiveSession is the
// "offer to start one" signal, distinct from store failures which propagate
// unmodified.
func (s *sessionService) Current(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.FindCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}
	return session, nil
}

// Start creates a fresh session for the caller. Refused while another one
// is active; the repository's unique constraint backs this check against
// concurrent creates.
func (s *sessionService) Start(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	_, err := s.sessionRepo.FindCurrent(ctx, userID)
	if err == nil {
		return nil, ErrSessionInProgress
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	session, err := s.sessionRepo.Create(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionInProgress) {
			return nil, ErrSessionInProgress
		}
		return nil, err
	}
	return session, nil
}

// AddWorkout validates the set locally, assigns it a unique entry id and
// appends it to the session. No store round-trip happens on validation
// failure.
func (s *sessionService) AddWorkout(ctx context.Context, userID, sessionID string, input AddWorkoutInput) (*domain.Workout, error) {
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown workout type %q", ErrValidation, input.Type)
	}
	if !domain.InCatalog(input.Type, input.Name) {
		return nil, fmt.Errorf("%w: %q is not a %s exercise", ErrValidation, input.Name, input.Type)
	}
	if input.Weight < 0 {
		return nil, fmt.Errorf("%w: weight must not be negative", ErrValidation)
	}
	if input.Reps < 1 {
		return nil, fmt.Errorf("%w: reps must be at least 1", ErrValidation)
	}

	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	workout := domain.Workout{
		ID:     uuid.NewString(),
		Type:   input.Type,
		Name:   input.Name,
		Weight: input.Weight,
		Reps:   input.Reps,
	}
	if err := s.sessionRepo.AppendWorkout(ctx, session.ID, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// RemoveWorkout drops one logged set by its entry id. An id that matches no
// entry succeeds with zero effect.
func (s *sessionService) RemoveWorkout(ctx context.Context, userID, sessionID, workoutID string) error {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.RemoveWorkout(ctx, session.ID, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// End finalizes the session, stamping completedAt. The session then stops
// appearing as current and joins the history listing.
func (s *sessionService) End(ctx context.Context, userID, sessionID string) error {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.End(ctx, session.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// Discard destroys the session and everything logged in it. Irrecoverable.
func (s *sessionService) Discard(ctx context.Context, userID, sessionID string) error {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, session.ID)
}

// History returns up to count finalized sessions, newest first. count is
// clamped to [1, maxHistoryCount]; zero or negative falls back to the
// repository default.
func (s *sessionService) History(ctx context.Context, userID string, count int) ([]domain.WorkoutSession, error) {
	if count > maxHistoryCount {
		count = maxHistoryCount
	}
	return s.sessionRepo.ListPrevious(ctx, userID, count)
}

// AllWorkouts flattens the caller's logged sets across the active session
// and recent finalized sessions, active first, then newest history.
func (s *sessionService) AllWorkouts(ctx context.Context, userID string) ([]domain.Workout, error) {
	workouts := []domain.Workout{}

	current, err := s.sessionRepo.FindCurrent(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if current != nil {
		workouts = append(workouts, current.Workouts...)
	}

	previous, err := s.sessionRepo.ListPrevious(ctx, userID, allWorkoutsSessionLimit)
	if err != nil {
		return nil, err
	}
	for _, session := range previous {
		workouts = append(workouts, session.Workouts...)
	}
	return workouts, nil
}

// ownedSession resolves a session id string and verifies the session
// belongs to the caller. Foreign or malformed ids read as not found so the
// existence of other users' sessions is not leaked.
func (s *sessionService) ownedSession(ctx context.Context, userID, sessionID string) (*domain.WorkoutSession, error) {
	objectID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	session, err := s.sessionRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
