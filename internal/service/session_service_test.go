package service_test

import (
	"context"
	"testing"
	"time"

	"sanam/my-workouts/internal/domain"
	"sanam/my-workouts/internal/repository"
	"sanam/my-workouts/internal/service"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeSessionRepo is an in-memory repository.SessionRepository mirroring the
// store semantics: active-session uniqueness, $push/$pull array mutation,
// completedAt as the current/historical discriminant.
type fakeSessionRepo struct {
	sessions map[primitive.ObjectID]*domain.WorkoutSession
	clock    time.Time
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[primitive.ObjectID]*domain.WorkoutSession),
		clock:    time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *fakeSessionRepo) now() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakeSessionRepo) FindCurrent(_ context.Context, userID string) (*domain.WorkoutSession, error) {
	var newest *domain.WorkoutSession
	for _, s := range r.sessions {
		if s.UserID == userID && s.CompletedAt == nil {
			if newest == nil || s.CreatedAt.After(newest.CreatedAt) {
				newest = s
			}
		}
	}
	if newest == nil {
		return nil, repository.ErrNotFound
	}
	out := *newest
	return &out, nil
}

func (r *fakeSessionRepo) Create(_ context.Context, userID string) (*domain.WorkoutSession, error) {
	for _, s := range r.sessions {
		if s.UserID == userID && s.CompletedAt == nil {
			return nil, repository.ErrSessionInProgress
		}
	}
	session := &domain.WorkoutSession{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		CreatedAt: r.now(),
		Workouts:  []domain.Workout{},
	}
	r.sessions[session.ID] = session
	out := *session
	return &out, nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *s
	return &out, nil
}

func (r *fakeSessionRepo) AppendWorkout(_ context.Context, sessionID primitive.ObjectID, workout domain.Workout) error {
	s, ok := r.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	s.Workouts = append(s.Workouts, workout)
	return nil
}

func (r *fakeSessionRepo) RemoveWorkout(_ context.Context, sessionID primitive.ObjectID, workoutID string) error {
	s, ok := r.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	kept := s.Workouts[:0]
	for _, w := range s.Workouts {
		if w.ID != workoutID {
			kept = append(kept, w)
		}
	}
	s.Workouts = kept
	return nil
}

func (r *fakeSessionRepo) End(_ context.Context, sessionID primitive.ObjectID) error {
	s, ok := r.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	completed := r.now()
	s.CompletedAt = &completed
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, sessionID primitive.ObjectID) error {
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeSessionRepo) ListPrevious(_ context.Context, userID string, count int) ([]domain.WorkoutSession, error) {
	if count <= 0 {
		count = 2
	}
	result := []domain.WorkoutSession{}
	for _, s := range r.sessions {
		if s.UserID == userID && s.CompletedAt != nil {
			result = append(result, *s)
		}
	}
	// newest completedAt first
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].CompletedAt.After(*result[i].CompletedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	if len(result) > count {
		result = result[:count]
	}
	return result, nil
}

const testUserID = "user-1"

func newTestService() (service.SessionService, *fakeSessionRepo) {
	repo := newFakeSessionRepo()
	return service.NewSessionService(repo), repo
}

func TestSessionService_StartAndCurrent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	t.Run("no current session before start", func(t *testing.T) {
		_, err := svc.Current(ctx, testUserID)
		require.ErrorIs(t, err, service.ErrNoActiveSession)
	})

	t.Run("start then current returns the same active session", func(t *testing.T) {
		started, err := svc.Start(ctx, testUserID)
		require.NoError(t, err)
		require.Equal(t, testUserID, started.UserID)
		require.Nil(t, started.CompletedAt)
		require.Empty(t, started.Workouts)

		current, err := svc.Current(ctx, testUserID)
		require.NoError(t, err)
		require.Equal(t, started.ID, current.ID)
	})

	t.Run("second start is refused while one is active", func(t *testing.T) {
		_, err := svc.Start(ctx, testUserID)
		require.ErrorIs(t, err, service.ErrSessionInProgress)
	})

	t.Run("other users are isolated", func(t *testing.T) {
		_, err := svc.Current(ctx, "user-2")
		require.ErrorIs(t, err, service.ErrNoActiveSession)
	})
}

func TestSessionService_AddWorkout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	started, err := svc.Start(ctx, testUserID)
	require.NoError(t, err)
	sessionID := started.ID.Hex()

	t.Run("append preserves order and prior entries", func(t *testing.T) {
		a, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: domain.TypeChest, Name: "Bench Press", Weight: 60, Reps: 12,
		})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)

		b, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: domain.TypeChest, Name: "Cable Fly", Weight: 15, Reps: 12,
		})
		require.NoError(t, err)

		c, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: domain.TypeTriceps, Name: "Triceps Pushdown", Weight: 25, Reps: 10,
		})
		require.NoError(t, err)
		require.NotEqual(t, a.ID, b.ID)
		require.NotEqual(t, b.ID, c.ID)

		current, err := svc.Current(ctx, testUserID)
		require.NoError(t, err)
		require.Equal(t, []string{a.ID, b.ID, c.ID}, []string{
			current.Workouts[0].ID, current.Workouts[1].ID, current.Workouts[2].ID,
		})
	})

	t.Run("unknown type rejected before any store call", func(t *testing.T) {
		_, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: "Cardio", Name: "Running", Weight: 0, Reps: 1,
		})
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("name outside the catalog for the type rejected", func(t *testing.T) {
		_, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: domain.TypeLegs, Name: "Bench Press", Weight: 60, Reps: 10,
		})
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("non-positive reps rejected", func(t *testing.T) {
		_, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: domain.TypeLegs, Name: "Squat", Weight: 100, Reps: 0,
		})
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		_, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: domain.TypeLegs, Name: "Squat", Weight: -5, Reps: 10,
		})
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("foreign session reads as not found", func(t *testing.T) {
		_, err := svc.AddWorkout(ctx, "user-2", sessionID, service.AddWorkoutInput{
			Type: domain.TypeLegs, Name: "Squat", Weight: 100, Reps: 5,
		})
		require.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("malformed session id reads as not found", func(t *testing.T) {
		_, err := svc.AddWorkout(ctx, testUserID, "not-an-id", service.AddWorkoutInput{
			Type: domain.TypeLegs, Name: "Squat", Weight: 100, Reps: 5,
		})
		require.ErrorIs(t, err, service.ErrSessionNotFound)
	})
}

func TestSessionService_RemoveWorkout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	started, err := svc.Start(ctx, testUserID)
	require.NoError(t, err)
	sessionID := started.ID.Hex()

	var ids []string
	for _, name := range []string{"Squat", "Leg Press", "Leg Curl"} {
		w, err := svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
			Type: domain.TypeLegs, Name: name, Weight: 80, Reps: 10,
		})
		require.NoError(t, err)
		ids = append(ids, w.ID)
	}

	t.Run("removes by id, not position", func(t *testing.T) {
		require.NoError(t, svc.RemoveWorkout(ctx, testUserID, sessionID, ids[1]))

		current, err := svc.Current(ctx, testUserID)
		require.NoError(t, err)
		require.Len(t, current.Workouts, 2)
		require.Equal(t, ids[0], current.Workouts[0].ID)
		require.Equal(t, ids[2], current.Workouts[1].ID)
	})

	t.Run("unknown workout id is a silent no-op", func(t *testing.T) {
		require.NoError(t, svc.RemoveWorkout(ctx, testUserID, sessionID, "missing"))

		current, err := svc.Current(ctx, testUserID)
		require.NoError(t, err)
		require.Len(t, current.Workouts, 2)
	})

	t.Run("unknown session is an error", func(t *testing.T) {
		err := svc.RemoveWorkout(ctx, testUserID, primitive.NewObjectID().Hex(), ids[0])
		require.ErrorIs(t, err, service.ErrSessionNotFound)
	})
}

func TestSessionService_EndAndHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	started, err := svc.Start(ctx, testUserID)
	require.NoError(t, err)
	sessionID := started.ID.Hex()

	t.Run("ending removes the session from current", func(t *testing.T) {
		require.NoError(t, svc.End(ctx, testUserID, sessionID))

		_, err := svc.Current(ctx, testUserID)
		require.ErrorIs(t, err, service.ErrNoActiveSession)
	})

	t.Run("ended session appears in history with completedAt set", func(t *testing.T) {
		history, err := svc.History(ctx, testUserID, 0)
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Equal(t, started.ID, history[0].ID)
		require.NotNil(t, history[0].CompletedAt)
	})

	t.Run("history is bounded and newest first", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			s, err := svc.Start(ctx, testUserID)
			require.NoError(t, err)
			require.NoError(t, svc.End(ctx, testUserID, s.ID.Hex()))
		}

		history, err := svc.History(ctx, testUserID, 2)
		require.NoError(t, err)
		require.Len(t, history, 2)
		require.True(t, history[0].CompletedAt.After(*history[1].CompletedAt))

		all, err := svc.History(ctx, testUserID, 10)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i := 1; i < len(all); i++ {
			require.True(t, all[i-1].CompletedAt.After(*all[i].CompletedAt))
		}
	})

	t.Run("default count is two", func(t *testing.T) {
		history, err := svc.History(ctx, testUserID, 0)
		require.NoError(t, err)
		require.Len(t, history, 2)
	})
}

func TestSessionService_Discard(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	started, err := svc.Start(ctx, testUserID)
	require.NoError(t, err)
	sessionID := started.ID.Hex()

	_, err = svc.AddWorkout(ctx, testUserID, sessionID, service.AddWorkoutInput{
		Type: domain.TypeBack, Name: "Deadlift", Weight: 120, Reps: 5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Discard(ctx, testUserID, sessionID))

	t.Run("discarded session is gone from current and history", func(t *testing.T) {
		_, err := svc.Current(ctx, testUserID)
		require.ErrorIs(t, err, service.ErrNoActiveSession)

		history, err := svc.History(ctx, testUserID, 10)
		require.NoError(t, err)
		require.Empty(t, history)
	})

	t.Run("a new session can be started afterwards", func(t *testing.T) {
		_, err := svc.Start(ctx, testUserID)
		require.NoError(t, err)
	})
}

func TestSessionService_AllWorkouts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.Start(ctx, testUserID)
	require.NoError(t, err)
	_, err = svc.AddWorkout(ctx, testUserID, first.ID.Hex(), service.AddWorkoutInput{
		Type: domain.TypeChest, Name: "Bench Press", Weight: 60, Reps: 12,
	})
	require.NoError(t, err)
	require.NoError(t, svc.End(ctx, testUserID, first.ID.Hex()))

	second, err := svc.Start(ctx, testUserID)
	require.NoError(t, err)
	_, err = svc.AddWorkout(ctx, testUserID, second.ID.Hex(), service.AddWorkoutInput{
		Type: domain.TypeBack, Name: "Deadlift", Weight: 120, Reps: 5,
	})
	require.NoError(t, err)

	workouts, err := svc.AllWorkouts(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	// active session's entries come first
	require.Equal(t, "Deadlift", workouts[0].Name)
	require.Equal(t, "Bench Press", workouts[1].Name)
}
