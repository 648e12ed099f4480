package mongo

import (
	"context"
	"errors"
	"time"

	"sanam/my-workouts/internal/domain"
	"sanam/my-workouts/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "workoutSessions"

// DefaultPreviousSessionCount bounds history queries when the caller does
// not supply a count.
const DefaultPreviousSessionCount = 2

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new workout session repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// FindCurrent retrieves the user's active session: completedAt unset,
// newest createdAt first. ErrNotFound means the user has no active session,
// which callers must not conflate with a store failure.
func (r *mongoSessionRepository) FindCurrent(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	filter := bson.M{"userId": userID, "completedAt": nil}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var session domain.WorkoutSession
	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Create inserts a fresh active session for the user. The partial unique
// index on (userId, completedAt == null) rejects a second active session;
// that store error surfaces as ErrSessionInProgress.
func (r *mongoSessionRepository) Create(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	if userID == "" {
		return nil, errors.New("session requires a userId")
	}

	session := &domain.WorkoutSession{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
		CompletedAt: nil,
		Workouts:    []domain.Workout{},
	}

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrSessionInProgress
		}
		return nil, err
	}
	return session, nil
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// AppendWorkout atomically appends one entry to the session's workouts
// array. $push preserves insertion order, so logging order is kept without
// a read-modify-write cycle.
func (r *mongoSessionRepository) AppendWorkout(ctx context.Context, sessionID primitive.ObjectID, workout domain.Workout) error {
	filter := bson.M{"_id": sessionID}
	update := bson.M{"$push": bson.M{"workouts": workout}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RemoveWorkout pulls the entry whose id matches workoutID. The order of
// remaining entries is preserved. A workoutID that matches no entry is a
// silent no-op, per $pull semantics.
func (r *mongoSessionRepository) RemoveWorkout(ctx context.Context, sessionID primitive.ObjectID, workoutID string) error {
	filter := bson.M{"_id": sessionID}
	update := bson.M{"$pull": bson.M{"workouts": bson.M{"id": workoutID}}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// End stamps completedAt with the current time, finalizing the session.
// One-shot: a second call overwrites the timestamp.
func (r *mongoSessionRepository) End(ctx context.Context, sessionID primitive.ObjectID) error {
	filter := bson.M{"_id": sessionID}
	update := bson.M{"$set": bson.M{"completedAt": time.Now().UTC()}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete destroys the session document and its embedded workouts. Deleting
// an unknown id is a silent no-op.
func (r *mongoSessionRepository) Delete(ctx context.Context, sessionID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}

// ListPrevious retrieves up to count finalized sessions for the user,
// ordered newest completedAt first. An empty result is not an error.
func (r *mongoSessionRepository) ListPrevious(ctx context.Context, userID string, count int) ([]domain.WorkoutSession, error) {
	if count <= 0 {
		count = DefaultPreviousSessionCount
	}

	filter := bson.M{"userId": userID, "completedAt": bson.M{"$ne": nil}}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetLimit(int64(count))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []domain.WorkoutSession{}
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// EnsureSessionIndexes creates indexes for the workoutSessions collection.
// The partial unique index enforces at most one active session per user at
// the store, which the application-level check alone cannot guarantee under
// concurrent creates.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"completedAt": bson.M{"$type": "null"}}),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "completedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
