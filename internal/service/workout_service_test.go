package service

import (
	"context"
	"testing"
	"time"

	"fittrack/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestWorkoutService(repo *fakeWorkoutRepo, now time.Time) *workoutService {
	svc := NewWorkoutService(repo).(*workoutService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateWorkout(t *testing.T) {
	repo := newFakeWorkoutRepo()
	now := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	svc := newTestWorkoutService(repo, now)
	ctx := context.Background()

	workout, err := svc.CreateWorkout(ctx, "alice", time.Time{})
	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, workout.ID)
	assert.Equal(t, "alice", workout.Username)
	assert.Equal(t, now, workout.Date)
	assert.Equal(t, domain.WorkoutStatusInProgress, workout.Status)

	_, err = svc.CreateWorkout(ctx, "", time.Time{})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestGetWorkoutByID_Scoping(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo, time.Now().UTC())
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, "alice", time.Time{})
	require.NoError(t, err)

	// Owner gets the record back.
	got, err := svc.GetWorkoutByID(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another user is rejected and never sees data.
	got, err = svc.GetWorkoutByID(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, ErrWorkoutForbidden)
	assert.Nil(t, got)

	// Unknown id.
	_, err = svc.GetWorkoutByID(ctx, "alice", primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestGetWorkoutByDate(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo, time.Now().UTC())
	ctx := context.Background()

	date := time.Date(2024, 5, 10, 17, 45, 0, 0, time.UTC)
	created, err := svc.CreateWorkout(ctx, "alice", date)
	require.NoError(t, err)

	// Any time within the same calendar day matches.
	got, err := svc.GetWorkoutByDate(ctx, "alice", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetWorkoutByDate(ctx, "alice", time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	// A different user's day lookup never finds alice's record.
	_, err = svc.GetWorkoutByDate(ctx, "bob", date)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestMutations_PersistAndReturnUpdatedRecord(t *testing.T) {
	repo := newFakeWorkoutRepo()
	now := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	svc := newTestWorkoutService(repo, now)
	ctx := context.Background()

	workout, err := svc.CreateWorkout(ctx, "alice", time.Time{})
	require.NoError(t, err)

	exerciseID := primitive.NewObjectID()
	workout, err = svc.AddExercise(ctx, workout, exerciseID)
	require.NoError(t, err)
	require.Len(t, workout.Exercises, 1)

	workout, err = svc.AddSet(ctx, workout, 0, 50, 10)
	require.NoError(t, err)
	require.Len(t, workout.Exercises[0].Sets, 1)

	_, err = svc.AddSet(ctx, workout, 5, 50, 10)
	assert.ErrorIs(t, err, domain.ErrExerciseIndexOutOfRange)

	workout, err = svc.CompleteSet(ctx, workout, 0, 0)
	require.NoError(t, err)
	assert.True(t, workout.Exercises[0].Sets[0].Completed)

	// The mutation reached the store, not just the in-memory copy.
	stored, err := repo.GetByID(ctx, workout.ID)
	require.NoError(t, err)
	assert.True(t, stored.Exercises[0].Sets[0].Completed)
}

func TestCompleteWorkout(t *testing.T) {
	repo := newFakeWorkoutRepo()
	start := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	svc := newTestWorkoutService(repo, start)
	ctx := context.Background()

	workout, err := svc.CreateWorkout(ctx, "alice", time.Time{})
	require.NoError(t, err)
	workout, err = svc.AddExercise(ctx, workout, primitive.NewObjectID())
	require.NoError(t, err)
	workout, err = svc.AddSet(ctx, workout, 0, 50, 10)
	require.NoError(t, err)
	workout, err = svc.CompleteSet(ctx, workout, 0, 0)
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(45 * time.Minute) }
	workout, err = svc.CompleteWorkout(ctx, workout)
	require.NoError(t, err)

	assert.Equal(t, domain.WorkoutStatusCompleted, workout.Status)
	require.NotNil(t, workout.Duration)
	assert.Equal(t, 45, *workout.Duration)
	require.NotNil(t, workout.Intensity)
	assert.Equal(t, 8.0, *workout.Intensity)
}

func TestUpdateAndDeleteWorkout(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo, time.Now().UTC())
	ctx := context.Background()

	workout, err := svc.CreateWorkout(ctx, "alice", time.Time{})
	require.NoError(t, err)

	notes := "leg day"
	newDate := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)
	workout, err = svc.UpdateWorkout(ctx, workout, WorkoutUpdate{Date: &newDate, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "leg day", workout.Notes)
	assert.Equal(t, newDate, workout.Date)

	require.NoError(t, svc.DeleteWorkout(ctx, workout))
	_, err = svc.GetWorkoutByID(ctx, "alice", workout.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.ErrorIs(t, svc.DeleteWorkout(ctx, workout), ErrWorkoutNotFound)
}

func TestListWorkouts_Paging(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo, time.Now().UTC())
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := svc.CreateWorkout(ctx, "alice", base.AddDate(0, 0, i))
		require.NoError(t, err)
	}
	_, err := svc.CreateWorkout(ctx, "bob", base)
	require.NoError(t, err)

	workouts, total, err := svc.ListWorkouts(ctx, "alice", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, workouts, 2)
	// Newest-first: offset 1 skips May 5th.
	assert.Equal(t, base.AddDate(0, 0, 3), workouts[0].Date)
	assert.Equal(t, base.AddDate(0, 0, 2), workouts[1].Date)
}
