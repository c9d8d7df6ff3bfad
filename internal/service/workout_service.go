package service

import (
	"context"
	"errors"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrWorkoutForbidden = errors.New("workout does not belong to this user")
	ErrValidationFailed = errors.New("validation failed")
)

// WorkoutUpdate carries the optional fields of a raw record update.
// Nil fields are left untouched.
type WorkoutUpdate struct {
	Date  *time.Time
	Notes *string
}

// WorkoutService owns every state transition on a workout record. Each
// mutation applies an in-memory change to a loaded record and writes the
// whole document back.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, username string, date time.Time) (*domain.Workout, error)
	GetWorkoutByID(ctx context.Context, username string, id primitive.ObjectID) (*domain.Workout, error)
	GetWorkoutByDate(ctx context.Context, username string, day time.Time) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, username string, limit, offset int64) ([]domain.Workout, int64, error)
	UpdateWorkout(ctx context.Context, workout *domain.Workout, update WorkoutUpdate) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, workout *domain.Workout) error

	AddExercise(ctx context.Context, workout *domain.Workout, exerciseID primitive.ObjectID) (*domain.Workout, error)
	AddSet(ctx context.Context, workout *domain.Workout, exerciseIndex int, weight float64, reps int) (*domain.Workout, error)
	CompleteSet(ctx context.Context, workout *domain.Workout, exerciseIndex, setIndex int) (*domain.Workout, error)
	RemoveSet(ctx context.Context, workout *domain.Workout, exerciseIndex, setIndex int) (*domain.Workout, error)
	CompleteWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateWorkout starts a new in-progress session. The session date
// defaults to now when date is zero.
func (s *workoutService) CreateWorkout(ctx context.Context, username string, date time.Time) (*domain.Workout, error) {
	if username == "" {
		return nil, ErrValidationFailed
	}

	workout := domain.NewWorkout(username, date, s.now())
	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = id
	return workout, nil
}

// GetWorkoutByID fetches a record and enforces the username scope: a
// record owned by someone else is never returned.
func (s *workoutService) GetWorkoutByID(ctx context.Context, username string, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.Username != username {
		return nil, ErrWorkoutForbidden
	}
	return workout, nil
}

// GetWorkoutByDate returns the record whose date falls within the calendar
// day of the given time, in UTC.
func (s *workoutService) GetWorkoutByDate(ctx context.Context, username string, day time.Time) (*domain.Workout, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Second)

	workout, err := s.workoutRepo.GetByUsernameInDateRange(ctx, username, from, to)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// ListWorkouts pages through a user's records, newest-first.
func (s *workoutService) ListWorkouts(ctx context.Context, username string, limit, offset int64) ([]domain.Workout, int64, error) {
	return s.workoutRepo.GetByUsername(ctx, username, limit, offset)
}

// UpdateWorkout applies a raw field update to an already-resolved record.
func (s *workoutService) UpdateWorkout(ctx context.Context, workout *domain.Workout, update WorkoutUpdate) (*domain.Workout, error) {
	if update.Date != nil {
		workout.Date = *update.Date
	}
	if update.Notes != nil {
		workout.Notes = *update.Notes
	}
	if err := s.persist(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// DeleteWorkout removes an already-resolved record.
func (s *workoutService) DeleteWorkout(ctx context.Context, workout *domain.Workout) error {
	err := s.workoutRepo.Delete(ctx, workout.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// AddExercise appends an empty exercise log. The exercise id is not
// validated against the catalog; dangling references are accepted.
func (s *workoutService) AddExercise(ctx context.Context, workout *domain.Workout, exerciseID primitive.ObjectID) (*domain.Workout, error) {
	workout.AddExercise(exerciseID)
	if err := s.persist(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// AddSet appends a set to the addressed exercise log.
func (s *workoutService) AddSet(ctx context.Context, workout *domain.Workout, exerciseIndex int, weight float64, reps int) (*domain.Workout, error) {
	if err := workout.AddSet(exerciseIndex, weight, reps); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// CompleteSet marks the addressed set done. Re-invoking refreshes the
// completion timestamp; that idempotence is intentional.
func (s *workoutService) CompleteSet(ctx context.Context, workout *domain.Workout, exerciseIndex, setIndex int) (*domain.Workout, error) {
	if err := workout.CompleteSet(exerciseIndex, setIndex, s.now()); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// RemoveSet deletes the addressed set and renumbers the remaining sets of
// its log.
func (s *workoutService) RemoveSet(ctx context.Context, workout *domain.Workout, exerciseIndex, setIndex int) (*domain.Workout, error) {
	if err := workout.RemoveSet(exerciseIndex, setIndex); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// CompleteWorkout closes the session: end time, rounded duration minutes
// and the computed intensity. A second call recomputes both from the
// original start time to a fresh end time, overwriting the prior
// completion data.
func (s *workoutService) CompleteWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	workout.Complete(s.now())
	if err := s.persist(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) persist(ctx context.Context, workout *domain.Workout) error {
	err := s.workoutRepo.Replace(ctx, workout)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}
