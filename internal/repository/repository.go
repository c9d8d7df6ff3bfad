package repository

import (
	"context"
	"time"

	"fittrack/workout-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseFilter narrows a catalog listing. Zero values mean "no filter";
// Search matches a case-insensitive name substring.
type ExerciseFilter struct {
	BodyPart   domain.BodyPart
	Difficulty domain.Difficulty
	Search     string
}

// ExerciseRepository defines access to the exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	CreateMany(ctx context.Context, exercises []domain.Exercise) (int, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByName(ctx context.Context, name string) (*domain.Exercise, error)
	Find(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutRepository defines access to workout records. Mutations follow a
// load-modify-write cycle: the full document is read, changed in memory
// and written back with Replace. Last write wins on concurrent updates.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByUsername(ctx context.Context, username string, limit, offset int64) ([]domain.Workout, int64, error)
	GetByUsernameSince(ctx context.Context, username string, since time.Time) ([]domain.Workout, error)
	GetByUsernameInDateRange(ctx context.Context, username string, from, to time.Time) (*domain.Workout, error)
	Replace(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
