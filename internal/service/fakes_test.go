package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes implementing the repository interfaces.

type fakeWorkoutRepo struct {
	workouts   map[primitive.ObjectID]*domain.Workout
	replaceErr error
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	copied := *workout
	r.workouts[workout.ID] = &copied
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *workout
	return &copied, nil
}

func (r *fakeWorkoutRepo) byUsername(username string) []domain.Workout {
	var result []domain.Workout
	for _, w := range r.workouts {
		if w.Username == username {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

func (r *fakeWorkoutRepo) GetByUsername(_ context.Context, username string, limit, offset int64) ([]domain.Workout, int64, error) {
	all := r.byUsername(username)
	total := int64(len(all))
	if offset >= total {
		return []domain.Workout{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeWorkoutRepo) GetByUsernameSince(_ context.Context, username string, since time.Time) ([]domain.Workout, error) {
	var result []domain.Workout
	for _, w := range r.byUsername(username) {
		if !w.Date.Before(since) {
			result = append(result, w)
		}
	}
	return result, nil
}

func (r *fakeWorkoutRepo) GetByUsernameInDateRange(_ context.Context, username string, from, to time.Time) (*domain.Workout, error) {
	for _, w := range r.byUsername(username) {
		if !w.Date.Before(from) && !w.Date.After(to) {
			copied := w
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) Replace(_ context.Context, workout *domain.Workout) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	if _, ok := r.workouts[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	workout.UpdatedAt = time.Now().UTC()
	copied := *workout
	r.workouts[workout.ID] = &copied
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]*domain.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]*domain.Exercise)}
}

func (r *fakeExerciseRepo) add(exercise domain.Exercise) primitive.ObjectID {
	if exercise.ID == primitive.NilObjectID {
		exercise.ID = primitive.NewObjectID()
	}
	r.exercises[exercise.ID] = &exercise
	return exercise.ID
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	for _, existing := range r.exercises {
		if existing.Name == exercise.Name {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	copied := *exercise
	r.exercises[exercise.ID] = &copied
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) CreateMany(ctx context.Context, exercises []domain.Exercise) (int, error) {
	for i := range exercises {
		if _, err := r.Create(ctx, &exercises[i]); err != nil {
			return i, err
		}
	}
	return len(exercises), nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *exercise
	return &copied, nil
}

func (r *fakeExerciseRepo) GetByName(_ context.Context, name string) (*domain.Exercise, error) {
	for _, exercise := range r.exercises {
		if exercise.Name == name {
			copied := *exercise
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) Find(_ context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	var result []domain.Exercise
	for _, exercise := range r.exercises {
		if filter.BodyPart != "" && exercise.BodyPart != filter.BodyPart {
			continue
		}
		if filter.Difficulty != "" && exercise.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(exercise.Name), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, *exercise)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.exercises {
		if id != exercise.ID && existing.Name == exercise.Name {
			return repository.ErrDuplicateKey
		}
	}
	copied := *exercise
	r.exercises[exercise.ID] = &copied
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}
