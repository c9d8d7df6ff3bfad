package service

import (
	"context"
	"errors"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseNameTaken    = errors.New("exercise name already exists")
	ErrInvalidBodyPart      = errors.New("invalid body part")
	ErrInvalidDifficulty    = errors.New("invalid difficulty")
	ErrExerciseNameRequired = errors.New("exercise name is required")
)

// ExerciseInput carries the writable fields of a catalog entry.
type ExerciseInput struct {
	Name            string
	BodyPart        domain.BodyPart
	Difficulty      domain.Difficulty
	Description     string
	RecommendedSets int
	RecommendedReps int
}

// ExerciseService manages the exercise library.
type ExerciseService interface {
	CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	FindExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, id primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id primitive.ObjectID) error
	SeedDefaults(ctx context.Context) (int, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

func validateInput(input *ExerciseInput) error {
	if input.Name == "" {
		return ErrExerciseNameRequired
	}
	if !input.BodyPart.IsValid() {
		return ErrInvalidBodyPart
	}
	if !input.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}
	if input.RecommendedSets <= 0 {
		input.RecommendedSets = domain.DefaultRecommendedSets
	}
	if input.RecommendedReps <= 0 {
		input.RecommendedReps = domain.DefaultRecommendedReps
	}
	return nil
}

// CreateExercise adds a user-created entry to the library. The name must
// be unique across the whole catalog.
func (s *exerciseService) CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		Name:            input.Name,
		BodyPart:        input.BodyPart,
		Difficulty:      input.Difficulty,
		Description:     input.Description,
		RecommendedSets: input.RecommendedSets,
		RecommendedReps: input.RecommendedReps,
		IsDefault:       false,
	}

	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrExerciseNameTaken
		}
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, id)
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// FindExercises lists catalog entries matching the filter.
func (s *exerciseService) FindExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	return s.exerciseRepo.Find(ctx, filter)
}

// UpdateExercise modifies an existing entry.
func (s *exerciseService) UpdateExercise(ctx context.Context, id primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	existing, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.BodyPart = input.BodyPart
	existing.Difficulty = input.Difficulty
	existing.Description = input.Description
	existing.RecommendedSets = input.RecommendedSets
	existing.RecommendedReps = input.RecommendedReps

	if err := s.exerciseRepo.Update(ctx, existing); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrExerciseNotFound
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrExerciseNameTaken
		default:
			return nil, err
		}
	}
	return existing, nil
}

// DeleteExercise removes an entry from the library. Workout logs keep
// their references; analytics treats them as dangling and skips them.
func (s *exerciseService) DeleteExercise(ctx context.Context, id primitive.ObjectID) error {
	err := s.exerciseRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}

// SeedDefaults inserts the builtin catalog entries whose names are not
// already present. Safe to call repeatedly; returns how many entries were
// inserted this time.
func (s *exerciseService) SeedDefaults(ctx context.Context) (int, error) {
	var missing []domain.Exercise
	for _, exercise := range domain.DefaultExercises() {
		_, err := s.exerciseRepo.GetByName(ctx, exercise.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return 0, err
		}
		missing = append(missing, exercise)
	}
	if len(missing) == 0 {
		return 0, nil
	}
	return s.exerciseRepo.CreateMany(ctx, missing)
}
