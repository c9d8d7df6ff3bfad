package domain

import (
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus tracks the workout lifecycle. The transition is one-way:
// in-progress -> completed.
type WorkoutStatus string

const (
	WorkoutStatusInProgress WorkoutStatus = "in-progress"
	WorkoutStatusCompleted  WorkoutStatus = "completed"
)

// Mutation errors returned by the workout state machine.
var (
	ErrExerciseIndexOutOfRange = errors.New("exercise index out of range")
	ErrSetIndexOutOfRange      = errors.New("set index out of range")
	ErrInvalidWeight           = errors.New("weight must be >= 0")
	ErrInvalidReps             = errors.New("reps must be >= 1")
)

// Set is one recorded unit of weight x reps within an exercise log.
// SetNumber is 1-based and kept contiguous: removing a set renumbers the
// remaining sets of its log.
type Set struct {
	SetNumber   int        `bson:"setNumber" json:"setNumber"`
	Weight      float64    `bson:"weight" json:"weight"`
	Reps        int        `bson:"reps" json:"reps"`
	Completed   bool       `bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// Volume is the workload proxy weight x reps.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// ExerciseLog is a workout's reference to one catalog exercise plus the
// sets performed. The reference is non-owning and may dangle if the
// exercise is later removed from the catalog.
type ExerciseLog struct {
	ExerciseID primitive.ObjectID `bson:"exercise" json:"exerciseId"`
	Sets       []Set              `bson:"sets" json:"sets"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Workout is the aggregate root: one training session for a user on a date.
// All queries and mutations are scoped by Username.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Date      time.Time          `bson:"date" json:"date"`
	StartTime time.Time          `bson:"startTime" json:"startTime"`
	EndTime   *time.Time         `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Duration  *int               `bson:"duration,omitempty" json:"duration,omitempty"`
	Exercises []ExerciseLog      `bson:"exercises" json:"exercises"`
	Intensity *float64           `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Status    WorkoutStatus      `bson:"status" json:"status"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewWorkout creates an in-progress workout for username. The session date
// defaults to now when date is zero.
func NewWorkout(username string, date, now time.Time) *Workout {
	if date.IsZero() {
		date = now
	}
	return &Workout{
		Username:  username,
		Date:      date,
		StartTime: now,
		Exercises: []ExerciseLog{},
		Status:    WorkoutStatusInProgress,
	}
}

// IsCompleted reports whether the workout reached its terminal status.
func (w *Workout) IsCompleted() bool {
	return w.Status == WorkoutStatusCompleted
}

// AddExercise appends an empty log referencing exerciseID. The catalog is
// deliberately not consulted here; dangling references are accepted.
func (w *Workout) AddExercise(exerciseID primitive.ObjectID) {
	w.Exercises = append(w.Exercises, ExerciseLog{
		ExerciseID: exerciseID,
		Sets:       []Set{},
	})
}

// AddSet appends a set to the exercise log at exerciseIndex. The new set
// gets the next contiguous set number and starts uncompleted.
func (w *Workout) AddSet(exerciseIndex int, weight float64, reps int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return ErrExerciseIndexOutOfRange
	}
	if weight < 0 {
		return ErrInvalidWeight
	}
	if reps < 1 {
		return ErrInvalidReps
	}
	log := &w.Exercises[exerciseIndex]
	log.Sets = append(log.Sets, Set{
		SetNumber: len(log.Sets) + 1,
		Weight:    weight,
		Reps:      reps,
	})
	return nil
}

// CompleteSet marks the addressed set completed at now. Re-completing an
// already completed set just refreshes the timestamp.
func (w *Workout) CompleteSet(exerciseIndex, setIndex int, now time.Time) error {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return ErrExerciseIndexOutOfRange
	}
	log := &w.Exercises[exerciseIndex]
	if setIndex < 0 || setIndex >= len(log.Sets) {
		return ErrSetIndexOutOfRange
	}
	log.Sets[setIndex].Completed = true
	log.Sets[setIndex].CompletedAt = &now
	return nil
}

// RemoveSet removes the addressed set and renumbers the remaining sets of
// that log so SetNumber is contiguous 1..N in their original relative
// order. Set identity for clients is positional, so the renumbering is
// part of the contract.
func (w *Workout) RemoveSet(exerciseIndex, setIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return ErrExerciseIndexOutOfRange
	}
	log := &w.Exercises[exerciseIndex]
	if setIndex < 0 || setIndex >= len(log.Sets) {
		return ErrSetIndexOutOfRange
	}
	log.Sets = append(log.Sets[:setIndex], log.Sets[setIndex+1:]...)
	for i := range log.Sets {
		log.Sets[i].SetNumber = i + 1
	}
	return nil
}

// Complete closes the workout at now: sets EndTime, the duration in whole
// minutes rounded from StartTime, the computed intensity and the terminal
// status. Calling it again recomputes duration and intensity from the
// original StartTime to the new EndTime, overwriting the prior completion.
func (w *Workout) Complete(now time.Time) {
	duration := int(math.Round(now.Sub(w.StartTime).Minutes()))
	intensity := ComputeIntensity(w)
	w.EndTime = &now
	w.Duration = &duration
	w.Intensity = &intensity
	w.Status = WorkoutStatusCompleted
}
