package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func workoutWithSets(sets ...Set) *Workout {
	return &Workout{
		Exercises: []ExerciseLog{{Sets: sets}},
	}
}

func TestComputeIntensity_NoSets(t *testing.T) {
	assert.Equal(t, 0.0, ComputeIntensity(&Workout{}))
	assert.Equal(t, 0.0, ComputeIntensity(workoutWithSets()))
}

func TestComputeIntensity_FullCompletionAtVolumeCap(t *testing.T) {
	// All sets completed, total volume exactly 1000:
	// (1*0.6 + 1*0.4) * 10 = 10.0
	w := workoutWithSets(
		Set{SetNumber: 1, Weight: 50, Reps: 10, Completed: true},
		Set{SetNumber: 2, Weight: 50, Reps: 10, Completed: true},
	)
	assert.Equal(t, 10.0, ComputeIntensity(w))
}

func TestComputeIntensity_HalfCompletionHalfVolume(t *testing.T) {
	// 2 sets, 1 completed, volume 500:
	// completionRate=0.5, weightFactor=0.5 -> (0.3+0.2)*10 = 5.0
	w := workoutWithSets(
		Set{SetNumber: 1, Weight: 25, Reps: 10, Completed: true},
		Set{SetNumber: 2, Weight: 25, Reps: 10},
	)
	assert.Equal(t, 5.0, ComputeIntensity(w))
}

func TestComputeIntensity_VolumeFactorCapped(t *testing.T) {
	// Huge volume saturates the weight factor at 1.
	w := workoutWithSets(
		Set{SetNumber: 1, Weight: 500, Reps: 20, Completed: true},
	)
	assert.Equal(t, 10.0, ComputeIntensity(w))
}

func TestComputeIntensity_RoundedToOneDecimal(t *testing.T) {
	// 3 sets, 1 completed, volume 300:
	// (1/3*0.6 + 0.3*0.4)*10 = 3.2
	w := workoutWithSets(
		Set{SetNumber: 1, Weight: 10, Reps: 10, Completed: true},
		Set{SetNumber: 2, Weight: 10, Reps: 10},
		Set{SetNumber: 3, Weight: 10, Reps: 10},
	)
	assert.Equal(t, 3.2, ComputeIntensity(w))
}

func TestComputeIntensity_SpansMultipleExerciseLogs(t *testing.T) {
	w := &Workout{
		Exercises: []ExerciseLog{
			{Sets: []Set{{SetNumber: 1, Weight: 30, Reps: 10, Completed: true}}},
			{Sets: []Set{{SetNumber: 1, Weight: 20, Reps: 10, Completed: true}}},
		},
	}
	// completionRate=1, volume=500 -> (0.6 + 0.5*0.4)*10 = 8.0
	assert.Equal(t, 8.0, ComputeIntensity(w))
}
