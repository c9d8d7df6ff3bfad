package domain

import "math"

// Intensity scoring constants. The score weighs how much of the planned
// work was completed against the total volume lifted, normalized so that
// 1000 volume units saturate the weight factor.
const (
	intensityCompletionWeight = 0.6
	intensityVolumeWeight     = 0.4
	intensityVolumeCap        = 1000.0
	intensityMax              = 10.0
)

// ComputeIntensity derives the 0-10 intensity score of a workout from its
// sets:
//
//	completionRate = completedSets / totalSets   (0 when there are no sets)
//	weightFactor   = min(totalVolume / 1000, 1)
//	intensity      = (completionRate*0.6 + weightFactor*0.4) * 10
//
// rounded to one decimal place and clamped to 10.
func ComputeIntensity(w *Workout) float64 {
	var totalSets, completedSets int
	var totalVolume float64
	for _, log := range w.Exercises {
		for _, set := range log.Sets {
			totalSets++
			if set.Completed {
				completedSets++
			}
			totalVolume += set.Volume()
		}
	}

	completionRate := 0.0
	if totalSets > 0 {
		completionRate = float64(completedSets) / float64(totalSets)
	}
	weightFactor := math.Min(totalVolume/intensityVolumeCap, 1)

	intensity := (completionRate*intensityCompletionWeight + weightFactor*intensityVolumeWeight) * 10
	intensity = math.Round(intensity*10) / 10
	if intensity > intensityMax {
		intensity = intensityMax
	}
	return intensity
}
