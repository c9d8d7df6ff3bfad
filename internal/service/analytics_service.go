package service

import (
	"context"
	"errors"
	"math"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Number of sessions compared on each side of the volume trend.
const trendWindowSize = 3

// OverviewSummary aggregates a user's training activity over the window.
type OverviewSummary struct {
	TotalWorkouts    int     `json:"totalWorkouts"`
	TrainingDays     int     `json:"trainingDays"`
	FrequencyPerWeek float64 `json:"frequencyPerWeek"`
	AvgIntensity     float64 `json:"avgIntensity"`
	TotalDuration    int     `json:"totalDuration"`
	AvgDuration      float64 `json:"avgDuration"`
}

// DailyPoint is one entry of the overview daily series. Dates with no
// activity are present with zero workouts.
type DailyPoint struct {
	Date         string  `json:"date"`
	Workouts     int     `json:"workouts"`
	AvgIntensity float64 `json:"avgIntensity"`
}

// IntensityBuckets counts workouts by intensity band: high >= 7,
// medium >= 4, low below that.
type IntensityBuckets struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Overview is the recent-N-days training dashboard payload.
type Overview struct {
	Summary          OverviewSummary         `json:"summary"`
	DailySeries      []DailyPoint            `json:"dailySeries"`
	BodyPartCounts   map[domain.BodyPart]int `json:"bodyPartCounts"`
	IntensityBuckets IntensityBuckets        `json:"intensityBuckets"`
}

// HistoryTotals sums one session's work on a single exercise.
type HistoryTotals struct {
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Volume float64 `json:"volume"`
}

// HistoryBests holds one session's best set figures for a single exercise.
type HistoryBests struct {
	Weight    float64 `json:"weight"`
	SetVolume float64 `json:"setVolume"`
}

// HistoryEntry is one session's record of a single exercise. When a
// workout logs the same exercise more than once, the sets are merged into
// one entry.
type HistoryEntry struct {
	WorkoutID string        `json:"workoutId"`
	Date      time.Time     `json:"date"`
	Sets      []domain.Set  `json:"sets"`
	Totals    HistoryTotals `json:"totals"`
	Bests     HistoryBests  `json:"bests"`
}

// HistorySummary aggregates all matched sessions of an exercise.
// VolumeChangeRate compares the average volume of the most recent three
// sessions against the three before those; with fewer than six sessions
// it falls back to 0.
type HistorySummary struct {
	TotalWorkouts       int     `json:"totalWorkouts"`
	TotalSets           int     `json:"totalSets"`
	TotalReps           int     `json:"totalReps"`
	TotalVolume         float64 `json:"totalVolume"`
	BestWeight          float64 `json:"bestWeight"`
	BestSetVolume       float64 `json:"bestSetVolume"`
	AvgVolumePerWorkout float64 `json:"avgVolumePerWorkout"`
	AvgRepsPerSet       float64 `json:"avgRepsPerSet"`
	VolumeChangeRate    float64 `json:"volumeChangeRate"`
}

// ExerciseHistory is the per-exercise trend payload. History entries are
// ordered most-recent-first; chart consumers reverse them into
// chronological order.
type ExerciseHistory struct {
	History []HistoryEntry `json:"history"`
	Summary HistorySummary `json:"summary"`
}

// WorkoutBrief is the compact per-record line of the recent-7-days view:
// the session date, the distinct body parts trained and the intensity.
type WorkoutBrief struct {
	WorkoutID string            `json:"workoutId"`
	Date      time.Time         `json:"date"`
	BodyParts []domain.BodyPart `json:"bodyParts"`
	Intensity *float64          `json:"intensity,omitempty"`
}

// AnalyticsService computes cross-record statistics. All pipelines are
// read-only over the user's workout records and the exercise catalog.
type AnalyticsService interface {
	Overview(ctx context.Context, username string, days int) (*Overview, error)
	ExerciseHistory(ctx context.Context, username string, exerciseID primitive.ObjectID, days int) (*ExerciseHistory, error)
	RecentWorkouts(ctx context.Context, username string, days int) ([]domain.Workout, error)
	RecentBrief(ctx context.Context, username string) ([]WorkoutBrief, error)
}

// analyticsService implements the AnalyticsService interface.
type analyticsService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

// NewAnalyticsService creates a new instance of analyticsService.
func NewAnalyticsService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository) AnalyticsService {
	return &analyticsService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// windowStart returns the first instant of the window covering `days`
// calendar days ending today, so days=7 spans today and the six days
// before it.
func (s *analyticsService) windowStart(days int) time.Time {
	today := startOfDay(s.now())
	return today.AddDate(0, 0, -(days - 1))
}

// Overview builds the recent-N-days dashboard: totals, frequency, the
// daily series (one point per date in the window, zero-activity dates
// included), body-part set counts and intensity buckets.
func (s *analyticsService) Overview(ctx context.Context, username string, days int) (*Overview, error) {
	if days < 1 {
		return nil, ErrValidationFailed
	}

	since := s.windowStart(days)
	workouts, err := s.workoutRepo.GetByUsernameSince(ctx, username, since)
	if err != nil {
		return nil, err
	}

	bodyParts, err := s.bodyPartIndex(ctx, workouts)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		DailySeries:    make([]DailyPoint, 0, days),
		BodyPartCounts: make(map[domain.BodyPart]int),
	}

	type dayStats struct {
		workouts       int
		intensitySum   float64
		intensityCount int
	}
	perDay := make(map[string]*dayStats)
	trainingDays := make(map[string]struct{})

	var intensitySum float64
	var intensityCount int

	for i := range workouts {
		w := &workouts[i]
		overview.Summary.TotalWorkouts++
		dayKey := startOfDay(w.Date).Format("2006-01-02")
		trainingDays[dayKey] = struct{}{}

		stats := perDay[dayKey]
		if stats == nil {
			stats = &dayStats{}
			perDay[dayKey] = stats
		}
		stats.workouts++

		if w.Intensity != nil {
			intensitySum += *w.Intensity
			intensityCount++
			stats.intensitySum += *w.Intensity
			stats.intensityCount++

			switch {
			case *w.Intensity >= 7:
				overview.IntensityBuckets.High++
			case *w.Intensity >= 4:
				overview.IntensityBuckets.Medium++
			default:
				overview.IntensityBuckets.Low++
			}
		}
		if w.Duration != nil {
			overview.Summary.TotalDuration += *w.Duration
		}

		for _, exLog := range w.Exercises {
			bp, ok := bodyParts[exLog.ExerciseID]
			if !ok {
				// Dangling catalog reference; nothing to attribute.
				continue
			}
			overview.BodyPartCounts[bp] += len(exLog.Sets)
		}
	}

	overview.Summary.TrainingDays = len(trainingDays)
	overview.Summary.FrequencyPerWeek = round1(float64(overview.Summary.TotalWorkouts) / float64(days) * 7)
	if intensityCount > 0 {
		overview.Summary.AvgIntensity = round1(intensitySum / float64(intensityCount))
	}
	if overview.Summary.TotalWorkouts > 0 {
		overview.Summary.AvgDuration = round1(float64(overview.Summary.TotalDuration) / float64(overview.Summary.TotalWorkouts))
	}

	for d := 0; d < days; d++ {
		dayKey := since.AddDate(0, 0, d).Format("2006-01-02")
		point := DailyPoint{Date: dayKey}
		if stats := perDay[dayKey]; stats != nil {
			point.Workouts = stats.workouts
			if stats.intensityCount > 0 {
				point.AvgIntensity = round1(stats.intensitySum / float64(stats.intensityCount))
			}
		}
		overview.DailySeries = append(overview.DailySeries, point)
	}

	return overview, nil
}

// ExerciseHistory builds the per-exercise trend: one entry per session
// containing the exercise, most recent first, plus the aggregated summary.
func (s *analyticsService) ExerciseHistory(ctx context.Context, username string, exerciseID primitive.ObjectID, days int) (*ExerciseHistory, error) {
	if days < 1 {
		return nil, ErrValidationFailed
	}

	since := s.windowStart(days)
	workouts, err := s.workoutRepo.GetByUsernameSince(ctx, username, since)
	if err != nil {
		return nil, err
	}

	result := &ExerciseHistory{History: []HistoryEntry{}}

	// Records come newest-first from the repository; the history keeps
	// that order.
	for i := range workouts {
		w := &workouts[i]
		var sets []domain.Set
		for _, exLog := range w.Exercises {
			if exLog.ExerciseID == exerciseID {
				sets = append(sets, exLog.Sets...)
			}
		}
		if sets == nil {
			continue
		}

		entry := HistoryEntry{
			WorkoutID: w.ID.Hex(),
			Date:      w.Date,
			Sets:      sets,
		}
		for _, set := range sets {
			entry.Totals.Sets++
			entry.Totals.Reps += set.Reps
			entry.Totals.Volume += set.Volume()
			if set.Weight > entry.Bests.Weight {
				entry.Bests.Weight = set.Weight
			}
			if set.Volume() > entry.Bests.SetVolume {
				entry.Bests.SetVolume = set.Volume()
			}
		}
		result.History = append(result.History, entry)
	}

	summary := &result.Summary
	for _, entry := range result.History {
		summary.TotalWorkouts++
		summary.TotalSets += entry.Totals.Sets
		summary.TotalReps += entry.Totals.Reps
		summary.TotalVolume += entry.Totals.Volume
		if entry.Bests.Weight > summary.BestWeight {
			summary.BestWeight = entry.Bests.Weight
		}
		if entry.Bests.SetVolume > summary.BestSetVolume {
			summary.BestSetVolume = entry.Bests.SetVolume
		}
	}
	if summary.TotalWorkouts > 0 {
		summary.AvgVolumePerWorkout = round1(summary.TotalVolume / float64(summary.TotalWorkouts))
	}
	if summary.TotalSets > 0 {
		summary.AvgRepsPerSet = round1(float64(summary.TotalReps) / float64(summary.TotalSets))
	}
	summary.VolumeChangeRate = volumeChangeRate(result.History)

	return result, nil
}

// RecentWorkouts lists records since N days ago, newest-first.
func (s *analyticsService) RecentWorkouts(ctx context.Context, username string, days int) ([]domain.Workout, error) {
	if days < 1 {
		return nil, ErrValidationFailed
	}
	return s.workoutRepo.GetByUsernameSince(ctx, username, s.windowStart(days))
}

// RecentBrief summarizes the last 7 days as one line per record.
func (s *analyticsService) RecentBrief(ctx context.Context, username string) ([]WorkoutBrief, error) {
	workouts, err := s.workoutRepo.GetByUsernameSince(ctx, username, s.windowStart(7))
	if err != nil {
		return nil, err
	}

	bodyParts, err := s.bodyPartIndex(ctx, workouts)
	if err != nil {
		return nil, err
	}

	briefs := make([]WorkoutBrief, 0, len(workouts))
	for i := range workouts {
		w := &workouts[i]
		brief := WorkoutBrief{
			WorkoutID: w.ID.Hex(),
			Date:      w.Date,
			BodyParts: []domain.BodyPart{},
			Intensity: w.Intensity,
		}
		seen := make(map[domain.BodyPart]struct{})
		for _, exLog := range w.Exercises {
			bp, ok := bodyParts[exLog.ExerciseID]
			if !ok {
				continue
			}
			if _, dup := seen[bp]; dup {
				continue
			}
			seen[bp] = struct{}{}
			brief.BodyParts = append(brief.BodyParts, bp)
		}
		briefs = append(briefs, brief)
	}
	return briefs, nil
}

// bodyPartIndex resolves the distinct exercise ids referenced by the given
// workouts to their body parts. Ids that no longer resolve in the catalog
// are simply absent from the returned map.
func (s *analyticsService) bodyPartIndex(ctx context.Context, workouts []domain.Workout) (map[primitive.ObjectID]domain.BodyPart, error) {
	index := make(map[primitive.ObjectID]domain.BodyPart)
	for i := range workouts {
		for _, exLog := range workouts[i].Exercises {
			if _, done := index[exLog.ExerciseID]; done {
				continue
			}
			exercise, err := s.exerciseRepo.GetByID(ctx, exLog.ExerciseID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return nil, err
			}
			index[exLog.ExerciseID] = exercise.BodyPart
		}
	}
	return index, nil
}

// volumeChangeRate compares the average session volume of the most recent
// trendWindowSize entries against the trendWindowSize entries before
// those. Entries must be ordered most-recent-first. Fewer than six
// sessions, or a zero baseline, yield 0.
func volumeChangeRate(history []HistoryEntry) float64 {
	if len(history) < 2*trendWindowSize {
		return 0
	}

	var recent, previous float64
	for i := 0; i < trendWindowSize; i++ {
		recent += history[i].Totals.Volume
		previous += history[trendWindowSize+i].Totals.Volume
	}
	recent /= trendWindowSize
	previous /= trendWindowSize

	if previous == 0 {
		return 0
	}
	return round1((recent - previous) / previous * 100)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
