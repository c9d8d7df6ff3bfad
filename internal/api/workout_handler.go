package api

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// WorkoutHandler holds the workout and analytics service dependencies.
type WorkoutHandler struct {
	workoutService   service.WorkoutService
	analyticsService service.AnalyticsService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, analyticsService service.AnalyticsService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService:   workoutService,
		analyticsService: analyticsService,
	}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateWorkoutRequest defines the expected JSON for starting a workout.
type CreateWorkoutRequest struct {
	Username string     `json:"username" binding:"required"`
	Date     *time.Time `json:"date"`
}

// UpdateWorkoutRequest defines the raw field update body. Absent fields
// are left untouched.
type UpdateWorkoutRequest struct {
	Username string     `json:"username" binding:"required"`
	Date     *time.Time `json:"date"`
	Notes    *string    `json:"notes"`
}

// AddExerciseRequest appends an exercise log to a workout.
type AddExerciseRequest struct {
	Username   string `json:"username" binding:"required"`
	ExerciseID string `json:"exerciseId" binding:"required"`
}

// AddSetRequest appends a set to an exercise log. ExerciseIndex is a
// pointer so that 0, a valid index, survives the required binding.
type AddSetRequest struct {
	Username      string   `json:"username" binding:"required"`
	ExerciseIndex *int     `json:"exerciseIndex" binding:"required"`
	Weight        *float64 `json:"weight" binding:"required"`
	Reps          *int     `json:"reps" binding:"required"`
}

// CompleteSetRequest marks one set done.
type CompleteSetRequest struct {
	Username      string `json:"username" binding:"required"`
	ExerciseIndex *int   `json:"exerciseIndex" binding:"required"`
	SetIndex      *int   `json:"setIndex" binding:"required"`
}

// SetResponse mirrors domain.Set on the wire.
type SetResponse struct {
	SetNumber   int        `json:"setNumber"`
	Weight      float64    `json:"weight"`
	Reps        int        `json:"reps"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ExerciseLogResponse is one exercise log with its sets.
type ExerciseLogResponse struct {
	ExerciseID string        `json:"exerciseId"`
	Sets       []SetResponse `json:"sets"`
	Notes      string        `json:"notes,omitempty"`
}

// WorkoutResponse is the DTO for returning a workout record.
type WorkoutResponse struct {
	ID        string                `json:"id"`
	Username  string                `json:"username"`
	Date      time.Time             `json:"date"`
	StartTime time.Time             `json:"startTime"`
	EndTime   *time.Time            `json:"endTime,omitempty"`
	Duration  *int                  `json:"duration,omitempty"`
	Exercises []ExerciseLogResponse `json:"exercises"`
	Intensity *float64              `json:"intensity,omitempty"`
	Status    domain.WorkoutStatus  `json:"status"`
	Notes     string                `json:"notes,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	exercises := make([]ExerciseLogResponse, len(w.Exercises))
	for i, exLog := range w.Exercises {
		sets := make([]SetResponse, len(exLog.Sets))
		for j, set := range exLog.Sets {
			sets[j] = SetResponse{
				SetNumber:   set.SetNumber,
				Weight:      set.Weight,
				Reps:        set.Reps,
				Completed:   set.Completed,
				CompletedAt: set.CompletedAt,
			}
		}
		exercises[i] = ExerciseLogResponse{
			ExerciseID: exLog.ExerciseID.Hex(),
			Sets:       sets,
			Notes:      exLog.Notes,
		}
	}
	return WorkoutResponse{
		ID:        w.ID.Hex(),
		Username:  w.Username,
		Date:      w.Date,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Duration:  w.Duration,
		Exercises: exercises,
		Intensity: w.Intensity,
		Status:    w.Status,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to DTOs.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkout handles POST /workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), req.Username, date)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondCreated(c, MapWorkoutToResponse(workout))
}

// ListWorkouts handles GET /workouts with limit/offset paging.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	username := getUsernameFromContext(c)

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 0 {
		abortWithError(c, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		abortWithError(c, http.StatusBadRequest, "invalid offset")
		return
	}

	workouts, total, err := h.workoutService.ListWorkouts(c.Request.Context(), username, limit, offset)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondList(c, MapWorkoutsToResponse(workouts), total)
}

// RecentWorkouts handles GET /workouts/recent?days=N.
func (h *WorkoutHandler) RecentWorkouts(c *gin.Context) {
	username := getUsernameFromContext(c)

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		abortWithError(c, http.StatusBadRequest, "invalid days")
		return
	}

	workouts, err := h.analyticsService.RecentWorkouts(c.Request.Context(), username, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondList(c, MapWorkoutsToResponse(workouts), int64(len(workouts)))
}

// RecentBrief handles GET /workouts/recent-7-days-brief.
func (h *WorkoutHandler) RecentBrief(c *gin.Context) {
	username := getUsernameFromContext(c)

	briefs, err := h.analyticsService.RecentBrief(c.Request.Context(), username)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondList(c, briefs, int64(len(briefs)))
}

// Overview handles GET /workouts/overview?days=N.
func (h *WorkoutHandler) Overview(c *gin.Context) {
	username := getUsernameFromContext(c)

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		abortWithError(c, http.StatusBadRequest, "invalid days")
		return
	}

	overview, err := h.analyticsService.Overview(c.Request.Context(), username, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, overview)
}

// ExerciseHistory handles GET /workouts/exercise-history/:exerciseId?days=N.
func (h *WorkoutHandler) ExerciseHistory(c *gin.Context) {
	username := getUsernameFromContext(c)

	exerciseID, err := parseObjectID(c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid exercise id")
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "90"))
	if err != nil || days < 1 {
		abortWithError(c, http.StatusBadRequest, "invalid days")
		return
	}

	history, err := h.analyticsService.ExerciseHistory(c.Request.Context(), username, exerciseID, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, history)
}

// GetWorkout handles GET /workouts/:id. The ownership middleware already
// resolved and verified the record.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}
	respondOK(c, MapWorkoutToResponse(workout))
}

// GetWorkoutByDate handles GET /workouts/date/:date (YYYY-MM-DD).
func (h *WorkoutHandler) GetWorkoutByDate(c *gin.Context) {
	username := getUsernameFromContext(c)

	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	workout, err := h.workoutService.GetWorkoutByDate(c.Request.Context(), username, day)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapWorkoutToResponse(workout))
}

// UpdateWorkout handles PUT /workouts/:id.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	updated, err := h.workoutService.UpdateWorkout(c.Request.Context(), workout, service.WorkoutUpdate{
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapWorkoutToResponse(updated))
}

// DeleteWorkout handles DELETE /workouts/:id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), workout); err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondMessage(c, "workout deleted")
}

// AddExercise handles POST /workouts/:id/exercises.
func (h *WorkoutHandler) AddExercise(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}
	exerciseID, err := parseObjectID(req.ExerciseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	updated, err := h.workoutService.AddExercise(c.Request.Context(), workout, exerciseID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapWorkoutToResponse(updated))
}

// AddSet handles POST /workouts/:id/sets.
func (h *WorkoutHandler) AddSet(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}

	var req AddSetRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	updated, err := h.workoutService.AddSet(c.Request.Context(), workout, *req.ExerciseIndex, *req.Weight, *req.Reps)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapWorkoutToResponse(updated))
}

// CompleteSet handles POST /workouts/:id/complete-set.
func (h *WorkoutHandler) CompleteSet(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}

	var req CompleteSetRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	updated, err := h.workoutService.CompleteSet(c.Request.Context(), workout, *req.ExerciseIndex, *req.SetIndex)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapWorkoutToResponse(updated))
}

// RemoveSet handles DELETE /workouts/:id/sets?exerciseIndex&setIndex.
func (h *WorkoutHandler) RemoveSet(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}

	exerciseIndex, err := strconv.Atoi(c.Query("exerciseIndex"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "exerciseIndex is required")
		return
	}
	setIndex, err := strconv.Atoi(c.Query("setIndex"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "setIndex is required")
		return
	}

	updated, err := h.workoutService.RemoveSet(c.Request.Context(), workout, exerciseIndex, setIndex)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapWorkoutToResponse(updated))
}

// CompleteWorkout handles POST /workouts/:id/complete.
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	workout, ok := getWorkoutFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "workout not resolved")
		return
	}

	updated, err := h.workoutService.CompleteWorkout(c.Request.Context(), workout)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapWorkoutToResponse(updated))
}
