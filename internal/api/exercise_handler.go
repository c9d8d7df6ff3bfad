package api

import (
	"fmt"
	"net/http"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"
	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseRequest defines the expected JSON for creating or updating a
// catalog entry.
type ExerciseRequest struct {
	Username        string `json:"username" binding:"required"`
	Name            string `json:"name" binding:"required"`
	BodyPart        string `json:"bodyPart" binding:"required"`
	Difficulty      string `json:"difficulty" binding:"required"`
	Description     string `json:"description"`
	RecommendedSets int    `json:"recommendedSets" binding:"omitempty,min=1"`
	RecommendedReps int    `json:"recommendedReps" binding:"omitempty,min=1"`
}

// ExerciseResponse is the DTO for returning a catalog entry.
type ExerciseResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BodyPart        string    `json:"bodyPart"`
	Difficulty      string    `json:"difficulty"`
	Description     string    `json:"description,omitempty"`
	RecommendedSets int       `json:"recommendedSets"`
	RecommendedReps int       `json:"recommendedReps"`
	IsDefault       bool      `json:"isDefault"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:              ex.ID.Hex(),
		Name:            ex.Name,
		BodyPart:        string(ex.BodyPart),
		Difficulty:      string(ex.Difficulty),
		Description:     ex.Description,
		RecommendedSets: ex.RecommendedSets,
		RecommendedReps: ex.RecommendedReps,
		IsDefault:       ex.IsDefault,
		CreatedAt:       ex.CreatedAt,
		UpdatedAt:       ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

func (r ExerciseRequest) toInput() service.ExerciseInput {
	return service.ExerciseInput{
		Name:            r.Name,
		BodyPart:        domain.BodyPart(r.BodyPart),
		Difficulty:      domain.Difficulty(r.Difficulty),
		Description:     r.Description,
		RecommendedSets: r.RecommendedSets,
		RecommendedReps: r.RecommendedReps,
	}
}

// --- Handler Methods ---

// CreateExercise handles POST /exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), req.toInput())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondCreated(c, MapExerciseToResponse(exercise))
}

// ListExercises handles GET /exercises with optional bodyPart, difficulty
// and search filters.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	filter := repository.ExerciseFilter{
		BodyPart:   domain.BodyPart(c.Query("bodyPart")),
		Difficulty: domain.Difficulty(c.Query("difficulty")),
		Search:     c.Query("search"),
	}
	if filter.BodyPart != "" && !filter.BodyPart.IsValid() {
		abortWithError(c, http.StatusBadRequest, "invalid body part")
		return
	}
	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		abortWithError(c, http.StatusBadRequest, "invalid difficulty")
		return
	}

	exercises, err := h.exerciseService.FindExercises(c.Request.Context(), filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondList(c, MapExercisesToResponse(exercises), int64(len(exercises)))
}

// GetExercise handles GET /exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapExerciseToResponse(exercise))
}

// UpdateExercise handles PUT /exercises/:id.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), id, req.toInput())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondOK(c, MapExerciseToResponse(exercise))
}

// DeleteExercise handles DELETE /exercises/:id.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondMessage(c, "exercise deleted")
}

// InitializeExercises handles POST /exercises/initialize: seeds the
// builtin catalog, skipping names already present.
func (h *ExerciseHandler) InitializeExercises(c *gin.Context) {
	inserted, err := h.exerciseService.SeedDefaults(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("seeded %d default exercises", inserted))
}
