package api

import (
	"errors"
	"net/http"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int64      `json:"count,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func respondList(c *gin.Context, data interface{}, count int64) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

// abortWithError writes the error envelope and stops the handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{Success: false, Message: message})
}

// abortWithServiceError maps service and domain errors to HTTP statuses.
// Index errors map to 400, not 404: the record exists, the index does not.
// Anything unrecognized is a 500 with a generic message; the detail goes
// to the server log only.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkoutForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrExerciseNameRequired),
		errors.Is(err, service.ErrExerciseNameTaken),
		errors.Is(err, service.ErrInvalidBodyPart),
		errors.Is(err, service.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrExerciseIndexOutOfRange),
		errors.Is(err, domain.ErrSetIndexOutOfRange),
		errors.Is(err, domain.ErrInvalidWeight),
		errors.Is(err, domain.ErrInvalidReps):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("unhandled service error")
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
