package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Constants for context keys
const (
	ContextUsernameKey  = "username"
	ContextWorkoutKey   = "workout"
	ContextRequestIDKey = "requestID"
)

// usernameBody is the minimal body shape peeked at by UsernameMiddleware.
// ShouldBindBodyWith buffers the body so handlers can bind their full DTO
// afterwards.
type usernameBody struct {
	Username string `json:"username"`
}

// UsernameMiddleware extracts the caller-supplied username: from the query
// string on GET/DELETE, from the JSON body otherwise. A missing username
// is rejected before any handler runs — it is the scoping key for every
// operation.
func UsernameMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var username string
		switch c.Request.Method {
		case http.MethodGet, http.MethodDelete:
			username = c.Query("username")
		default:
			var body usernameBody
			if err := c.ShouldBindBodyWith(&body, binding.JSON); err == nil {
				username = body.Username
			}
		}

		if username == "" {
			abortWithError(c, http.StatusBadRequest, "username is required")
			return
		}

		c.Set(ContextUsernameKey, username)
		c.Next()
	}
}

// WorkoutOwnership resolves the :id workout once and verifies the caller
// owns it. This is the single authorization check of the system; handlers
// behind it receive an ownership-verified record from the context and
// never repeat the check. Must run AFTER UsernameMiddleware.
func WorkoutOwnership(workoutService service.WorkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := getUsernameFromContext(c)

		id, err := parseObjectID(c.Param("id"))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid workout id")
			return
		}

		workout, err := workoutService.GetWorkoutByID(c.Request.Context(), username, id)
		if err != nil {
			if errors.Is(err, service.ErrWorkoutForbidden) {
				abortWithError(c, http.StatusForbidden, err.Error())
			} else if errors.Is(err, service.ErrWorkoutNotFound) {
				abortWithError(c, http.StatusNotFound, err.Error())
			} else {
				log.WithError(err).Error("failed to resolve workout for ownership check")
				abortWithError(c, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		c.Set(ContextWorkoutKey, workout)
		c.Next()
	}
}

// RequestLogger tags every request with an id and logs method, path,
// status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"requestID": requestID,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
		}).Info("request handled")
	}
}

func parseObjectID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}

// Helper to get the verified username from context (used by handlers).
func getUsernameFromContext(c *gin.Context) string {
	return c.GetString(ContextUsernameKey)
}

// Helper to get the ownership-verified workout from context. Only valid
// behind WorkoutOwnership.
func getWorkoutFromContext(c *gin.Context) (*domain.Workout, bool) {
	raw, exists := c.Get(ContextWorkoutKey)
	if !exists {
		return nil, false
	}
	workout, ok := raw.(*domain.Workout)
	return workout, ok
}
