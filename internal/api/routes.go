package api

import (
	"net/http"

	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the full HTTP surface under /api/v1. Every route
// behind UsernameMiddleware requires the caller-supplied username (query
// on GET/DELETE, body otherwise); /workouts/:id routes additionally pass
// through the consolidated ownership check.
func SetupRoutes(
	router *gin.Engine,
	workoutService service.WorkoutService,
	analyticsService service.AnalyticsService,
	exerciseService service.ExerciseService,
) {
	workoutHandler := NewWorkoutHandler(workoutService, analyticsService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	workouts := apiV1.Group("/workouts")
	workouts.Use(UsernameMiddleware())
	{
		workouts.POST("", workoutHandler.CreateWorkout)
		workouts.GET("", workoutHandler.ListWorkouts)
		workouts.GET("/recent", workoutHandler.RecentWorkouts)
		workouts.GET("/recent-7-days-brief", workoutHandler.RecentBrief)
		workouts.GET("/overview", workoutHandler.Overview)
		workouts.GET("/exercise-history/:exerciseId", workoutHandler.ExerciseHistory)
		workouts.GET("/date/:date", workoutHandler.GetWorkoutByDate)

		// Single-record routes: the record is resolved and its ownership
		// verified once, before the handler runs.
		owned := workouts.Group("/:id")
		owned.Use(WorkoutOwnership(workoutService))
		{
			owned.GET("", workoutHandler.GetWorkout)
			owned.PUT("", workoutHandler.UpdateWorkout)
			owned.DELETE("", workoutHandler.DeleteWorkout)
			owned.POST("/exercises", workoutHandler.AddExercise)
			owned.POST("/sets", workoutHandler.AddSet)
			owned.DELETE("/sets", workoutHandler.RemoveSet)
			owned.POST("/complete-set", workoutHandler.CompleteSet)
			owned.POST("/complete", workoutHandler.CompleteWorkout)
		}
	}

	exercises := apiV1.Group("/exercises")
	{
		exercises.GET("", exerciseHandler.ListExercises)
		exercises.GET("/:id", exerciseHandler.GetExercise)
		exercises.POST("", UsernameMiddleware(), exerciseHandler.CreateExercise)
		exercises.PUT("/:id", UsernameMiddleware(), exerciseHandler.UpdateExercise)
		exercises.DELETE("/:id", UsernameMiddleware(), exerciseHandler.DeleteExercise)
		exercises.POST("/initialize", exerciseHandler.InitializeExercises)
	}
}
