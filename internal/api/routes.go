package api

import (
	"net/http"

	"sanam/my-workouts/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	sessionService service.SessionService,
	profileService service.ProfileService,
) {
	authHandler := NewAuthHandler(authService)
	sessionHandler := NewSessionHandler(sessionService)
	profileHandler := NewProfileHandler(profileService)
	exerciseHandler := NewExerciseHandler()

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", profileHandler.Me)
		protected.POST("/me/avatar/upload-url", profileHandler.AvatarUploadURL)
		protected.GET("/me/avatar", profileHandler.Avatar)

		// Exercise catalog backing the workout form.
		protected.GET("/exercises", exerciseHandler.GetCatalog)

		// Session lifecycle.
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.POST("", sessionHandler.Start)
			sessionGroup.GET("/current", sessionHandler.GetCurrent)
			sessionGroup.GET("/previous", sessionHandler.GetPrevious)
			sessionGroup.POST("/:id/workouts", sessionHandler.AddWorkout)
			sessionGroup.DELETE("/:id/workouts/:workoutId", sessionHandler.RemoveWorkout)
			sessionGroup.POST("/:id/end", sessionHandler.End)
			sessionGroup.DELETE("/:id", sessionHandler.Delete)
		}

		// Flat listing of the caller's logged sets across sessions.
		protected.GET("/workouts", sessionHandler.ListWorkouts)
	}
}
