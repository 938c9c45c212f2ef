package routes

import (
	authapi "course-platform/internal/api/auth"
	modulesapi "course-platform/internal/api/modules"
	subscriptionapi "course-platform/internal/api/subscription"
	"course-platform/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/api")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/auth/signup", authapi.Signup)
	public.POST("/auth/signin", authapi.Signin)

	r.GET("/api/modules", modulesapi.ListModules)
	r.GET("/api/lessons/:id", middleware.OptionalAuthMiddleware(), middleware.LessonAccess(), modulesapi.GetLesson)

	// The status and success endpoints work signed-out; the success redirect
	// carries the session as a cookie, not a bearer header.
	r.GET("/api/subscription/status", middleware.OptionalAuthMiddleware(), subscriptionapi.SubscriptionStatus)
	r.GET("/api/subscription/success", middleware.OptionalAuthMiddleware(), subscriptionapi.SubscriptionSuccess)
	r.GET("/api/subscription/cancel", subscriptionapi.CancelRedirect)

	auth := r.Group("/api")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/subscription/create", subscriptionapi.CreateSubscription)
	auth.POST("/subscription/create-mock", subscriptionapi.CreateMockSubscription)
	auth.POST("/subscription/cancel", subscriptionapi.CancelSubscription)
}
