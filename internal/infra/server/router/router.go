// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/inviteable/backend/internal/integration/entrypoint/controller"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	groupController        *controller.GroupController
	guestController        *controller.GuestController
	templateController     *controller.TemplateController
	eventSettingController *controller.EventSettingController
	invitationController   *controller.InvitationController
	sendLogController      *controller.SendLogController
	statsController        *controller.StatsController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	groupController *controller.GroupController,
	guestController *controller.GuestController,
	templateController *controller.TemplateController,
	eventSettingController *controller.EventSettingController,
	invitationController *controller.InvitationController,
	sendLogController *controller.SendLogController,
	statsController *controller.StatsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		groupController:        groupController,
		guestController:        guestController,
		templateController:     templateController,
		eventSettingController: eventSettingController,
		invitationController:   invitationController,
		sendLogController:      sendLogController,
		statsController:        statsController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAuthRoutes()
	r.setupUserScopedRoutes()
	r.setupAdminRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAuthRoutes configures the public authentication endpoints.
func (r *Router) setupAuthRoutes() {
	if r.authController == nil || r.loginRateLimiter == nil {
		return
	}

	auth := r.engine.Group("/api/auth")
	{
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/logout", r.authController.Logout)
	}
}

// setupUserScopedRoutes configures routes under /api/users/:userId. Every
// route requires a valid access token whose subject matches the path user.
func (r *Router) setupUserScopedRoutes() {
	if r.authMiddleware == nil {
		return
	}

	user := r.engine.Group("/api/users/:userId")
	user.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireSelf())
	{
		if r.groupController != nil {
			groups := user.Group("/groups")
			{
				groups.GET("", r.groupController.List)
				groups.POST("", r.groupController.Create)
				groups.PUT("/:id", r.groupController.Update)
				groups.DELETE("/:id", r.groupController.Delete)
			}
		}

		if r.guestController != nil {
			guests := user.Group("/guests")
			{
				guests.GET("", r.guestController.List)
				guests.POST("", r.guestController.Create)
				guests.PUT("/:id", r.guestController.Update)
				guests.DELETE("/:id", r.guestController.Delete)
				guests.PUT("/:id/send-status", r.guestController.SetSentStatus)
			}
		}

		if r.templateController != nil {
			templates := user.Group("/templates")
			{
				templates.GET("", r.templateController.List)
				templates.POST("", r.templateController.Create)
				templates.PUT("/:id", r.templateController.Update)
				templates.DELETE("/:id", r.templateController.Delete)
				templates.POST("/suggest", r.templateController.Suggest)
			}
		}

		if r.eventSettingController != nil {
			user.GET("/event-settings", r.eventSettingController.Get)
		}

		if r.invitationController != nil {
			user.POST("/invitations/generate", r.invitationController.Generate)
		}

		if r.sendLogController != nil {
			user.POST("/send-logs", r.sendLogController.Create)
		}
	}
}

// setupAdminRoutes configures routes under /api/admin. Every route requires
// a valid access token carrying the admin role.
func (r *Router) setupAdminRoutes() {
	if r.authMiddleware == nil {
		return
	}

	admin := r.engine.Group("/api/admin")
	admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
	{
		if r.userController != nil {
			users := admin.Group("/users")
			{
				users.GET("", r.userController.List)
				users.POST("", r.userController.Create)
				users.PUT("/:userId", r.userController.Update)
			}
		}

		if r.eventSettingController != nil {
			settings := admin.Group("/users/:userId/event-settings")
			{
				settings.POST("", r.eventSettingController.AdminCreate)
				settings.PUT("/:id", r.eventSettingController.AdminUpdate)
			}
		}

		if r.templateController != nil {
			templates := admin.Group("/templates")
			{
				templates.GET("", r.templateController.AdminList)
				templates.POST("", r.templateController.AdminCreate)
				templates.PUT("/:id", r.templateController.AdminUpdate)
				templates.DELETE("/:id", r.templateController.AdminDelete)
			}
		}

		if r.statsController != nil {
			stats := admin.Group("/stats")
			{
				stats.GET("/guests", r.statsController.GuestStats)
				stats.GET("/events", r.statsController.EventStats)
			}
		}
	}
}
