package liveClassRoutes

import (
	liveClassController "skillsync/controllers/liveclass"
	"skillsync/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupLiveClassRoutes registers the user-facing live-class listing
func SetupLiveClassRoutes(app *fiber.App, ctl *liveClassController.Controller) {
	classGroup := app.Group("/live-classes")

	classGroup.Get("/", middleware.JWTMiddleware, ctl.GetLiveClasses)
}
