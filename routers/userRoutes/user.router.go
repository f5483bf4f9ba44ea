package userRoutes

import (
	userControllers "skillsync/controllers/userControllers"
	"skillsync/middleware"
	validators "skillsync/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers profile, skill and scoring endpoints
func SetupUserRoutes(app *fiber.App, ctl *userControllers.Controller) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, ctl.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), ctl.UpdateProfile)
	userGroup.Put("/skills", middleware.JWTMiddleware, validators.UpdateSkills(), ctl.UpdateSkills)
	userGroup.Post("/profile-pic", middleware.JWTMiddleware, ctl.UploadProfilePic)

	// Derived scoring
	userGroup.Get("/career-health", middleware.JWTMiddleware, ctl.CareerHealth)
	userGroup.Post("/resume/analyze", middleware.JWTMiddleware, validators.AnalyzeResume(), ctl.AnalyzeResume)
}
