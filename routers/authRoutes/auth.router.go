package authRoutes

import (
	authController "skillsync/controllers/auth"
	validators "skillsync/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers signup and login endpoints
func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), ctl.Signup)
	authGroup.Post("/login", validators.Login(), ctl.Login)
	authGroup.Post("/admin/login", validators.Login(), ctl.AdminLogin)
}
