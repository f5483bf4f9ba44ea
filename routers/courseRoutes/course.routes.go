package courseRoutes

import (
	controllers "skillsync/controllers/course"
	"skillsync/middleware"
	validators "skillsync/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App, ctl *controllers.Controller) {
	courseGroup := app.Group("/course")

	// Course listing and details
	courseGroup.Get("/list", middleware.JWTMiddleware, ctl.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), ctl.GetCourseDetails)

	// Enrollment and progress
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), ctl.EnrollInCourse)
	courseGroup.Put("/:id/progress", middleware.JWTMiddleware, validators.UpdateProgress(), ctl.UpdateProgress)

	// Lazy video resolution from the blob store
	courseGroup.Get("/:id/video", middleware.JWTMiddleware, validators.CourseID(), ctl.GetCourseVideo)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.CourseID(), ctl.IssueCertificate)

	// User enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, ctl.GetEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, ctl.GetUserCertificates)
}
