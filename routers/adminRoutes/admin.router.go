package adminRoutes

import (
	adminController "skillsync/controllers/admin"
	"skillsync/middleware"
	validators "skillsync/validators/admin"
	courseValidators "skillsync/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes registers the admin portal. Every route sits behind the
// JWT middleware plus the admin role gate.
func SetupAdminRoutes(app *fiber.App, ctl *adminController.Controller) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	// Catalog: trending skills, domains, roadmaps, automation risk
	adminGroup.Get("/trending-skills", ctl.GetTrendingSkills)
	adminGroup.Post("/trending-skills", validators.TrendingSkill(), ctl.AddTrendingSkill)
	adminGroup.Delete("/trending-skills/:name", ctl.RemoveTrendingSkill)

	adminGroup.Get("/domains", ctl.GetDomains)
	adminGroup.Post("/domains", validators.Domain(), ctl.AddDomain)
	adminGroup.Delete("/domains/:name", ctl.RemoveDomain)

	adminGroup.Get("/roadmaps", ctl.GetRoadmaps)
	adminGroup.Put("/roadmaps", validators.Roadmap(), ctl.SetRoadmap)

	adminGroup.Get("/automation-risk", ctl.GetAutomationRisk)
	adminGroup.Put("/automation-risk", validators.Risk(), ctl.SetAutomationRisk)

	// Courses
	adminGroup.Post("/courses", validators.Course(), ctl.CreateCourse)
	adminGroup.Put("/courses/:id", courseValidators.CourseID(), validators.Course(), ctl.UpdateCourse)
	adminGroup.Delete("/courses/:id", courseValidators.CourseID(), ctl.DeleteCourse)
	adminGroup.Post("/courses/:id/video", courseValidators.CourseID(), ctl.UploadCourseVideo)
	adminGroup.Post("/courses/:id/documents", courseValidators.CourseID(), ctl.UploadCourseDocument)
	adminGroup.Delete("/courses/:id/documents/:docId", courseValidators.CourseID(), ctl.RemoveCourseDocument)

	// Question bank
	adminGroup.Get("/questions", ctl.GetQuestions)
	adminGroup.Post("/questions", validators.Question(), ctl.AddQuestion)
	adminGroup.Delete("/questions/:id", ctl.RemoveQuestion)

	// Live classes
	adminGroup.Get("/live-classes", ctl.GetLiveClasses)
	adminGroup.Post("/live-classes", validators.LiveClass(), ctl.ScheduleLiveClass)
	adminGroup.Delete("/live-classes/:id", ctl.RemoveLiveClass)

	// Platform views
	adminGroup.Get("/users", ctl.GetUsers)
	adminGroup.Get("/results", ctl.GetAllResults)
	adminGroup.Get("/certificates", ctl.GetAllCertificates)
}
