package assessmentRoutes

import (
	assessmentController "skillsync/controllers/assessment"
	"skillsync/middleware"
	validators "skillsync/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentRoutes registers assessment and mock-interview endpoints
func SetupAssessmentRoutes(app *fiber.App, ctl *assessmentController.Controller) {
	assessGroup := app.Group("/assessment")

	assessGroup.Get("/questions", middleware.JWTMiddleware, ctl.GetQuestions)
	assessGroup.Post("/submit", middleware.JWTMiddleware, validators.SubmitAssessment(), ctl.SubmitAssessment)
	assessGroup.Get("/history", middleware.JWTMiddleware, ctl.GetAssessmentHistory)

	interviewGroup := app.Group("/interview")
	interviewGroup.Post("/submit", middleware.JWTMiddleware, validators.SubmitInterview(), ctl.SubmitInterview)
	interviewGroup.Get("/history", middleware.JWTMiddleware, ctl.GetInterviewHistory)
}
