package assessmentValidator

import (
	"skillsync/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitAssessment validates a graded submission
func SubmitAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Domain    string            `json:"domain"`
			Answers   map[string]string `json:"answers"`
			TimeTaken int               `json:"timeTaken"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Domain == "" {
			errors["domain"] = "Domain is required!"
		}
		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}
		if reqData.TimeTaken < 0 {
			errors["timeTaken"] = "Time taken must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}

// SubmitInterview validates a mock-interview result submission
func SubmitInterview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role        string         `json:"role"`
			Scores      map[string]int `json:"scores"`
			Suggestions []string       `json:"suggestions"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Role == "" {
			errors["role"] = "Role is required!"
		}
		if len(reqData.Scores) == 0 {
			errors["scores"] = "Scores are required!"
		}
		for dimension, score := range reqData.Scores {
			if score < 0 || score > 100 {
				errors["scores"] = "Score for " + dimension + " must be between 0 and 100!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInterview", reqData)
		return c.Next()
	}
}
