package courseValidator

import (
	"strings"

	"skillsync/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route parameter and stashes it for the handler
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateProgress validates a progress update. Out-of-range values are
// accepted here and clamped by the store, so a 150 lands as 100.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		reqData := new(struct {
			Progress *int `json:"progress"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.Progress == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"progress": "Progress is required!"})
		}

		c.Locals("courseID", courseID)
		c.Locals("progress", *reqData.Progress)
		return c.Next()
	}
}
