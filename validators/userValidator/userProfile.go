package userValidator

import (
	"strings"

	"skillsync/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validates profile edits
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   string `json:"name"`
			Domain string `json:"domain"`
			Year   string `json:"year"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// UpdateSkills validates a skill-list replacement. An empty list is allowed:
// clearing skills is a legitimate edit and still recomputes the alignment
// score.
func UpdateSkills() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Skills []string `json:"skills"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		cleaned := make([]string, 0, len(reqData.Skills))
		for _, s := range reqData.Skills {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if len(s) > 100 {
				errors["skills"] = "Skill names must be under 100 characters!"
				break
			}
			cleaned = append(cleaned, s)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Skills = cleaned
		c.Locals("validatedSkills", reqData)
		return c.Next()
	}
}

// AnalyzeResume validates the resume text payload
func AnalyzeResume() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text string `json:"text"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Text) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"text": "Resume text is required!"})
		}

		c.Locals("validatedResume", reqData)
		return c.Next()
	}
}
