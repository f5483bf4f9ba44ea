package adminValidator

import (
	"strings"
	"time"

	"skillsync/middleware"
	"skillsync/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// TrendingSkill validates a new trending-skill entry
func TrendingSkill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.TrendingSkill)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Skill) == "" {
			errors["skill"] = "Skill name is required!"
		}
		if reqData.Growth < 0 || reqData.Growth > 100 {
			errors["growth"] = "Growth must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrendingSkill", reqData)
		return c.Next()
	}
}

// Domain validates a new domain name
func Domain() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Domain name is required!"})
		}

		c.Locals("validatedDomain", reqData)
		return c.Next()
	}
}

// Roadmap validates a per-domain roadmap replacement
func Roadmap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Domain string   `json:"domain"`
			Steps  []string `json:"steps"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Domain) == "" {
			errors["domain"] = "Domain is required!"
		}
		if len(reqData.Steps) == 0 {
			errors["steps"] = "At least one roadmap step is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoadmap", reqData)
		return c.Next()
	}
}

// Risk validates a per-domain automation-risk assignment
func Risk() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Domain string `json:"domain"`
			Risk   string `json:"risk"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Domain) == "" {
			errors["domain"] = "Domain is required!"
		}
		if err := validate.Var(reqData.Risk, "required,oneof=Low Medium High"); err != nil {
			errors["risk"] = "Risk must be Low, Medium or High!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRisk", reqData)
		return c.Next()
	}
}

// Course validates course create/update payloads
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Course)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" && reqData.VideoType != models.VideoTypeYoutube {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Domain) == "" {
			errors["domain"] = "Domain is required!"
		}
		if err := validate.Var(reqData.Difficulty, "required,oneof=Beginner Intermediate Advanced"); err != nil {
			errors["difficulty"] = "Difficulty must be Beginner, Intermediate or Advanced!"
		}
		if err := validate.Var(reqData.VideoType, "required,oneof=youtube local"); err != nil {
			errors["videoType"] = "Video type must be youtube or local!"
		}
		if reqData.VideoType == models.VideoTypeYoutube {
			if err := validate.Var(reqData.VideoUrl, "required,url"); err != nil {
				errors["videoUrl"] = "A valid video URL is required for youtube courses!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// Question validates a question-bank entry. For MCQs the correct answer must
// be one of the options; the store itself never re-checks this.
func Question() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Question)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Question text is required!"
		}
		if err := validate.Var(reqData.Type, "required,oneof=mcq coding case"); err != nil {
			errors["type"] = "Type must be mcq, coding or case!"
		}
		if err := validate.Var(reqData.Difficulty, "required,oneof=easy medium hard"); err != nil {
			errors["difficulty"] = "Difficulty must be easy, medium or hard!"
		}
		if reqData.Domain == "" {
			reqData.Domain = models.DomainGeneral
		}
		if reqData.Type == models.QuestionTypeMCQ {
			if len(reqData.Options) < 2 {
				errors["options"] = "MCQ questions need at least two options!"
			}
			found := false
			for _, opt := range reqData.Options {
				if opt == reqData.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				errors["correctAnswer"] = "Correct answer must be one of the options!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// LiveClass validates a class schedule entry
func LiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.LiveClass)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "Course name is required!"
		}
		if strings.TrimSpace(reqData.FacultyName) == "" {
			errors["facultyName"] = "Faculty name is required!"
		}
		if _, err := time.Parse("2006-01-02", reqData.Date); err != nil {
			errors["date"] = "Date must be YYYY-MM-DD!"
		}
		if _, err := time.Parse("15:04", reqData.Time); err != nil {
			errors["time"] = "Time must be HH:MM (24h)!"
		}
		if err := validate.Var(reqData.MeetLink, "required,url"); err != nil {
			errors["meetLink"] = "A valid meeting link is required!"
		}
		if reqData.Duration <= 0 {
			errors["duration"] = "Duration must be a positive number of minutes!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveClass", reqData)
		return c.Next()
	}
}
