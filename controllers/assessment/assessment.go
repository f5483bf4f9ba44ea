package assessmentController

import (
	"log"
	"time"

	"skillsync/middleware"
	"skillsync/models"
	"skillsync/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Controller serves assessment and mock-interview endpoints
type Controller struct {
	Store *store.Store
}

func NewController(s *store.Store) *Controller {
	return &Controller{Store: s}
}

// GetQuestions returns the question set for a domain and optional type.
// Questions under the "General" domain are always included. Correct answers
// are stripped: grading happens on submit.
func (ctl *Controller) GetQuestions(c *fiber.Ctx) error {
	if _, ok := c.Locals("email").(string); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	domain := c.Query("domain", models.DomainGeneral)
	qType := c.Query("type")

	questions := ctl.Store.QuestionsByDomain(domain, qType)
	for i := range questions {
		questions[i].CorrectAnswer = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"questions": questions,
		"total":     len(questions),
	})
}

// SubmitAssessment grades the submitted answers against the question bank
// and appends the result to the user's history
func (ctl *Controller) SubmitAssessment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*struct {
		Domain    string            `json:"domain"`
		Answers   map[string]string `json:"answers"` // questionId -> chosen option
		TimeTaken int               `json:"timeTaken"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	questions := ctl.Store.Questions()
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	score, total := 0, 0
	for id, answer := range reqData.Answers {
		q, known := byID[id]
		if !known {
			continue
		}
		total++
		if q.CorrectAnswer != "" && q.CorrectAnswer == answer {
			score++
		}
	}

	result := models.AssessmentResult{
		ID:        uuid.NewString(),
		UserEmail: email,
		Domain:    reqData.Domain,
		Score:     score,
		Total:     total,
		Date:      time.Now().Format(time.RFC3339),
		TimeTaken: reqData.TimeTaken,
	}

	if err := ctl.Store.AddAssessmentResult(result); err != nil {
		log.Printf("Error saving assessment result for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save assessment result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment submitted successfully!", result)
}

// GetAssessmentHistory returns the user's past assessment results
func (ctl *Controller) GetAssessmentHistory(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	results := ctl.Store.AssessmentResults(email)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment history fetched!", fiber.Map{
		"results": results,
		"total":   len(results),
	})
}

// SubmitInterview appends a mock-interview result to the user's history.
// Scores arrive pre-computed per dimension from the interview flow.
func (ctl *Controller) SubmitInterview(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedInterview").(*struct {
		Role        string         `json:"role"`
		Scores      map[string]int `json:"scores"`
		Suggestions []string       `json:"suggestions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result := models.InterviewResult{
		ID:          uuid.NewString(),
		UserEmail:   email,
		Role:        reqData.Role,
		Scores:      reqData.Scores,
		Date:        time.Now().Format(time.RFC3339),
		Suggestions: reqData.Suggestions,
	}

	if err := ctl.Store.AddInterviewResult(result); err != nil {
		log.Printf("Error saving interview result for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save interview result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interview result saved!", result)
}

// GetInterviewHistory returns the user's past mock-interview results
func (ctl *Controller) GetInterviewHistory(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	results := ctl.Store.InterviewResults(email)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interview history fetched!", fiber.Map{
		"results": results,
		"total":   len(results),
	})
}
