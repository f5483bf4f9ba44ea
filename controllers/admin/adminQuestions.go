package adminController

import (
	"log"

	"skillsync/middleware"
	"skillsync/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetQuestions returns the full question bank, answers included
func (ctl *Controller) GetQuestions(c *fiber.Ctx) error {
	questions := ctl.Store.Questions()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched!", fiber.Map{
		"questions": questions,
		"total":     len(questions),
	})
}

// AddQuestion appends a question to the bank. The validator has already
// checked that the correct answer is one of the options.
func (ctl *Controller) AddQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*models.Question)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	question := *reqData
	question.ID = uuid.NewString()

	if err := ctl.Store.AddQuestion(question); err != nil {
		log.Printf("Error adding question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added!", question)
}

// RemoveQuestion deletes a question by id
func (ctl *Controller) RemoveQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctl.Store.RemoveQuestion(id); err != nil {
		log.Printf("Error removing question %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question removed!", nil)
}
