package adminController

import (
	"log"
	"time"

	"skillsync/middleware"
	"skillsync/models"
	"skillsync/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetLiveClasses lists all scheduled classes with derived status
func (ctl *Controller) GetLiveClasses(c *fiber.Ctx) error {
	type classView struct {
		models.LiveClass
		Status string `json:"status"`
	}

	now := time.Now()
	classes := ctl.Store.LiveClasses()
	result := make([]classView, len(classes))
	for i, class := range classes {
		result[i] = classView{LiveClass: class, Status: store.ClassStatus(class, now)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live classes fetched!", fiber.Map{
		"classes": result,
		"total":   len(result),
	})
}

// ScheduleLiveClass adds a class to the schedule
func (ctl *Controller) ScheduleLiveClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLiveClass").(*models.LiveClass)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	class := *reqData
	class.ID = uuid.NewString()

	if err := ctl.Store.AddLiveClass(class); err != nil {
		log.Printf("Error scheduling live class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Live class scheduled!", class)
}

// RemoveLiveClass deletes a class from the schedule
func (ctl *Controller) RemoveLiveClass(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctl.Store.RemoveLiveClass(id); err != nil {
		log.Printf("Error removing live class %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live class removed!", nil)
}
