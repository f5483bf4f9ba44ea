package liveClassController

import (
	"time"

	"skillsync/middleware"
	"skillsync/models"
	"skillsync/store"

	"github.com/gofiber/fiber/v2"
)

// Controller serves user-facing live-class endpoints
type Controller struct {
	Store *store.Store
}

func NewController(s *store.Store) *Controller {
	return &Controller{Store: s}
}

// GetLiveClasses lists scheduled classes with their wall-clock-derived
// status. Status is never persisted; it is computed per request.
func (ctl *Controller) GetLiveClasses(c *fiber.Ctx) error {
	if _, ok := c.Locals("email").(string); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type classView struct {
		models.LiveClass
		Status string `json:"status"`
	}

	now := time.Now()
	classes := ctl.Store.LiveClasses()
	result := make([]classView, len(classes))
	for i, class := range classes {
		result[i] = classView{
			LiveClass: class,
			Status:    store.ClassStatus(class, now),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live classes fetched successfully!", fiber.Map{
		"classes": result,
		"total":   len(result),
	})
}
