package adminController

import (
	"skillsync/middleware"
	"skillsync/store"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the admin portal: catalog management, course and
// question CRUD, live classes and platform-wide views
type Controller struct {
	Store *store.Store
	Blobs *store.BlobStore
}

func NewController(s *store.Store, b *store.BlobStore) *Controller {
	return &Controller{Store: s, Blobs: b}
}

// GetUsers lists all registered users with passwords blanked
func (ctl *Controller) GetUsers(c *fiber.Ctx) error {
	users := ctl.Store.Users()
	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// GetAllResults returns the platform-wide assessment log
func (ctl *Controller) GetAllResults(c *fiber.Ctx) error {
	results := ctl.Store.AllAssessmentResults()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment results fetched!", fiber.Map{
		"results": results,
		"total":   len(results),
	})
}

// GetAllCertificates returns every issued certificate
func (ctl *Controller) GetAllCertificates(c *fiber.Ctx) error {
	certificates := ctl.Store.AllCertificates()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}
