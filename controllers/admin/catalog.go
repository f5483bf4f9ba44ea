package adminController

import (
	"log"

	"skillsync/middleware"
	"skillsync/models"

	"github.com/gofiber/fiber/v2"
)

// Catalog endpoints manage the shared reference collections: trending
// skills, domains, roadmaps and automation risk. Edits here do not cascade:
// users and courses referencing a removed entry keep their stale strings,
// and cached user alignment scores are not recomputed.

// GetTrendingSkills returns the trending-skills table
func (ctl *Controller) GetTrendingSkills(c *fiber.Ctx) error {
	skills := ctl.Store.TrendingSkills()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trending skills fetched!", fiber.Map{
		"skills": skills,
		"total":  len(skills),
	})
}

// AddTrendingSkill appends one trending skill
func (ctl *Controller) AddTrendingSkill(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTrendingSkill").(*models.TrendingSkill)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := ctl.Store.AddTrendingSkill(*reqData); err != nil {
		log.Printf("Error adding trending skill: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add trending skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trending skill added!", reqData)
}

// RemoveTrendingSkill deletes a trending skill by name
func (ctl *Controller) RemoveTrendingSkill(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := ctl.Store.RemoveTrendingSkill(name); err != nil {
		log.Printf("Error removing trending skill %q: %v", name, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove trending skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trending skill removed!", nil)
}

// GetDomains returns the domain catalog
func (ctl *Controller) GetDomains(c *fiber.Ctx) error {
	domains := ctl.Store.Domains()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Domains fetched!", fiber.Map{
		"domains": domains,
		"total":   len(domains),
	})
}

// AddDomain appends one domain name
func (ctl *Controller) AddDomain(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDomain").(*struct {
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := ctl.Store.AddDomain(reqData.Name); err != nil {
		log.Printf("Error adding domain: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add domain!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Domain added!", nil)
}

// RemoveDomain deletes a domain; dependent records are left orphaned by
// design
func (ctl *Controller) RemoveDomain(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := ctl.Store.RemoveDomain(name); err != nil {
		log.Printf("Error removing domain %q: %v", name, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove domain!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Domain removed!", nil)
}

// GetRoadmaps returns the per-domain roadmap map
func (ctl *Controller) GetRoadmaps(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmaps fetched!", ctl.Store.Roadmaps())
}

// SetRoadmap replaces one domain's roadmap steps
func (ctl *Controller) SetRoadmap(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRoadmap").(*struct {
		Domain string   `json:"domain"`
		Steps  []string `json:"steps"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	roadmaps := ctl.Store.Roadmaps()
	roadmaps[reqData.Domain] = reqData.Steps
	if err := ctl.Store.SaveRoadmaps(roadmaps); err != nil {
		log.Printf("Error saving roadmaps: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save roadmap!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap saved!", nil)
}

// GetAutomationRisk returns the per-domain risk categories
func (ctl *Controller) GetAutomationRisk(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Automation risk fetched!", ctl.Store.AutomationRisk())
}

// SetAutomationRisk replaces one domain's risk category
func (ctl *Controller) SetAutomationRisk(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRisk").(*struct {
		Domain string `json:"domain"`
		Risk   string `json:"risk"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	risk := ctl.Store.AutomationRisk()
	risk[reqData.Domain] = reqData.Risk
	if err := ctl.Store.SaveAutomationRisk(risk); err != nil {
		log.Printf("Error saving automation risk: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save automation risk!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Automation risk saved!", nil)
}
