package userControllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"

	"skillsync/middleware"
	"skillsync/resume"
	"skillsync/scoring"
	"skillsync/store"

	"github.com/gofiber/fiber/v2"
)

// profile pictures are capped well below the document ceiling
const maxProfilePicBytes = 2 * 1024 * 1024

// Controller serves profile, skill and scoring endpoints for the logged-in
// user
type Controller struct {
	Store *store.Store
}

func NewController(s *store.Store) *Controller {
	return &Controller{Store: s}
}

// GetProfile returns the current user's record with the stored profile
// picture attached
func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, exists := ctl.Store.UserByEmail(email)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":       user,
		"profilePic": ctl.Store.ProfilePic(email),
	})
}

// UpdateProfile updates the user's name, domain and year. Email and skills
// have their own flows.
func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
		Year   string `json:"year"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, exists := ctl.Store.UserByEmail(email)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Name = reqData.Name
	user.Domain = reqData.Domain
	user.Year = reqData.Year

	if err := ctl.Store.UpdateUser(user); err != nil {
		log.Printf("Error updating user %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// UpdateSkills replaces the user's skill list. The cached alignment score is
// recomputed inside the store on this mutation, and only on this mutation.
func (ctl *Controller) UpdateSkills(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSkills").(*struct {
		Skills []string `json:"skills"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, updated := ctl.Store.UpdateUserSkills(email, reqData.Skills)
	if !updated {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update skills!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills updated successfully!", user)
}

// UploadProfilePic stores the user's profile picture as a data URL under the
// per-user profilePic_<email> key
func (ctl *Controller) UploadProfilePic(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Picture file is required!", nil)
	}
	if file.Size > maxProfilePicBytes {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Picture must be smaller than 2MB!", nil)
	}

	src, err := file.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read picture!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read picture!", nil)
	}

	mimeType := file.Header.Get("Content-Type")
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	if err := ctl.Store.SaveProfilePic(email, dataURL); err != nil {
		log.Printf("Error saving profile picture for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save picture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile picture updated!", nil)
}

// CareerHealth returns the full career-health report for the current user,
// derived live from the skill list, trending table and the automation-risk
// category of the user's domain
func (ctl *Controller) CareerHealth(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, exists := ctl.Store.UserByEmail(email)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	riskCategory := ctl.Store.AutomationRisk()[user.Domain]
	if riskCategory == "" {
		riskCategory = "Medium"
	}

	report := scoring.CareerHealth(user.Skills, ctl.Store.TrendingSkills(), riskCategory)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career health computed!", fiber.Map{
		"report": report,
		// the cached value may lag the live one if trending skills changed
		// since the user last edited their skills
		"cachedAlignmentScore": user.AlignmentScore,
	})
}

// AnalyzeResume runs the heuristic resume analyzer over submitted text
func (ctl *Controller) AnalyzeResume(c *fiber.Ctx) error {
	if _, ok := c.Locals("email").(string); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResume").(*struct {
		Text string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	analysis := resume.Analyze(reqData.Text)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resume analyzed successfully!", analysis)
}
