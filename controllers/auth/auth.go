package authController

import (
	"log"
	"strings"
	"time"

	"skillsync/config"
	"skillsync/middleware"
	"skillsync/models"
	"skillsync/scoring"
	"skillsync/store"
	"skillsync/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Controller serves signup and login over the injected record store
type Controller struct {
	Store *store.Store
}

func NewController(s *store.Store) *Controller {
	return &Controller{Store: s}
}

func (ctl *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Check if email already exists
	if _, exists := ctl.Store.UserByEmail(reqData.Email); exists {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Prepare user record. The alignment score is computed up front from the
	// current trending-skills table and cached on the record.
	newUser := models.User{
		ID:             uuid.NewString(),
		Name:           reqData.Name,
		Email:          strings.ToLower(strings.TrimSpace(reqData.Email)),
		Password:       string(hashedPassword),
		Domain:         reqData.Domain,
		Year:           reqData.Year,
		Skills:         reqData.Skills,
		AlignmentScore: scoring.AlignmentScore(reqData.Skills, ctl.Store.TrendingSkills()),
		JoinedDate:     time.Now().Format(time.RFC3339),
	}

	if err := ctl.Store.AddUser(newUser); err != nil {
		log.Printf("Error saving user to store: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	go utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	token, err := middleware.GenerateJWT(newUser.Email, newUser.Name, middleware.RoleUser)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, exists := ctl.Store.UserByEmail(reqData.Email)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.Email, user.Name, middleware.RoleUser)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// AdminLogin checks the configured admin credentials and issues an admin
// session token. There is no admin user record in the store.
func (ctl *Controller) AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !strings.EqualFold(reqData.Email, config.AppConfig.AdminEmail) ||
		reqData.Password != config.AppConfig.AdminPassword {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid admin credentials!", nil)
	}

	token, err := middleware.GenerateJWT(config.AppConfig.AdminEmail, "Administrator", middleware.RoleAdmin)
	if err != nil {
		log.Printf("Error generating admin token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin login successful!", fiber.Map{
		"token": token,
	})
}
