package controllers

import (
	"log"
	"time"

	"skillsync/middleware"
	"skillsync/models"
	"skillsync/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IssueCertificate issues a completion certificate for a finished course.
// Issuing is idempotent per (userEmail, courseId): repeated calls return the
// original certificate.
func (ctl *Controller) IssueCertificate(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, exists := ctl.Store.UserByEmail(email)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(string)

	enrollment, enrolled := ctl.Store.EnrollmentFor(email, courseID)
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}
	if !enrollment.Completed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	course, exists := ctl.Store.CourseByID(courseID)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Course fields are snapshotted onto the certificate so later edits or
	// removal of the course leave issued certificates intact
	cert := models.Certificate{
		ID:               uuid.NewString(),
		UserEmail:        email,
		CourseID:         courseID,
		CourseTitle:      course.Title,
		CourseDomain:     course.Domain,
		CourseDifficulty: course.Difficulty,
		CompletedDate:    enrollment.CompletedDate,
		IssuedDate:       time.Now().Format(time.RFC3339),
	}

	issued, err := ctl.Store.AddCertificate(cert)
	if err != nil {
		log.Printf("Error issuing certificate for %s/%s: %v", email, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	// only notify on first issuance
	if issued.ID == cert.ID {
		go utils.SendCertificateEmail(email, user.Name, course.Title, issued.ID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", issued)
}

// GetUserCertificates lists the current user's certificates
func (ctl *Controller) GetUserCertificates(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificates := ctl.Store.Certificates(email)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}
