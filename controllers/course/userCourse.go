package controllers

import (
	"log"
	"strings"

	"skillsync/middleware"
	"skillsync/models"
	"skillsync/store"
	"skillsync/utils"

	"github.com/gofiber/fiber/v2"
)

// Controller serves user-facing course, enrollment and certificate endpoints
type Controller struct {
	Store *store.Store
	Blobs *store.BlobStore
}

func NewController(s *store.Store, b *store.BlobStore) *Controller {
	return &Controller{Store: s, Blobs: b}
}

// GetAllCourses lists courses, optionally filtered by domain, with the
// current user's enrollment state merged in
func (ctl *Controller) GetAllCourses(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	domain := c.Query("domain")
	courses := ctl.Store.Courses()
	enrollments := ctl.Store.Enrollments(email)

	enrolled := make(map[string]models.Enrollment, len(enrollments))
	for _, e := range enrollments {
		enrolled[e.CourseID] = e
	}

	type courseView struct {
		models.Course
		Enrolled  bool `json:"enrolled"`
		Progress  int  `json:"progress"`
		Completed bool `json:"completed"`
	}

	result := make([]courseView, 0, len(courses))
	for _, course := range courses {
		if domain != "" && !strings.EqualFold(course.Domain, domain) {
			continue
		}
		// document payloads stay out of list responses
		course.Documents = nil
		view := courseView{Course: course}
		if e, ok := enrolled[course.ID]; ok {
			view.Enrolled = true
			view.Progress = e.Progress
			view.Completed = e.Completed
		}
		result = append(result, view)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
		"total":   len(result),
	})
}

// GetCourseDetails returns one course with its embedded documents
func (ctl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	if _, ok := c.Locals("email").(string); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	course, exists := ctl.Store.CourseByID(courseID)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// EnrollInCourse enrolls the current user. Enrolling twice is a no-op.
func (ctl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, exists := ctl.Store.UserByEmail(email)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(string)

	course, exists := ctl.Store.CourseByID(courseID)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollment, err := ctl.Store.Enroll(email, courseID)
	if err != nil {
		log.Printf("Error enrolling %s in %s: %v", email, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go utils.SendEnrollmentEmail(email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// UpdateProgress sets the user's progress for a course, clamped to [0,100]
// by the store; reaching 100 marks the enrollment completed
func (ctl *Controller) UpdateProgress(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)
	progress := c.Locals("progress").(int)

	enrollment, updated := ctl.Store.UpdateCourseProgress(email, courseID, progress)
	if !updated {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}

// GetEnrollments lists the current user's enrollments with course snapshots
func (ctl *Controller) GetEnrollments(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type enrollmentView struct {
		models.Enrollment
		CourseTitle  string `json:"courseTitle"`
		CourseDomain string `json:"courseDomain"`
	}

	enrollments := ctl.Store.Enrollments(email)
	result := make([]enrollmentView, len(enrollments))
	for i, e := range enrollments {
		view := enrollmentView{Enrollment: e}
		// course may have been removed since enrolling; the view keeps the
		// bare enrollment in that case
		if course, ok := ctl.Store.CourseByID(e.CourseID); ok {
			view.CourseTitle = course.Title
			view.CourseDomain = course.Domain
		}
		result[i] = view
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// GetCourseVideo lazily resolves a local course video from the blob store.
// A dangling reference (blob removed) responds 404, mirroring the nil
// resolution contract of the blob store.
func (ctl *Controller) GetCourseVideo(c *fiber.Ctx) error {
	if _, ok := c.Locals("email").(string); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	course, exists := ctl.Store.CourseByID(courseID)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.VideoType != models.VideoTypeLocal {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course video is not locally stored!", fiber.Map{
			"videoUrl": course.VideoUrl,
		})
	}

	blob := ctl.Blobs.Retrieve(store.VideoKey(courseID))
	if blob == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not available!", nil)
	}

	c.Set(fiber.HeaderContentType, blob.Type)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+blob.Name+`"`)
	return c.Send(blob.File)
}
