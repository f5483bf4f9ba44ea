package adminController

import (
	"encoding/base64"
	"io"
	"log"
	"time"

	"skillsync/middleware"
	"skillsync/models"
	"skillsync/store"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	maxDocumentBytes = 10 * 1024 * 1024  // checked at upload time only
	maxVideoBytes    = 200 * 1024 * 1024 // videos bypass the record store entirely
)

// CreateCourse registers a course. For youtube videos a best-effort oEmbed
// lookup fills a missing title; for local videos the record is created first
// and the blob uploaded separately.
func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course := *reqData
	course.ID = uuid.NewString()
	course.Documents = []models.CourseDocument{}
	course.CreatedDate = time.Now().Format(time.RFC3339)

	if course.VideoType == models.VideoTypeYoutube && course.Title == "" {
		if title := fetchYoutubeTitle(course.VideoUrl); title != "" {
			course.Title = title
		}
	}
	if course.VideoType == models.VideoTypeLocal {
		course.VideoUrl = store.BlobRefScheme + store.VideoKey(course.ID)
	}

	if err := ctl.Store.AddCourse(course); err != nil {
		log.Printf("Error adding course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse replaces a course's editable fields; documents and the video
// reference are managed through their own endpoints
func (ctl *Controller) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, exists := ctl.Store.CourseByID(courseID)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Domain = reqData.Domain
	course.Difficulty = reqData.Difficulty
	if course.VideoType == models.VideoTypeYoutube {
		course.VideoUrl = reqData.VideoUrl
	}

	if err := ctl.Store.UpdateCourse(course); err != nil {
		log.Printf("Error updating course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and, best effort, its video blob.
// Enrollments and certificates referencing the course are left in place:
// certificates carry their own snapshot and enrollments degrade gracefully.
func (ctl *Controller) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	if err := ctl.Store.RemoveCourse(courseID); err != nil {
		log.Printf("Error removing course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	ctl.Blobs.Remove(store.VideoKey(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// UploadCourseVideo stores a local course video in the blob store and points
// the course record at it
func (ctl *Controller) UploadCourseVideo(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	course, exists := ctl.Store.CourseByID(courseID)
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	file, err := c.FormFile("video")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video file is required!", nil)
	}
	if file.Size > maxVideoBytes {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video exceeds the 200MB limit!", nil)
	}

	src, err := file.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read video!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read video!", nil)
	}

	key, err := ctl.Blobs.Store(courseID, data, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Error storing video blob for %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store video!", nil)
	}

	course.VideoType = models.VideoTypeLocal
	course.VideoUrl = store.BlobRefScheme + key
	if err := ctl.Store.UpdateCourse(course); err != nil {
		log.Printf("Error updating course %s after video upload: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video uploaded successfully!", fiber.Map{
		"videoUrl": course.VideoUrl,
	})
}

// UploadCourseDocument embeds a study document (base64) into the course
// record. The 10MB ceiling applies here, at upload, and is not re-validated
// on later reads.
func (ctl *Controller) UploadCourseDocument(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	if _, exists := ctl.Store.CourseByID(courseID); !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	file, err := c.FormFile("document")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Document file is required!", nil)
	}
	if file.Size > maxDocumentBytes {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Document exceeds the 10MB limit!", nil)
	}

	src, err := file.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read document!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read document!", nil)
	}

	doc := models.CourseDocument{
		ID:   uuid.NewString(),
		Name: file.Filename,
		Type: file.Header.Get("Content-Type"),
		Data: base64.StdEncoding.EncodeToString(data),
		Size: file.Size,
	}

	if err := ctl.Store.AddCourseDocument(courseID, doc); err != nil {
		log.Printf("Error adding document to course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}

	// echo the metadata without the payload
	doc.Data = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document uploaded successfully!", doc)
}

// RemoveCourseDocument deletes an embedded course document
func (ctl *Controller) RemoveCourseDocument(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	docID := c.Params("docId")

	if err := ctl.Store.RemoveCourseDocument(courseID, docID); err != nil {
		log.Printf("Error removing document %s from course %s: %v", docID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document removed!", nil)
}

// fetchYoutubeTitle asks the YouTube oEmbed endpoint for a video title.
// Best effort: any failure returns "" and the course keeps its given title.
func fetchYoutubeTitle(videoURL string) string {
	var payload struct {
		Title string `json:"title"`
	}

	client := resty.New().SetTimeout(5 * time.Second)
	resp, err := client.R().
		SetQueryParams(map[string]string{"url": videoURL, "format": "json"}).
		SetResult(&payload).
		Get("https://www.youtube.com/oembed")
	if err != nil || resp.IsError() {
		return ""
	}
	return payload.Title
}
