package store

import (
	"time"

	"skillsync/models"
)

// Enrollments returns a user's enrollment list (empty when none). Each user's
// list lives under its own enrollments_<email> key, which is what isolates
// users from each other; there is no user id foreign key.
func (s *Store) Enrollments(email string) []models.Enrollment {
	return getList(s, enrollmentsKey(email), []models.Enrollment{})
}

// SaveEnrollments replaces a user's enrollment list
func (s *Store) SaveEnrollments(email string, enrollments []models.Enrollment) error {
	return s.write(enrollmentsKey(email), enrollments)
}

// Enroll records an enrollment for a course. Enrolling twice in the same
// course is a no-op returning the existing record.
func (s *Store) Enroll(email, courseID string) (models.Enrollment, error) {
	enrollments := s.Enrollments(email)
	for _, e := range enrollments {
		if e.CourseID == courseID {
			return e, nil
		}
	}
	enrollment := models.Enrollment{
		CourseID:     courseID,
		Enrolled:     true,
		Progress:     0,
		EnrolledDate: time.Now().Format(time.RFC3339),
	}
	enrollments = append(enrollments, enrollment)
	return enrollment, s.SaveEnrollments(email, enrollments)
}

// UpdateCourseProgress sets a user's progress for a course, clamped to
// [0,100]. Crossing 100 marks the enrollment completed and stamps
// completedDate exactly once; later updates never clear or restamp it.
func (s *Store) UpdateCourseProgress(email, courseID string, progress int) (models.Enrollment, bool) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	enrollments := s.Enrollments(email)
	for i := range enrollments {
		if enrollments[i].CourseID != courseID {
			continue
		}
		enrollments[i].Progress = progress
		if progress >= 100 && !enrollments[i].Completed {
			enrollments[i].Completed = true
			enrollments[i].CompletedDate = time.Now().Format(time.RFC3339)
		}
		if err := s.SaveEnrollments(email, enrollments); err != nil {
			return models.Enrollment{}, false
		}
		return enrollments[i], true
	}
	return models.Enrollment{}, false
}

// EnrollmentFor returns a user's enrollment in a course, if any
func (s *Store) EnrollmentFor(email, courseID string) (models.Enrollment, bool) {
	for _, e := range s.Enrollments(email) {
		if e.CourseID == courseID {
			return e, true
		}
	}
	return models.Enrollment{}, false
}
