package models

// Enrollment tracks one user's progress through one course. Enrollment lists
// are stored per user under enrollments_<email>, so the record carries no
// user reference of its own.
type Enrollment struct {
	CourseID      string `json:"courseId"`
	Enrolled      bool   `json:"enrolled"`
	Progress      int    `json:"progress"` // 0-100
	Completed     bool   `json:"completed"`
	EnrolledDate  string `json:"enrolledDate"`
	CompletedDate string `json:"completedDate,omitempty"`
}
