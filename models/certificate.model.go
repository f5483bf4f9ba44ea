package models

// Certificate is issued at most once per (userEmail, courseId). Course fields
// are denormalized snapshots so the certificate survives later course edits
// or deletion.
type Certificate struct {
	ID               string `json:"id"`
	UserEmail        string `json:"userEmail"`
	CourseID         string `json:"courseId"`
	CourseTitle      string `json:"courseTitle"`
	CourseDomain     string `json:"courseDomain"`
	CourseDifficulty string `json:"courseDifficulty"`
	CompletedDate    string `json:"completedDate"`
	IssuedDate       string `json:"issuedDate"`
}
