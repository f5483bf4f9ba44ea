package models

// AssessmentResult is one append-only entry of a user's assessment history.
// Results are never mutated after creation.
type AssessmentResult struct {
	ID        string `json:"id"`
	UserEmail string `json:"userEmail"`
	Domain    string `json:"domain"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Date      string `json:"date"`
	TimeTaken int    `json:"timeTaken"` // seconds
}

// InterviewResult is one append-only entry of a user's mock-interview history.
type InterviewResult struct {
	ID          string         `json:"id"`
	UserEmail   string         `json:"userEmail"`
	Role        string         `json:"role"`
	Scores      map[string]int `json:"scores"` // per-dimension 0-100
	Date        string         `json:"date"`
	Suggestions []string       `json:"suggestions"`
}
