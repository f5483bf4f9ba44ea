package models

// Question type values
const (
	QuestionTypeMCQ    = "mcq"
	QuestionTypeCoding = "coding"
	QuestionTypeCase   = "case"
)

// DomainGeneral is the sentinel domain for questions not tied to any
// admin-defined domain.
const DomainGeneral = "General"

// Question is an assessment or interview question. CorrectAnswer must be one
// of Options; the admin endpoints enforce that at write time, the store does
// not re-validate.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Type          string   `json:"type"` // mcq, coding, case
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"` // easy, medium, hard
	Domain        string   `json:"domain"`
}
