package store

import (
	"strings"

	"skillsync/models"
)

// Assessment and interview results are append-only logs: entries are filtered
// by user for history views and never mutated after creation.

// AllAssessmentResults returns the full assessment log
func (s *Store) AllAssessmentResults() []models.AssessmentResult {
	return getList(s, keyAssessmentResults, []models.AssessmentResult{})
}

// AddAssessmentResult appends an assessment result
func (s *Store) AddAssessmentResult(result models.AssessmentResult) error {
	results := s.AllAssessmentResults()
	results = append(results, result)
	return s.write(keyAssessmentResults, results)
}

// AssessmentResults returns one user's assessment history
func (s *Store) AssessmentResults(email string) []models.AssessmentResult {
	var out []models.AssessmentResult
	for _, r := range s.AllAssessmentResults() {
		if strings.EqualFold(r.UserEmail, email) {
			out = append(out, r)
		}
	}
	return out
}

// AllInterviewResults returns the full mock-interview log
func (s *Store) AllInterviewResults() []models.InterviewResult {
	return getList(s, keyInterviewResults, []models.InterviewResult{})
}

// AddInterviewResult appends a mock-interview result
func (s *Store) AddInterviewResult(result models.InterviewResult) error {
	results := s.AllInterviewResults()
	results = append(results, result)
	return s.write(keyInterviewResults, results)
}

// InterviewResults returns one user's mock-interview history
func (s *Store) InterviewResults(email string) []models.InterviewResult {
	var out []models.InterviewResult
	for _, r := range s.AllInterviewResults() {
		if strings.EqualFold(r.UserEmail, email) {
			out = append(out, r)
		}
	}
	return out
}
