package models

// Live class status values, derived from wall-clock time
const (
	ClassUpcoming  = "upcoming"
	ClassLive      = "live"
	ClassCompleted = "completed"
)

// LiveClass is a scheduled online class. Status is never stored: it is
// derived from [date+time, date+time+duration) against the current time.
type LiveClass struct {
	ID          string `json:"id"`
	CourseName  string `json:"courseName"`
	FacultyName string `json:"facultyName"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM, 24h
	MeetLink    string `json:"meetLink"`
	Duration    int    `json:"duration"` // minutes
}
