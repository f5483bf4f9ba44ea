package store

import (
	"time"

	"skillsync/models"
)

// LiveClasses returns all scheduled live classes
func (s *Store) LiveClasses() []models.LiveClass {
	return getList(s, keyLiveClasses, []models.LiveClass{})
}

// SaveLiveClasses replaces the live-class collection
func (s *Store) SaveLiveClasses(classes []models.LiveClass) error {
	return s.write(keyLiveClasses, classes)
}

// AddLiveClass appends a live class
func (s *Store) AddLiveClass(class models.LiveClass) error {
	classes := s.LiveClasses()
	classes = append(classes, class)
	return s.SaveLiveClasses(classes)
}

// RemoveLiveClass deletes a live class by id
func (s *Store) RemoveLiveClass(id string) error {
	classes := s.LiveClasses()
	kept := make([]models.LiveClass, 0, len(classes))
	for _, c := range classes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.SaveLiveClasses(kept)
}

// ClassStatus derives a class's status from wall-clock time: "upcoming"
// before start, "live" inside [start, start+duration), "completed" after.
// A class whose date or time cannot be parsed reads as completed.
func ClassStatus(class models.LiveClass, now time.Time) string {
	start, err := time.ParseInLocation("2006-01-02 15:04", class.Date+" "+class.Time, now.Location())
	if err != nil {
		return models.ClassCompleted
	}
	end := start.Add(time.Duration(class.Duration) * time.Minute)

	switch {
	case now.Before(start):
		return models.ClassUpcoming
	case now.Before(end):
		return models.ClassLive
	default:
		return models.ClassCompleted
	}
}
