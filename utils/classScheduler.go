package utils

import (
	"log"
	"time"

	"skillsync/models"
	"skillsync/store"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CLASS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepLiveClasses walks the schedule once, logging status transitions and
// mailing reminders for classes that just went live. Reminders are tracked
// in memory only: a restart may re-send, never skip.
func sweepLiveClasses(s *store.Store, reminded map[string]bool) {
	now := time.Now()

	for _, class := range s.LiveClasses() {
		status := store.ClassStatus(class, now)
		if status != models.ClassLive || reminded[class.ID] {
			continue
		}
		reminded[class.ID] = true
		logScheduler("Class " + class.CourseName + " (" + class.ID + ") went live")

		// Notify learners (async)
		go func(class models.LiveClass, users []models.User) {
			for _, u := range users {
				SendClassReminderEmail(u.Email, u.Name, class.CourseName, class.MeetLink)
			}
		}(class, s.Users())
	}
}

// StartClassScheduler runs the live-class sweep every minute
func StartClassScheduler(s *store.Store) *cron.Cron {
	c := cron.New()
	reminded := make(map[string]bool)

	c.AddFunc("* * * * *", func() {
		sweepLiveClasses(s, reminded)
	})

	c.Start()
	logScheduler("Live-class scheduler started")
	return c
}
