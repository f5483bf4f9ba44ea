package store

import (
	"testing"
	"time"

	"skillsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassStatus(t *testing.T) {
	now, err := time.Parse("2006-01-02 15:04", "2026-08-30 12:00")
	require.NoError(t, err)

	class := models.LiveClass{ID: "lc1", Date: "2026-08-30", Duration: 60}

	cases := []struct {
		name  string
		start string
		want  string
	}{
		{"before start", "14:00", models.ClassUpcoming},
		{"at start", "12:00", models.ClassLive},
		{"inside window", "11:30", models.ClassLive},
		{"at end", "11:00", models.ClassCompleted},
		{"after end", "09:00", models.ClassCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			class.Time = tc.start
			assert.Equal(t, tc.want, ClassStatus(class, now))
		})
	}
}

func TestClassStatusUnparseable(t *testing.T) {
	now := time.Now()

	assert.Equal(t, models.ClassCompleted, ClassStatus(models.LiveClass{Date: "not-a-date", Time: "10:00"}, now))
	assert.Equal(t, models.ClassCompleted, ClassStatus(models.LiveClass{}, now))
}

func TestClassStatusZeroDuration(t *testing.T) {
	now, err := time.Parse("2006-01-02 15:04", "2026-08-30 12:00")
	require.NoError(t, err)

	// a zero-minute class is never live
	class := models.LiveClass{Date: "2026-08-30", Time: "12:00", Duration: 0}
	assert.Equal(t, models.ClassCompleted, ClassStatus(class, now))
}

func TestLiveClassCrud(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddLiveClass(models.LiveClass{ID: "lc1", CourseName: "Go Basics", Date: "2026-09-01", Time: "10:00", Duration: 45}))
	require.NoError(t, s.AddLiveClass(models.LiveClass{ID: "lc2", CourseName: "Advanced SQL", Date: "2026-09-02", Time: "14:00", Duration: 60}))
	require.Len(t, s.LiveClasses(), 2)

	require.NoError(t, s.RemoveLiveClass("lc1"))
	classes := s.LiveClasses()
	require.Len(t, classes, 1)
	assert.Equal(t, "lc2", classes[0].ID)

	require.NoError(t, s.RemoveLiveClass("lc1"))
	assert.Len(t, s.LiveClasses(), 1)
}
