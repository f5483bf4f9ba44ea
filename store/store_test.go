package store

import (
	"path/filepath"
	"testing"

	"skillsync/database"
	"skillsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "records.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&database.Record{}))
	return New(db)
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)

	courses := []models.Course{
		{ID: "c1", Title: "Go Basics", Domain: "Web Development", Difficulty: "Beginner", VideoType: "youtube", VideoUrl: "https://youtu.be/x", Documents: []models.CourseDocument{}},
		{ID: "c2", Title: "Advanced SQL", Domain: "Data Science", Difficulty: "Advanced", VideoType: "local", VideoUrl: "local:video_c2", Documents: []models.CourseDocument{}},
	}

	require.NoError(t, s.SaveCourses(courses))
	assert.Equal(t, courses, s.Courses())
}

func TestReadDegradesToDefaults(t *testing.T) {
	s := newTestStore(t)

	// untouched store serves the seeded catalog
	assert.Equal(t, defaultTrendingSkills, s.TrendingSkills())
	assert.Equal(t, defaultDomains, s.Domains())

	// corrupt stored JSON degrades to defaults instead of erroring
	rec := database.Record{Key: keyTrendingSkills, Value: datatypes.JSON([]byte(`{not json`))}
	require.NoError(t, s.db.Create(&rec).Error)
	assert.Equal(t, defaultTrendingSkills, s.TrendingSkills())
}

func TestDefaultsAreCopies(t *testing.T) {
	s := newTestStore(t)

	skills := s.TrendingSkills()
	skills[0].Skill = "mutated"
	assert.Equal(t, defaultTrendingSkills[0].Skill, s.TrendingSkills()[0].Skill)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveCourses([]models.Course{{ID: "c1"}, {ID: "c2"}}))

	require.NoError(t, s.RemoveCourse("c1"))
	after := s.Courses()

	require.NoError(t, s.RemoveCourse("c1"))
	assert.Equal(t, after, s.Courses())
	assert.Len(t, s.Courses(), 1)
}

func TestUpdateUserSkillsRecomputesAlignment(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveTrendingSkills([]models.TrendingSkill{{Skill: "Python", Growth: 50}}))
	require.NoError(t, s.AddUser(models.User{ID: "u1", Email: "a@b.com", Skills: []string{}}))

	// lowercase still matches: case-insensitive exact match
	user, ok := s.UpdateUserSkills("a@b.com", []string{"python"})
	require.True(t, ok)
	assert.Equal(t, 100, user.AlignmentScore)

	stored, found := s.UserByEmail("a@b.com")
	require.True(t, found)
	assert.Equal(t, 100, stored.AlignmentScore)
}

func TestAlignmentScoreStaysCached(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveTrendingSkills([]models.TrendingSkill{{Skill: "Python", Growth: 50}}))
	require.NoError(t, s.AddUser(models.User{ID: "u1", Email: "a@b.com"}))
	_, ok := s.UpdateUserSkills("a@b.com", []string{"Python"})
	require.True(t, ok)

	// admin edits to trending skills do not rewrite the stored score
	require.NoError(t, s.AddTrendingSkill(models.TrendingSkill{Skill: "Rust", Growth: 70}))
	stored, _ := s.UserByEmail("a@b.com")
	assert.Equal(t, 100, stored.AlignmentScore)

	// the next skill edit picks up the new table
	user, ok := s.UpdateUserSkills("a@b.com", []string{"Python"})
	require.True(t, ok)
	assert.Equal(t, 50, user.AlignmentScore)
}

func TestEnrollIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Enroll("a@b.com", "c1")
	require.NoError(t, err)
	second, err := s.Enroll("a@b.com", "c1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, s.Enrollments("a@b.com"), 1)
}

func TestEnrollmentsAreIsolatedPerUser(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Enroll("a@b.com", "c1")
	require.NoError(t, err)

	assert.Len(t, s.Enrollments("a@b.com"), 1)
	assert.Empty(t, s.Enrollments("other@b.com"))
}

func TestUpdateCourseProgressClamps(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Enroll("a@b.com", "c1")
	require.NoError(t, err)

	e, ok := s.UpdateCourseProgress("a@b.com", "c1", 150)
	require.True(t, ok)
	assert.Equal(t, 100, e.Progress)
	assert.True(t, e.Completed)
	assert.NotEmpty(t, e.CompletedDate)

	e, ok = s.UpdateCourseProgress("a@b.com", "c1", -5)
	require.True(t, ok)
	assert.Equal(t, 0, e.Progress)
}

func TestCompletedDateSetOnce(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Enroll("a@b.com", "c1")
	require.NoError(t, err)

	first, ok := s.UpdateCourseProgress("a@b.com", "c1", 100)
	require.True(t, ok)
	require.NotEmpty(t, first.CompletedDate)

	again, ok := s.UpdateCourseProgress("a@b.com", "c1", 100)
	require.True(t, ok)
	assert.Equal(t, first.CompletedDate, again.CompletedDate)
}

func TestUpdateProgressUnknownCourse(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.UpdateCourseProgress("a@b.com", "missing", 50)
	assert.False(t, ok)
}

func TestAddCertificateIdempotent(t *testing.T) {
	s := newTestStore(t)

	cert := models.Certificate{ID: "cert1", UserEmail: "a@b.com", CourseID: "c1", CourseTitle: "Go Basics"}
	issued, err := s.AddCertificate(cert)
	require.NoError(t, err)
	assert.Equal(t, "cert1", issued.ID)

	duplicate := models.Certificate{ID: "cert2", UserEmail: "A@B.com", CourseID: "c1"}
	issued, err = s.AddCertificate(duplicate)
	require.NoError(t, err)
	assert.Equal(t, "cert1", issued.ID, "re-issuing returns the original certificate")
	assert.Len(t, s.AllCertificates(), 1)

	// a different course for the same user is a new certificate
	_, err = s.AddCertificate(models.Certificate{ID: "cert3", UserEmail: "a@b.com", CourseID: "c2"})
	require.NoError(t, err)
	assert.Len(t, s.AllCertificates(), 2)
}

func TestResultsAppendOnlyAndFiltered(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddAssessmentResult(models.AssessmentResult{ID: "r1", UserEmail: "a@b.com", Score: 3, Total: 5}))
	require.NoError(t, s.AddAssessmentResult(models.AssessmentResult{ID: "r2", UserEmail: "x@y.com", Score: 5, Total: 5}))
	require.NoError(t, s.AddAssessmentResult(models.AssessmentResult{ID: "r3", UserEmail: "a@b.com", Score: 4, Total: 5}))

	mine := s.AssessmentResults("a@b.com")
	require.Len(t, mine, 2)
	assert.Equal(t, "r1", mine[0].ID)
	assert.Equal(t, "r3", mine[1].ID)
	assert.Len(t, s.AllAssessmentResults(), 3)
}

func TestQuestionsByDomainIncludesGeneral(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveQuestions([]models.Question{
		{ID: "q1", Domain: "Data Science", Type: models.QuestionTypeMCQ},
		{ID: "q2", Domain: models.DomainGeneral, Type: models.QuestionTypeMCQ},
		{ID: "q3", Domain: "Web Development", Type: models.QuestionTypeMCQ},
		{ID: "q4", Domain: "Data Science", Type: models.QuestionTypeCoding},
	}))

	got := s.QuestionsByDomain("Data Science", models.QuestionTypeMCQ)
	require.Len(t, got, 2)
	assert.Equal(t, "q1", got[0].ID)
	assert.Equal(t, "q2", got[1].ID)
}

func TestProfilePicRoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.ProfilePic("a@b.com"))
	require.NoError(t, s.SaveProfilePic("a@b.com", "data:image/png;base64,AAAA"))
	assert.Equal(t, "data:image/png;base64,AAAA", s.ProfilePic("a@b.com"))
	assert.Empty(t, s.ProfilePic("other@b.com"))
}

func TestRemoveDomainNoCascade(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveDomains([]string{"Data Science", "Web Development"}))
	require.NoError(t, s.AddUser(models.User{ID: "u1", Email: "a@b.com", Domain: "Data Science"}))

	require.NoError(t, s.RemoveDomain("Data Science"))
	assert.Equal(t, []string{"Web Development"}, s.Domains())

	// dependent records keep their now-orphaned domain string
	user, _ := s.UserByEmail("a@b.com")
	assert.Equal(t, "Data Science", user.Domain)
}
