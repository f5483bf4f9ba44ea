package store

import (
	"strings"

	"skillsync/models"
	"skillsync/scoring"
)

// Users returns all registered users (empty when none)
func (s *Store) Users() []models.User {
	return getList(s, keyUsers, []models.User{})
}

// SaveUsers replaces the whole user collection
func (s *Store) SaveUsers(users []models.User) error {
	return s.write(keyUsers, users)
}

// AddUser appends a user and persists the collection
func (s *Store) AddUser(user models.User) error {
	users := s.Users()
	users = append(users, user)
	return s.SaveUsers(users)
}

// UpdateUser replaces the stored user with the same id. Unknown ids are a
// silent no-op, matching the degrade-don't-fail contract of the store.
func (s *Store) UpdateUser(user models.User) error {
	users := s.Users()
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			break
		}
	}
	return s.SaveUsers(users)
}

// RemoveUser deletes the user with the given id. Removing an absent id is a
// no-op.
func (s *Store) RemoveUser(id string) error {
	users := s.Users()
	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return s.SaveUsers(kept)
}

// UserByEmail looks a user up by email (emails are unique)
func (s *Store) UserByEmail(email string) (models.User, bool) {
	for _, u := range s.Users() {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// UpdateUserSkills replaces a user's skill list and recomputes the cached
// alignment score from the current trending-skills table. The score is only
// refreshed here, on skill mutation: later admin edits to trending skills do
// not retroactively rewrite stored scores.
func (s *Store) UpdateUserSkills(email string, skills []string) (models.User, bool) {
	users := s.Users()
	trending := s.TrendingSkills()
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			users[i].Skills = skills
			users[i].AlignmentScore = scoring.AlignmentScore(skills, trending)
			if err := s.SaveUsers(users); err != nil {
				return models.User{}, false
			}
			return users[i], true
		}
	}
	return models.User{}, false
}

// TrendingSkills returns the trending-skills table, seeded on first use
func (s *Store) TrendingSkills() []models.TrendingSkill {
	return getList(s, keyTrendingSkills, defaultTrendingSkills)
}

// SaveTrendingSkills replaces the trending-skills table
func (s *Store) SaveTrendingSkills(skills []models.TrendingSkill) error {
	return s.write(keyTrendingSkills, skills)
}

// AddTrendingSkill appends a trending skill
func (s *Store) AddTrendingSkill(skill models.TrendingSkill) error {
	skills := s.TrendingSkills()
	skills = append(skills, skill)
	return s.SaveTrendingSkills(skills)
}

// RemoveTrendingSkill deletes a trending skill by name (case-insensitive)
func (s *Store) RemoveTrendingSkill(name string) error {
	skills := s.TrendingSkills()
	kept := make([]models.TrendingSkill, 0, len(skills))
	for _, sk := range skills {
		if !strings.EqualFold(sk.Skill, name) {
			kept = append(kept, sk)
		}
	}
	return s.SaveTrendingSkills(kept)
}

// Domains returns the domain catalog, seeded on first use
func (s *Store) Domains() []string {
	return getList(s, keyDomains, defaultDomains)
}

// SaveDomains replaces the domain catalog
func (s *Store) SaveDomains(domains []string) error {
	return s.write(keyDomains, domains)
}

// AddDomain appends a domain name
func (s *Store) AddDomain(name string) error {
	domains := s.Domains()
	domains = append(domains, name)
	return s.SaveDomains(domains)
}

// RemoveDomain deletes a domain by name. Users, courses and roadmap entries
// referencing it are left as-is: relationships are by string match and there
// is deliberately no cascade.
func (s *Store) RemoveDomain(name string) error {
	domains := s.Domains()
	kept := make([]string, 0, len(domains))
	for _, d := range domains {
		if !strings.EqualFold(d, name) {
			kept = append(kept, d)
		}
	}
	return s.SaveDomains(kept)
}

// Roadmaps returns the per-domain learning roadmaps
func (s *Store) Roadmaps() map[string][]string {
	return getMap(s, keyRoadmaps, defaultRoadmaps)
}

// SaveRoadmaps replaces the roadmap map
func (s *Store) SaveRoadmaps(roadmaps map[string][]string) error {
	return s.write(keyRoadmaps, roadmaps)
}

// AutomationRisk returns the per-domain risk categories (Low/Medium/High)
func (s *Store) AutomationRisk() map[string]string {
	return getMap(s, keyAutomationRisk, defaultAutomationRisk)
}

// SaveAutomationRisk replaces the risk map
func (s *Store) SaveAutomationRisk(risk map[string]string) error {
	return s.write(keyAutomationRisk, risk)
}

// Courses returns all courses (empty when none)
func (s *Store) Courses() []models.Course {
	return getList(s, keyCourses, []models.Course{})
}

// SaveCourses replaces the whole course collection
func (s *Store) SaveCourses(courses []models.Course) error {
	return s.write(keyCourses, courses)
}

// AddCourse appends a course
func (s *Store) AddCourse(course models.Course) error {
	courses := s.Courses()
	courses = append(courses, course)
	return s.SaveCourses(courses)
}

// UpdateCourse replaces the stored course with the same id
func (s *Store) UpdateCourse(course models.Course) error {
	courses := s.Courses()
	for i := range courses {
		if courses[i].ID == course.ID {
			courses[i] = course
			break
		}
	}
	return s.SaveCourses(courses)
}

// RemoveCourse deletes a course by id. The caller is responsible for the
// best-effort removal of any local video blob; a dangling blob reference in
// the other direction resolves to nil at playback time.
func (s *Store) RemoveCourse(id string) error {
	courses := s.Courses()
	kept := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.SaveCourses(kept)
}

// CourseByID looks a course up by id
func (s *Store) CourseByID(id string) (models.Course, bool) {
	for _, c := range s.Courses() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// AddCourseDocument embeds a document into the course record. The 10MB size
// ceiling is enforced by the upload handler, not re-checked here.
func (s *Store) AddCourseDocument(courseID string, doc models.CourseDocument) error {
	courses := s.Courses()
	for i := range courses {
		if courses[i].ID == courseID {
			courses[i].Documents = append(courses[i].Documents, doc)
			break
		}
	}
	return s.SaveCourses(courses)
}

// RemoveCourseDocument deletes an embedded document from a course
func (s *Store) RemoveCourseDocument(courseID, docID string) error {
	courses := s.Courses()
	for i := range courses {
		if courses[i].ID != courseID {
			continue
		}
		kept := make([]models.CourseDocument, 0, len(courses[i].Documents))
		for _, d := range courses[i].Documents {
			if d.ID != docID {
				kept = append(kept, d)
			}
		}
		courses[i].Documents = kept
		break
	}
	return s.SaveCourses(courses)
}

// Questions returns the full question bank
func (s *Store) Questions() []models.Question {
	return getList(s, keyQuestions, []models.Question{})
}

// SaveQuestions replaces the question bank
func (s *Store) SaveQuestions(questions []models.Question) error {
	return s.write(keyQuestions, questions)
}

// AddQuestion appends a question
func (s *Store) AddQuestion(q models.Question) error {
	questions := s.Questions()
	questions = append(questions, q)
	return s.SaveQuestions(questions)
}

// RemoveQuestion deletes a question by id
func (s *Store) RemoveQuestion(id string) error {
	questions := s.Questions()
	kept := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	return s.SaveQuestions(kept)
}

// QuestionsByDomain filters the bank by domain and optionally by type.
// Questions under the "General" sentinel domain are always included.
func (s *Store) QuestionsByDomain(domain, qType string) []models.Question {
	var out []models.Question
	for _, q := range s.Questions() {
		if !strings.EqualFold(q.Domain, domain) && !strings.EqualFold(q.Domain, models.DomainGeneral) {
			continue
		}
		if qType != "" && q.Type != qType {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ProfilePic returns the stored profile picture data URL for a user, or ""
func (s *Store) ProfilePic(email string) string {
	var pic string
	if !s.read(profilePicKey(email), &pic) {
		return ""
	}
	return pic
}

// SaveProfilePic stores a user's profile picture data URL
func (s *Store) SaveProfilePic(email, dataURL string) error {
	return s.write(profilePicKey(email), dataURL)
}
