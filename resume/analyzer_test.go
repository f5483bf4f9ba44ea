package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSkillsHighExperienceLow(t *testing.T) {
	// technologies only, no quantified-achievement language
	analysis := Analyze("Python, React, AWS, Docker")

	assert.ElementsMatch(t, []string{"Python", "React", "AWS", "Docker"}, analysis.DetectedSkills)
	assert.GreaterOrEqual(t, analysis.SkillsScore, 70)
	assert.Less(t, analysis.ExperienceScore, 20)
}

func TestAnalyzeQuantifiedAchievements(t *testing.T) {
	bare := Analyze("Python developer")
	strong := Analyze("Python developer with 5 years of experience. Led a team of 4 and increased revenue by 40%.")

	assert.Greater(t, strong.ExperienceScore, bare.ExperienceScore)
	assert.Greater(t, strong.ExperienceScore, 30)
}

func TestAnalyzeWordBoundaries(t *testing.T) {
	analysis := Analyze("Experienced in JavaScript development")

	assert.Contains(t, analysis.DetectedSkills, "JavaScript")
	assert.NotContains(t, analysis.DetectedSkills, "Java")
}

func TestAnalyzeSymbolTerms(t *testing.T) {
	analysis := Analyze("Proficient in C++ and Go")

	assert.Contains(t, analysis.DetectedSkills, "C++")
	assert.Contains(t, analysis.DetectedSkills, "Go")
}

func TestAnalyzeRoleMatching(t *testing.T) {
	analysis := Analyze("Python, React, AWS, Docker")

	require.Len(t, analysis.RoleMatches, 5)

	// sorted descending
	for i := 1; i < len(analysis.RoleMatches); i++ {
		assert.GreaterOrEqual(t, analysis.RoleMatches[i-1].MatchPercent, analysis.RoleMatches[i].MatchPercent)
	}

	top := analysis.RoleMatches[0]
	assert.Equal(t, 33, top.MatchPercent)
	assert.LessOrEqual(t, len(top.MissingSkills), 4)
	assert.NotEmpty(t, top.MissingSkills)
}

func TestAnalyzeATSChecklist(t *testing.T) {
	analysis := Analyze("Work Experience\nEducation\nSkills: Python\nProjects: built a web app")

	found := make(map[string]bool)
	for _, kw := range analysis.ATSChecklist {
		found[kw.Keyword] = kw.Found
	}

	assert.True(t, found["experience"])
	assert.True(t, found["education"])
	assert.True(t, found["skills"])
	assert.True(t, found["projects"])
	assert.False(t, found["certifications"])

	assert.Greater(t, analysis.ATSScore, 0)
	assert.Greater(t, analysis.ProjectsScore, 0)
}

func TestAnalyzeRoadmap(t *testing.T) {
	analysis := Analyze("Python, React, AWS, Docker")

	require.Len(t, analysis.Roadmap, 3)
	assert.Contains(t, analysis.Roadmap[0], analysis.RoleMatches[0].Role)
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "Senior engineer. Experience with Python, Kubernetes and AWS. Led migrations that reduced costs by 30%."
	first := Analyze(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze(text))
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	analysis := Analyze("")

	assert.Empty(t, analysis.DetectedSkills)
	assert.Equal(t, 0, analysis.SkillsScore)
	assert.Equal(t, 0, analysis.ExperienceScore)
	assert.Equal(t, 0, analysis.ATSScore)
	for _, m := range analysis.RoleMatches {
		assert.Equal(t, 0, m.MatchPercent)
	}
}
