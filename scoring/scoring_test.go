package scoring

import (
	"testing"

	"skillsync/models"

	"github.com/stretchr/testify/assert"
)

var trendingFixture = []models.TrendingSkill{
	{Skill: "Python", Growth: 85},
	{Skill: "React", Growth: 80},
	{Skill: "Machine Learning", Growth: 92},
	{Skill: "Cloud Computing", Growth: 88},
}

func TestAlignmentScoreBounds(t *testing.T) {
	cases := []struct {
		name   string
		skills []string
		want   int
	}{
		{"no skills", nil, 0},
		{"no overlap", []string{"Cooking", "Chess"}, 0},
		{"half overlap", []string{"Python", "React"}, 50},
		{"full overlap", []string{"Python", "React", "Machine Learning", "Cloud Computing"}, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AlignmentScore(tc.skills, trendingFixture)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestAlignmentScoreCaseInsensitive(t *testing.T) {
	trending := []models.TrendingSkill{{Skill: "Python", Growth: 50}}
	assert.Equal(t, 100, AlignmentScore([]string{"python"}, trending))
	assert.Equal(t, 100, AlignmentScore([]string{"PYTHON"}, trending))
}

func TestAlignmentScoreEmptyTrendingTable(t *testing.T) {
	assert.Equal(t, 0, AlignmentScore([]string{"Python"}, nil))
}

func TestSkillGrowthIndexDefault(t *testing.T) {
	// no matches means the 20-point floor, not zero
	assert.Equal(t, 20, SkillGrowthIndex([]string{"Cooking"}, trendingFixture))
	assert.Equal(t, 20, SkillGrowthIndex(nil, trendingFixture))
}

func TestSkillGrowthIndexCapped(t *testing.T) {
	got := SkillGrowthIndex([]string{"Python", "Machine Learning"}, trendingFixture)
	assert.Equal(t, 100, got) // avg(85,92)*2 well past the cap
}

func TestFuturePrediction(t *testing.T) {
	// base only
	assert.Equal(t, 30, FuturePrediction(nil))

	// one future-tech skill plus breadth: 30 + 8 + 2
	assert.Equal(t, 40, FuturePrediction([]string{"Blockchain"}))

	// many future-tech skills hit the 100 cap
	many := []string{
		"Machine Learning", "Deep Learning", "Cloud Computing",
		"Cybersecurity", "Blockchain", "DevOps", "Kubernetes",
		"IoT", "Quantum Computing", "Rust",
	}
	assert.Equal(t, 100, FuturePrediction(many))
}

func TestRiskScore(t *testing.T) {
	assert.Equal(t, 10, RiskScore("Low"))
	assert.Equal(t, 50, RiskScore("Medium"))
	assert.Equal(t, 80, RiskScore("High"))
	assert.Equal(t, 50, RiskScore("unknown category"))
	assert.Equal(t, 10, RiskScore("low"))
}

func TestCareerHealthScoreClamped(t *testing.T) {
	// all sub-scores at zero with maximum risk would go negative
	assert.Equal(t, 0, CareerHealthScore(0, 0, 0, 80))

	// extreme positive inputs stay within range
	assert.Equal(t, 80, CareerHealthScore(100, 100, 100, 0))

	got := CareerHealthScore(200, 200, 200, -100)
	assert.LessOrEqual(t, got, 100)
}

func TestCareerHealthScoreFormula(t *testing.T) {
	// 0.30*80 + 0.25*60 + 0.25*50 + -0.20*10 = 24 + 15 + 12.5 - 2 = 49.5 -> 50
	assert.Equal(t, 50, CareerHealthScore(80, 60, 50, 10))
}

func TestCareerHealthDeterministic(t *testing.T) {
	skills := []string{"python", "React", "Cooking"}
	first := CareerHealth(skills, trendingFixture, "Low")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CareerHealth(skills, trendingFixture, "Low"))
	}
	assert.GreaterOrEqual(t, first.CareerHealth, 0)
	assert.LessOrEqual(t, first.CareerHealth, 100)
	assert.Equal(t, 50, first.Alignment)
}
