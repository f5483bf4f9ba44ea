// Package scoring derives normalized 0-100 career metrics from a user's
// skill list and the global trending-skills table. Every function here is
// pure: same inputs, same score, no store access.
package scoring

import (
	"math"
	"strings"

	"skillsync/models"
)

// Automation risk scores per category. Unknown categories read as Medium.
const (
	riskLow    = 10
	riskMedium = 50
	riskHigh   = 80
)

// Career health weights
const (
	weightAlignment  = 0.30
	weightGrowth     = 0.25
	weightPrediction = 0.25
	weightRisk       = 0.20
)

// futureTech is the fixed allow-list feeding the future-prediction score
var futureTech = []string{
	"ai",
	"machine learning",
	"deep learning",
	"data science",
	"cloud",
	"cybersecurity",
	"blockchain",
	"devops",
	"kubernetes",
	"iot",
	"quantum",
	"ar/vr",
	"rust",
	"go",
}

// AlignmentScore is the percentage of trending skills the user also lists,
// by case-insensitive exact match: round(matched / total x 100). An empty
// trending table scores 0.
func AlignmentScore(skills []string, trending []models.TrendingSkill) int {
	if len(trending) == 0 {
		return 0
	}
	matched := 0
	for _, t := range trending {
		for _, s := range skills {
			if strings.EqualFold(s, t.Skill) {
				matched++
				break
			}
		}
	}
	return int(math.Round(float64(matched) / float64(len(trending)) * 100))
}

// SkillGrowthIndex averages the growth of the trending skills the user also
// lists (case-insensitive, substring or exact match), scaled by 2 and capped
// at 100. With no matches it defaults to 20 rather than 0, so a sparse
// profile still registers on the dashboard.
func SkillGrowthIndex(skills []string, trending []models.TrendingSkill) int {
	sum, matched := 0, 0
	for _, t := range trending {
		for _, s := range skills {
			if fuzzyMatch(s, t.Skill) {
				sum += t.Growth
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 20
	}
	index := sum / matched * 2
	if index > 100 {
		index = 100
	}
	return index
}

// FuturePrediction estimates future-readiness from the fixed future-tech
// allow-list plus a breadth bonus: min(100, 30 + 8 x futureMatches +
// min(2 x totalSkills, 20)).
func FuturePrediction(skills []string) int {
	matches := 0
	for _, s := range skills {
		for _, tech := range futureTech {
			if fuzzyMatch(s, tech) {
				matches++
				break
			}
		}
	}
	breadth := 2 * len(skills)
	if breadth > 20 {
		breadth = 20
	}
	score := 30 + 8*matches + breadth
	if score > 100 {
		score = 100
	}
	return score
}

// RiskScore maps an automation-risk category to its numeric score
func RiskScore(category string) int {
	switch strings.ToLower(category) {
	case "low":
		return riskLow
	case "high":
		return riskHigh
	default:
		return riskMedium
	}
}

// CareerHealthScore composes the weighted sub-scores into one 0-100 value:
// clamp(0, 100, round(0.30 x alignment + 0.25 x SGI + 0.25 x FP - 0.20 x risk))
func CareerHealthScore(alignment, growthIndex, futurePrediction, riskScore int) int {
	raw := weightAlignment*float64(alignment) +
		weightGrowth*float64(growthIndex) +
		weightPrediction*float64(futurePrediction) -
		weightRisk*float64(riskScore)

	score := int(math.Round(raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Report bundles the composite score with the sub-scores it was built from
type Report struct {
	Alignment        int    `json:"alignment"`
	SkillGrowthIndex int    `json:"skillGrowthIndex"`
	FuturePrediction int    `json:"futurePrediction"`
	RiskCategory     string `json:"riskCategory"`
	RiskScore        int    `json:"riskScore"`
	CareerHealth     int    `json:"careerHealth"`
}

// CareerHealth computes the full report for a skill list, trending table and
// automation-risk category. The alignment term is recomputed here rather than
// read from the cached User value, so the report always reflects the inputs
// it was given.
func CareerHealth(skills []string, trending []models.TrendingSkill, riskCategory string) Report {
	alignment := AlignmentScore(skills, trending)
	growth := SkillGrowthIndex(skills, trending)
	future := FuturePrediction(skills)
	risk := RiskScore(riskCategory)

	return Report{
		Alignment:        alignment,
		SkillGrowthIndex: growth,
		FuturePrediction: future,
		RiskCategory:     riskCategory,
		RiskScore:        risk,
		CareerHealth:     CareerHealthScore(alignment, growth, future, risk),
	}
}

// fuzzyMatch reports whether two skill names refer to the same skill by
// case-insensitive exact or substring comparison
func fuzzyMatch(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return la == lb || strings.Contains(la, lb) || strings.Contains(lb, la)
}
