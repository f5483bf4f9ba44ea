// Package resume scores raw resume text with keyword and regex heuristics:
// no ML model, no external calls, deterministic for a given input.
package resume

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// RoleMatch is one role template scored against the detected skills
type RoleMatch struct {
	Role          string   `json:"role"`
	MatchPercent  int      `json:"matchPercent"`
	MissingSkills []string `json:"missingSkills"`
}

// ATSKeyword is one entry of the ATS keyword checklist
type ATSKeyword struct {
	Keyword string `json:"keyword"`
	Found   bool   `json:"found"`
}

// Analysis is the full result of analyzing one resume
type Analysis struct {
	DetectedSkills  []string     `json:"detectedSkills"`
	SkillsScore     int          `json:"skillsScore"`
	ExperienceScore int          `json:"experienceScore"`
	ProjectsScore   int          `json:"projectsScore"`
	ATSScore        int          `json:"atsScore"`
	OverallScore    int          `json:"overallScore"`
	RoleMatches     []RoleMatch  `json:"roleMatches"`
	ATSChecklist    []ATSKeyword `json:"atsChecklist"`
	Roadmap         []string     `json:"roadmap"`
}

const (
	topRoles         = 5
	missingPerRole   = 4
	maxDocumentScore = 100
)

// quantified-achievement patterns: percentages, money, multipliers
var quantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*%`),
	regexp.MustCompile(`[$€£]\s*\d+`),
	regexp.MustCompile(`(?i)\b\d+x\b`),
	regexp.MustCompile(`(?i)\b\d[\d,]*\+?\s*(users|customers|clients|downloads|requests)\b`),
}

var skillMatchers = buildSkillMatchers()

// Analyze scores resume text and matches it against the fixed role
// templates. Output is deterministic; any display-level jitter is a
// presentation concern and does not belong here.
func Analyze(text string) Analysis {
	detected, demandSum := detectSkills(text)
	lower := strings.ToLower(text)

	analysis := Analysis{
		DetectedSkills:  detected,
		SkillsScore:     skillsScore(detected, demandSum),
		ExperienceScore: experienceScore(text, lower),
		ProjectsScore:   projectsScore(lower),
	}

	analysis.ATSChecklist = atsChecklist(lower)
	analysis.ATSScore = atsScore(analysis.ATSChecklist)
	analysis.OverallScore = clamp(int(math.Round(
		0.35*float64(analysis.SkillsScore) +
			0.25*float64(analysis.ExperienceScore) +
			0.20*float64(analysis.ProjectsScore) +
			0.20*float64(analysis.ATSScore))))

	analysis.RoleMatches = matchRoles(detected)
	analysis.Roadmap = buildRoadmap(analysis.RoleMatches)

	return analysis
}

// detectSkills runs the word-boundary vocabulary matchers over the text and
// returns the detected skill names plus the sum of their demand weights
func detectSkills(text string) ([]string, int) {
	var detected []string
	demandSum := 0
	for i, m := range skillMatchers {
		if m.MatchString(text) {
			detected = append(detected, vocabulary[i].Name)
			demandSum += vocabulary[i].Demand
		}
	}
	return detected, demandSum
}

// skillsScore blends the average market demand of detected skills with a
// breadth bonus, capped to [0,100]. No skills means zero.
func skillsScore(detected []string, demandSum int) int {
	if len(detected) == 0 {
		return 0
	}
	avgDemand := float64(demandSum) / float64(len(detected))
	breadth := 5 * len(detected)
	if breadth > 30 {
		breadth = 30
	}
	return clamp(int(math.Round(0.7*avgDemand)) + breadth)
}

// experienceScore rewards quantified achievements and action verbs. A resume
// that only lists technologies scores near zero here.
func experienceScore(text, lower string) int {
	score := 0
	if strings.Contains(lower, "experience") {
		score += 15
	}
	for _, p := range quantPatterns {
		score += 12 * len(p.FindAllString(text, -1))
	}
	for _, verb := range achievementVerbs {
		if containsWord(lower, verb) {
			score += 10
		}
	}
	return clamp(score)
}

// projectsScore rewards a projects section and hands-on build language
func projectsScore(lower string) int {
	score := 0
	if strings.Contains(lower, "project") {
		score += 20
	}
	for _, verb := range projectVerbs {
		if containsWord(lower, verb) {
			score += 8
		}
	}
	return clamp(score)
}

// atsChecklist reports which structural ATS keywords appear in the text
func atsChecklist(lower string) []ATSKeyword {
	checklist := make([]ATSKeyword, len(atsKeywords))
	for i, kw := range atsKeywords {
		checklist[i] = ATSKeyword{Keyword: kw, Found: strings.Contains(lower, kw)}
	}
	return checklist
}

func atsScore(checklist []ATSKeyword) int {
	if len(checklist) == 0 {
		return 0
	}
	found := 0
	for _, kw := range checklist {
		if kw.Found {
			found++
		}
	}
	return int(math.Round(float64(found) / float64(len(checklist)) * 100))
}

// matchRoles scores every role template against the detected skills and
// returns the top matches, each with its most relevant missing skills
func matchRoles(detected []string) []RoleMatch {
	have := make(map[string]bool, len(detected))
	for _, s := range detected {
		have[strings.ToLower(s)] = true
	}

	matches := make([]RoleMatch, 0, len(roleTemplates))
	for _, tmpl := range roleTemplates {
		matched := 0
		var missing []string
		for _, req := range tmpl.Required {
			if have[strings.ToLower(req)] {
				matched++
			} else if len(missing) < missingPerRole {
				missing = append(missing, req)
			}
		}
		matches = append(matches, RoleMatch{
			Role:          tmpl.Role,
			MatchPercent:  int(math.Round(float64(matched) / float64(len(tmpl.Required)) * 100)),
			MissingSkills: missing,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercent > matches[j].MatchPercent
	})
	if len(matches) > topRoles {
		matches = matches[:topRoles]
	}
	return matches
}

// buildRoadmap fills the fixed 3-step learning template with the top role's
// missing skills
func buildRoadmap(matches []RoleMatch) []string {
	if len(matches) == 0 {
		return nil
	}
	top := matches[0]
	gap := "your core stack"
	if len(top.MissingSkills) > 0 {
		gap = strings.Join(top.MissingSkills, ", ")
	}
	return []string{
		fmt.Sprintf("Close the gap for %s: learn %s", top.Role, gap),
		fmt.Sprintf("Build 2-3 portfolio projects that showcase %s skills with measurable results", top.Role),
		fmt.Sprintf("Rewrite your resume around quantified achievements and apply for %s openings", top.Role),
	}
}

func buildSkillMatchers() []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, len(vocabulary))
	for i, term := range vocabulary {
		matchers[i] = termPattern(term.Name)
	}
	return matchers
}

// termPattern compiles a case-insensitive matcher for a vocabulary term.
// Word boundaries are only anchored against edges that are word characters,
// so terms like "C++" and ".NET" still match at line ends.
func termPattern(term string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(term)
	runes := []rune(term)
	if isWordRune(runes[0]) {
		pattern = `\b` + pattern
	}
	if isWordRune(runes[len(runes)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func containsWord(lower, word string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordRune(rune(lower[start-1]))
		afterOK := end == len(lower) || !isWordRune(rune(lower[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = end
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxDocumentScore {
		return maxDocumentScore
	}
	return v
}
