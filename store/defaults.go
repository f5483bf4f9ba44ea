package store

import "skillsync/models"

// Seeded catalog collections. These are what a fresh (or corrupted)
// installation serves before an admin edits anything; user-generated
// collections (users, courses, results, ...) default to empty instead.

var defaultTrendingSkills = []models.TrendingSkill{
	{Skill: "Python", Growth: 85},
	{Skill: "JavaScript", Growth: 78},
	{Skill: "React", Growth: 80},
	{Skill: "Machine Learning", Growth: 92},
	{Skill: "Data Analysis", Growth: 75},
	{Skill: "Cloud Computing", Growth: 88},
	{Skill: "Cybersecurity", Growth: 82},
	{Skill: "SQL", Growth: 65},
	{Skill: "DevOps", Growth: 79},
	{Skill: "UI/UX Design", Growth: 70},
}

var defaultDomains = []string{
	"Web Development",
	"Data Science",
	"AI/ML",
	"Cybersecurity",
	"Cloud Computing",
	"Mobile Development",
}

var defaultRoadmaps = map[string][]string{
	"Web Development": {
		"Learn HTML, CSS and JavaScript fundamentals",
		"Build projects with a frontend framework like React",
		"Pick up a backend stack and databases, then deploy full apps",
	},
	"Data Science": {
		"Master Python, statistics and SQL",
		"Practice data wrangling and visualization on real datasets",
		"Learn machine learning basics and publish portfolio projects",
	},
	"AI/ML": {
		"Strengthen linear algebra, probability and Python",
		"Work through classical ML, then deep learning frameworks",
		"Build and deploy end-to-end models",
	},
	"Cybersecurity": {
		"Understand networking and operating system internals",
		"Learn common attack classes and defensive tooling",
		"Practice on labs and work toward an entry certification",
	},
	"Cloud Computing": {
		"Learn core services of one major cloud provider",
		"Practice infrastructure as code and containerization",
		"Design and deploy a resilient multi-service system",
	},
	"Mobile Development": {
		"Pick a platform and learn its language and UI toolkit",
		"Build small apps end to end, including persistence",
		"Ship an app and learn release and monitoring workflows",
	},
}

// Risk categories per domain; mapped to numeric scores by the scoring package
var defaultAutomationRisk = map[string]string{
	"Web Development":    "Medium",
	"Data Science":       "Low",
	"AI/ML":              "Low",
	"Cybersecurity":      "Low",
	"Cloud Computing":    "Low",
	"Mobile Development": "Medium",
}
