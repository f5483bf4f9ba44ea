package resume

// roleTemplate defines one target role and the skills it requires. Match
// percentage is matched/required x 100.
type roleTemplate struct {
	Role     string
	Required []string
}

// roleTemplates is the fixed set of roles resumes are matched against
var roleTemplates = []roleTemplate{
	{
		Role:     "Frontend Developer",
		Required: []string{"JavaScript", "HTML", "CSS", "React", "TypeScript", "Redux"},
	},
	{
		Role:     "Backend Developer",
		Required: []string{"Python", "SQL", "REST", "Node.js", "PostgreSQL", "Microservices"},
	},
	{
		Role:     "Full Stack Developer",
		Required: []string{"JavaScript", "React", "Node.js", "SQL", "HTML", "CSS", "Git"},
	},
	{
		Role:     "Data Scientist",
		Required: []string{"Python", "Machine Learning", "Statistics", "Pandas", "SQL", "Deep Learning"},
	},
	{
		Role:     "Data Analyst",
		Required: []string{"SQL", "Excel", "Python", "Tableau", "Data Analysis", "Statistics"},
	},
	{
		Role:     "DevOps Engineer",
		Required: []string{"Docker", "Kubernetes", "CI/CD", "AWS", "Linux", "Terraform"},
	},
	{
		Role:     "Machine Learning Engineer",
		Required: []string{"Python", "Machine Learning", "PyTorch", "TensorFlow", "Docker", "SQL"},
	},
	{
		Role:     "Cloud Engineer",
		Required: []string{"AWS", "Azure", "Terraform", "Docker", "Linux", "Serverless"},
	},
	{
		Role:     "Cybersecurity Analyst",
		Required: []string{"Cybersecurity", "Network Security", "Linux", "Penetration Testing", "SIEM", "Python"},
	},
	{
		Role:     "Mobile Developer",
		Required: []string{"Flutter", "React Native", "Android", "iOS", "Kotlin", "Swift"},
	},
}
