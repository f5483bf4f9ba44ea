package resume

// skillTerm is one entry of the detection vocabulary. Demand is the market
// demand weight (0-100) feeding the skills sub-score.
type skillTerm struct {
	Name   string
	Demand int
}

// vocabulary is the fixed skill list resumes are matched against. Matching is
// case-insensitive with word boundaries, so "Java" does not fire on
// "JavaScript".
var vocabulary = []skillTerm{
	// Languages
	{"Python", 95},
	{"JavaScript", 92},
	{"TypeScript", 88},
	{"Java", 85},
	{"C++", 78},
	{"C#", 76},
	{"Go", 84},
	{"Rust", 80},
	{"Kotlin", 72},
	{"Swift", 70},
	{"PHP", 60},
	{"Ruby", 58},
	{"Scala", 62},
	{"R", 64},
	{"MATLAB", 52},
	{"Perl", 40},
	{"Dart", 58},
	{"Objective-C", 42},
	{"Bash", 66},
	{"PowerShell", 54},
	{"SQL", 90},
	{"HTML", 70},
	{"CSS", 70},
	{"Sass", 55},

	// Frontend
	{"React", 93},
	{"Angular", 75},
	{"Vue", 72},
	{"Next.js", 82},
	{"Svelte", 60},
	{"Redux", 68},
	{"jQuery", 45},
	{"Tailwind", 66},
	{"Bootstrap", 55},
	{"Webpack", 58},
	{"Vite", 60},

	// Backend & APIs
	{"Node.js", 86},
	{"Express", 74},
	{"Django", 76},
	{"Flask", 70},
	{"FastAPI", 75},
	{"Spring", 78},
	{"Spring Boot", 78},
	{"Laravel", 56},
	{"Rails", 54},
	{".NET", 68},
	{"GraphQL", 72},
	{"REST", 80},
	{"gRPC", 64},
	{"Microservices", 78},
	{"WebSockets", 58},

	// Data & ML
	{"Machine Learning", 96},
	{"Deep Learning", 90},
	{"Data Science", 92},
	{"Data Analysis", 85},
	{"Data Engineering", 84},
	{"NLP", 82},
	{"Computer Vision", 80},
	{"TensorFlow", 82},
	{"PyTorch", 86},
	{"Keras", 68},
	{"Scikit-learn", 76},
	{"Pandas", 80},
	{"NumPy", 76},
	{"Matplotlib", 60},
	{"Tableau", 70},
	{"Power BI", 72},
	{"Excel", 55},
	{"Statistics", 74},
	{"Big Data", 72},
	{"Spark", 74},
	{"Hadoop", 56},
	{"Airflow", 66},
	{"ETL", 68},
	{"LLM", 85},
	{"Generative AI", 88},
	{"Prompt Engineering", 70},

	// Databases
	{"PostgreSQL", 84},
	{"MySQL", 78},
	{"MongoDB", 76},
	{"Redis", 74},
	{"SQLite", 60},
	{"Elasticsearch", 68},
	{"Cassandra", 56},
	{"DynamoDB", 62},
	{"Oracle", 52},
	{"Firebase", 64},

	// Cloud & DevOps
	{"AWS", 92},
	{"Azure", 85},
	{"GCP", 80},
	{"Cloud Computing", 86},
	{"Docker", 88},
	{"Kubernetes", 86},
	{"Terraform", 78},
	{"Ansible", 62},
	{"Jenkins", 64},
	{"CI/CD", 80},
	{"DevOps", 84},
	{"Linux", 78},
	{"Nginx", 58},
	{"Serverless", 66},
	{"Lambda", 64},
	{"CloudFormation", 56},
	{"Prometheus", 62},
	{"Grafana", 60},
	{"Git", 82},
	{"GitHub", 70},
	{"GitLab", 58},

	// Security
	{"Cybersecurity", 84},
	{"Penetration Testing", 72},
	{"Network Security", 70},
	{"Cryptography", 62},
	{"OWASP", 58},
	{"SIEM", 56},
	{"Ethical Hacking", 64},

	// Mobile
	{"Android", 70},
	{"iOS", 68},
	{"React Native", 72},
	{"Flutter", 74},

	// Practices & other
	{"Agile", 68},
	{"Scrum", 64},
	{"Kanban", 50},
	{"Jira", 56},
	{"TDD", 62},
	{"Unit Testing", 66},
	{"Selenium", 58},
	{"Cypress", 56},
	{"Design Patterns", 62},
	{"System Design", 78},
	{"OOP", 64},
	{"Data Structures", 72},
	{"Algorithms", 74},
	{"Blockchain", 66},
	{"Solidity", 54},
	{"IoT", 60},
	{"AR/VR", 56},
	{"Unity", 52},
	{"Figma", 60},
	{"UI/UX", 68},
	{"Product Management", 62},
	{"Project Management", 60},
	{"Communication", 55},
	{"Leadership", 58},
	{"Problem Solving", 60},
	{"Team Management", 56},
	{"Public Speaking", 45},
	{"Technical Writing", 50},
}

// atsKeywords is the fixed checklist of structural keywords ATS systems look
// for; each is reported found/not-found and drives the ATS sub-score.
var atsKeywords = []string{
	"experience",
	"education",
	"skills",
	"projects",
	"achievements",
	"certifications",
	"summary",
	"internship",
	"leadership",
	"volunteer",
}

// achievementVerbs flag quantified-achievement language in experience
// sections
var achievementVerbs = []string{
	"increased",
	"decreased",
	"improved",
	"reduced",
	"led",
	"managed",
	"delivered",
	"achieved",
	"launched",
	"optimized",
	"scaled",
	"grew",
	"saved",
	"generated",
}

// projectVerbs flag hands-on build language in project sections
var projectVerbs = []string{
	"built",
	"developed",
	"created",
	"designed",
	"implemented",
	"architected",
	"deployed",
	"automated",
	"integrated",
	"published",
}
