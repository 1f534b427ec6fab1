package taxonomy

// Default returns the built-in curated tables. Callers must treat the
// returned value as read-only.
func Default() *Taxonomy {
	return &Taxonomy{
		Skills: map[string][]string{
			CategoryProgrammingLanguages: {
				"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go", "Rust", "Swift", "Kotlin",
				"PHP", "Ruby", "Scala", "R", "MATLAB", "C", "Objective-C", "Dart", "Perl", "Shell",
			},
			CategoryWebTechnologies: {
				"React", "Vue.js", "Angular", "Node.js", "Express.js", "Django", "Flask", "FastAPI",
				"Spring Boot", "ASP.NET", "Ruby on Rails", "Laravel", "Next.js", "Nuxt.js", "Svelte",
				"HTML", "CSS", "SASS", "SCSS", "Bootstrap", "Tailwind CSS", "jQuery", "Webpack", "Vite",
			},
			CategoryDatabases: {
				"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "SQLite", "Oracle",
				"SQL Server", "Cassandra", "DynamoDB", "Firebase", "Supabase", "Neo4j", "MariaDB",
			},
			CategoryCloudPlatforms: {
				"AWS", "Azure", "Google Cloud", "GCP", "Heroku", "Vercel", "Netlify", "DigitalOcean",
				"Linode", "Cloudflare", "Firebase", "Supabase",
			},
			CategoryToolsFrameworks: {
				"Docker", "Kubernetes", "Jenkins", "Git", "GitHub", "GitLab", "Terraform", "Ansible",
				"Nginx", "Apache", "Linux", "Ubuntu", "CentOS", "Bash", "PowerShell", "Vim", "VS Code",
				"IntelliJ", "Eclipse", "Postman", "Swagger", "Figma", "Adobe Creative Suite",
			},
			CategorySoftSkills: {
				"Leadership", "Communication", "Teamwork", "Problem Solving", "Critical Thinking",
				"Project Management", "Agile", "Scrum", "Time Management", "Adaptability",
			},
		},

		Synonyms: map[string][]string{
			"javascript":              {"js", "ecmascript"},
			"typescript":              {"ts"},
			"react":                   {"reactjs", "react.js"},
			"vue.js":                  {"vue", "vuejs"},
			"angular":                 {"angularjs"},
			"node.js":                 {"nodejs", "node"},
			"express.js":              {"express", "expressjs"},
			"python":                  {"py"},
			"postgresql":              {"postgres", "psql"},
			"mysql":                   {"sql"},
			"mongodb":                 {"mongo"},
			"aws":                     {"amazon web services"},
			"gcp":                     {"google cloud platform", "google cloud"},
			"azure":                   {"microsoft azure"},
			"docker":                  {"containerization"},
			"kubernetes":              {"k8s"},
			"machine learning":        {"ml", "artificial intelligence", "ai"},
			"artificial intelligence": {"ai", "machine learning", "ml"},
			"rest api":                {"restful", "rest", "api"},
			"graphql":                 {"graph ql"},
		},

		ImportantSkills: []string{
			"Python", "JavaScript", "React", "Node.js", "AWS", "Docker", "Kubernetes",
			"Git", "SQL", "MongoDB", "Machine Learning", "Data Science",
		},

		RoleProfiles: []RoleProfile{
			{Name: "backend_engineer", Keywords: []string{"backend", "api", "database", "server", "microservices", "rest", "graphql", "node.js", "django", "flask", "spring"}},
			{Name: "frontend_engineer", Keywords: []string{"frontend", "react", "vue", "angular", "javascript", "typescript", "css", "html", "ui", "ux"}},
			{Name: "fullstack_engineer", Keywords: []string{"fullstack", "full-stack", "mern", "mean", "django", "rails", "end-to-end"}},
			{Name: "mobile_developer", Keywords: []string{"android", "ios", "flutter", "react native", "swift", "kotlin", "mobile"}},
			{Name: "data_scientist", Keywords: []string{"data science", "machine learning", "deep learning", "python", "r", "pandas", "numpy", "tensorflow", "pytorch"}},
			{Name: "ai_ml_engineer", Keywords: []string{"artificial intelligence", "machine learning", "deep learning", "nlp", "computer vision", "tensorflow", "pytorch", "keras"}},
			{Name: "devops_engineer", Keywords: []string{"devops", "kubernetes", "docker", "aws", "azure", "gcp", "jenkins", "ci/cd", "terraform"}},
			{Name: "qa_engineer", Keywords: []string{"testing", "automation", "selenium", "cypress", "qa", "quality assurance", "test"}},
			{Name: "product_manager", Keywords: []string{"product management", "roadmap", "stakeholder", "agile", "scrum", "product owner"}},
			{Name: "data_engineer", Keywords: []string{"data engineering", "etl", "spark", "hadoop", "kafka", "data pipeline", "big data"}},
		},

		RoleTemplates: []RoleTemplate{
			{
				RoleType:  "backend_engineer",
				Keywords:  []string{"backend", "server", "api", "microservices"},
				Required:  []string{"Python", "JavaScript", "SQL", "REST API", "Git", "Testing"},
				Preferred: []string{"Node.js", "Express.js", "FastAPI", "PostgreSQL", "Redis", "Docker", "AWS", "Microservices"},
			},
			{
				RoleType:  "frontend_engineer",
				Keywords:  []string{"frontend", "front-end", "ui", "react", "angular", "vue"},
				Required:  []string{"JavaScript", "HTML", "CSS", "React", "Git", "Testing"},
				Preferred: []string{"TypeScript", "Vue.js", "Angular", "SASS", "Webpack", "Next.js", "Redux", "Figma"},
			},
			{
				RoleType:  "fullstack_engineer",
				Keywords:  []string{"fullstack", "full-stack", "full stack"},
				Required:  []string{"JavaScript", "Python", "React", "SQL", "REST API", "Git"},
				Preferred: []string{"TypeScript", "Node.js", "PostgreSQL", "MongoDB", "Docker", "AWS", "CI/CD"},
			},
			{
				RoleType:  "devops_engineer",
				Keywords:  []string{"devops", "infrastructure", "platform", "sre", "cloud"},
				Required:  []string{"Linux", "Docker", "Kubernetes", "AWS", "Git", "Shell"},
				Preferred: []string{"Terraform", "Ansible", "Jenkins", "Monitoring", "Python", "Helm", "CI/CD"},
			},
			{
				RoleType:  "data_engineer",
				Keywords:  []string{"data engineer", "data science", "machine learning", "ml", "ai"},
				Required:  []string{"Python", "SQL", "Pandas", "Git", "Statistics"},
				Preferred: []string{"Spark", "Airflow", "Kafka", "scikit-learn", "TensorFlow", "AWS", "Docker", "Jupyter"},
			},
			{
				RoleType:  "mobile_engineer",
				Keywords:  []string{"mobile", "ios", "android", "react native", "flutter"},
				Required:  []string{"Swift", "Kotlin", "React Native", "Git", "Testing"},
				Preferred: []string{"Flutter", "Dart", "Objective-C", "Java", "Firebase", "App Store", "CI/CD"},
			},
			{
				RoleType:  "qa_engineer",
				Keywords:  []string{"qa", "test", "quality assurance"},
				Required:  []string{"Testing", "Automation", "Selenium", "Git", "SQL"},
				Preferred: []string{"Cypress", "Jest", "Postman", "Jenkins", "Python", "JavaScript", "Performance Testing"},
			},
			{
				RoleType:  "product_manager",
				Keywords:  []string{"product manager", "pm", "product owner"},
				Required:  []string{"Agile", "Scrum", "Product Management", "Analytics", "Communication"},
				Preferred: []string{"JIRA", "Figma", "SQL", "A/B Testing", "User Research", "Roadmapping", "Stakeholder Management"},
			},
			{
				RoleType:  "software_engineer",
				Keywords:  nil,
				Required:  []string{"Programming", "Git", "Testing", "Problem Solving", "Communication"},
				Preferred: []string{"JavaScript", "Python", "SQL", "Cloud Platforms", "Docker", "CI/CD", "Agile"},
			},
		},

		DegreeLadder: map[string]int{
			"Ph.D": 4, "PhD": 4, "Doctor": 4,
			"M.Tech": 3, "MTech": 3, "M.E.": 3, "ME": 3, "M.Sc": 3, "MSc": 3, "MBA": 3, "MCA": 3, "Master": 3,
			"B.Tech": 2, "BTech": 2, "B.E.": 2, "BE": 2, "B.Sc": 2, "BSc": 2, "Bachelor": 2,
			"Diploma": 1, "Certificate": 1,
		},

		CertificationProviders: []string{
			"AWS", "Microsoft", "Google", "Oracle", "Cisco", "IBM", "Salesforce", "Adobe",
			"Coursera", "Udemy", "edX", "Pluralsight", "LinkedIn Learning", "Udacity",
			"CompTIA", "PMI", "Scrum.org", "SAFe", "CISSP", "CISA", "PMP",
		},

		StrongVerbs: []string{
			"achieved", "built", "created", "designed", "developed", "directed", "established",
			"generated", "implemented", "improved", "increased", "launched", "led", "managed",
			"optimized", "organized", "produced", "reduced", "restructured", "solved",
			"streamlined", "transformed", "upgraded",
		},
		ModerateVerbs: []string{
			"administered", "analyzed", "assisted", "collaborated", "coordinated", "delivered",
			"executed", "facilitated", "maintained", "operated", "participated", "performed",
			"processed", "provided", "supported", "utilized", "worked",
		},
		WeakPhrases: []string{
			"responsible for", "duties included", "involved in", "helped with", "tasked with",
		},

		CoreSkills: []string{
			"python", "javascript", "java", "react", "node.js", "sql", "aws", "docker",
		},

		ValuableSkills: map[string]struct{}{
			"python": {}, "javascript": {}, "typescript": {}, "java": {}, "go": {}, "rust": {},
			"swift": {}, "kotlin": {}, "c++": {}, "c#": {},
			"react": {}, "vue.js": {}, "angular": {}, "node.js": {}, "express": {}, "django": {},
			"flask": {}, "spring": {}, "laravel": {},
			"postgresql": {}, "mysql": {}, "mongodb": {}, "redis": {}, "elasticsearch": {},
			"sqlite": {}, "oracle": {},
			"aws": {}, "azure": {}, "gcp": {}, "docker": {}, "kubernetes": {}, "terraform": {},
			"jenkins": {}, "github actions": {},
			"git": {}, "linux": {}, "nginx": {}, "apache": {}, "webpack": {}, "babel": {},
			"jest": {}, "cypress": {}, "postman": {},
			"leadership": {}, "communication": {}, "teamwork": {}, "agile": {}, "scrum": {},
			"project management": {},
		},
	}
}
