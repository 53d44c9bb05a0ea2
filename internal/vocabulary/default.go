package vocabulary

// defaultCategories is the built-in job category table.
var defaultCategories = []Category{
	{
		Name:        "Backend Developer",
		Description: "Develops server-side applications, APIs, databases, and system architecture",
		Keywords: []string{
			"python", "java", "nodejs", "django", "flask", "spring", "api", "database",
			"mongodb", "postgresql", "mysql", "redis", "microservices", "docker", "rest", "graphql",
		},
		Weight: 1.0,
	},
	{
		Name:        "Frontend Developer",
		Description: "Creates user interfaces and client-side applications",
		Keywords: []string{
			"react", "angular", "vue", "javascript", "typescript", "html", "css", "sass",
			"webpack", "bootstrap", "tailwind", "jquery", "nextjs", "nuxtjs", "responsive",
		},
		Weight: 1.0,
	},
	{
		Name:        "Full Stack Developer",
		Description: "Works on both frontend and backend development",
		Keywords: []string{
			"react", "nodejs", "python", "javascript", "api", "database", "html", "css",
			"mongodb", "postgresql", "fullstack", "end-to-end",
		},
		Weight: 1.2,
	},
	{
		Name:        "Data Scientist",
		Description: "Analyzes data to extract insights and build predictive models",
		Keywords: []string{
			"python", "r", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "matplotlib",
			"seaborn", "jupyter", "machine learning", "statistics", "data analysis", "visualization",
		},
		Weight: 1.0,
	},
	{
		Name:        "Machine Learning Engineer",
		Description: "Builds and deploys machine learning models and systems",
		Keywords: []string{
			"python", "tensorflow", "pytorch", "scikit-learn", "mlops", "docker", "kubernetes", "aws",
			"machine learning", "deep learning", "neural networks", "model deployment",
		},
		Weight: 1.0,
	},
	{
		Name:        "DevOps Engineer",
		Description: "Manages infrastructure, deployment pipelines, and system operations",
		Keywords: []string{
			"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ansible", "jenkins",
			"gitlab", "ci/cd", "linux", "bash", "monitoring", "infrastructure",
		},
		Weight: 1.0,
	},
	{
		Name:        "Mobile Developer",
		Description: "Develops applications for mobile platforms",
		Keywords: []string{
			"react native", "flutter", "swift", "kotlin", "android", "ios", "xamarin", "mobile",
			"app development",
		},
		Weight: 1.0,
	},
	{
		Name:        "Data Engineer",
		Description: "Builds data pipelines and manages data infrastructure",
		Keywords: []string{
			"python", "sql", "spark", "hadoop", "kafka", "airflow", "etl", "data pipeline",
			"big data", "aws", "snowflake", "databricks",
		},
		Weight: 1.0,
	},
	{
		Name:        "UI/UX Designer",
		Description: "Designs user interfaces and user experiences",
		Keywords: []string{
			"figma", "sketch", "adobe xd", "photoshop", "illustrator", "wireframing", "prototyping",
			"user research", "design thinking", "usability",
		},
		Weight: 1.0,
	},
	{
		Name:        "QA Engineer",
		Description: "Tests software applications and ensures quality",
		Keywords: []string{
			"selenium", "cypress", "jest", "junit", "testing", "automation", "manual testing",
			"api testing", "performance testing", "quality assurance",
		},
		Weight: 1.0,
	},
}

var defaultVocabulary = MustNew(defaultCategories)

// Default returns the built-in vocabulary. The returned value is shared and
// read-only.
func Default() *Vocabulary {
	return defaultVocabulary
}
