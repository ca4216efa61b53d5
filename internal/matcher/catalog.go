package matcher

import (
	"time"

	"resume-analyzer-go/internal/types"
)

// defaultCatalog 静态岗位目录，进程启动时初始化一次，之后只读
// PostedAt 相对进程启动时间偏移，保持目录内的先后顺序稳定
func defaultCatalog(now time.Time) []types.JobPosting {
	return []types.JobPosting{
		{
			ID:              1,
			Title:           "Senior Full Stack Developer",
			Company:         "TechCorp Inc.",
			Location:        "San Francisco, CA",
			SalaryMin:       120000,
			SalaryMax:       150000,
			RequiredSkills:  []string{"React", "Node.js", "JavaScript", "Python", "AWS", "Docker"},
			PreferredSkills: []string{"TypeScript", "Kubernetes", "PostgreSQL"},
			ExperienceYears: 5,
			JobType:         "Full-time",
			Remote:          true,
			Description:     "We're looking for a senior full stack developer to join our growing team. You'll work on cutting-edge web applications and lead technical initiatives.",
			PostedAt:        now.AddDate(0, 0, -2),
		},
		{
			ID:              2,
			Title:           "Frontend Developer",
			Company:         "StartupXYZ",
			Location:        "Austin, TX",
			SalaryMin:       80000,
			SalaryMax:       110000,
			RequiredSkills:  []string{"React", "JavaScript", "CSS", "HTML", "TypeScript"},
			PreferredSkills: []string{"Redux", "Sass", "Webpack"},
			ExperienceYears: 3,
			JobType:         "Full-time",
			Remote:          false,
			Description:     "Join our dynamic team to create amazing user experiences. Work with modern frontend technologies in an agile environment.",
			PostedAt:        now.AddDate(0, 0, -1),
		},
		{
			ID:              3,
			Title:           "Backend Engineer",
			Company:         "CloudTech Solutions",
			Location:        "Seattle, WA",
			SalaryMin:       100000,
			SalaryMax:       130000,
			RequiredSkills:  []string{"Python", "Django", "PostgreSQL", "Docker", "Kubernetes"},
			PreferredSkills: []string{"Redis", "Elasticsearch", "Terraform"},
			ExperienceYears: 4,
			JobType:         "Full-time",
			Remote:          true,
			Description:     "Build scalable backend systems for our cloud platform. Work with cutting-edge technologies and microservices architecture.",
			PostedAt:        now.AddDate(0, 0, -3),
		},
		{
			ID:              4,
			Title:           "Data Scientist",
			Company:         "AI Innovations",
			Location:        "Boston, MA",
			SalaryMin:       130000,
			SalaryMax:       160000,
			RequiredSkills:  []string{"Python", "Machine Learning", "TensorFlow", "SQL", "Pandas"},
			PreferredSkills: []string{"PyTorch", "Jupyter", "AWS", "Statistics"},
			ExperienceYears: 3,
			JobType:         "Full-time",
			Remote:          true,
			Description:     "Apply machine learning and statistical analysis to solve complex business problems. Work with large datasets and build predictive models.",
			PostedAt:        now.AddDate(0, 0, -4),
		},
		{
			ID:              5,
			Title:           "DevOps Engineer",
			Company:         "Infrastructure Pro",
			Location:        "Denver, CO",
			SalaryMin:       110000,
			SalaryMax:       140000,
			RequiredSkills:  []string{"AWS", "Docker", "Kubernetes", "Terraform", "Python"},
			PreferredSkills: []string{"Ansible", "Jenkins", "Monitoring"},
			ExperienceYears: 4,
			JobType:         "Full-time",
			Remote:          true,
			Description:     "Manage and optimize our cloud infrastructure. Implement CI/CD pipelines and ensure system reliability and scalability.",
			PostedAt:        now.AddDate(0, 0, -5),
		},
		{
			ID:              6,
			Title:           "Mobile Developer",
			Company:         "AppCraft Studios",
			Location:        "Los Angeles, CA",
			SalaryMin:       95000,
			SalaryMax:       125000,
			RequiredSkills:  []string{"React Native", "JavaScript", "iOS", "Android"},
			PreferredSkills: []string{"Flutter", "Swift", "Kotlin"},
			ExperienceYears: 3,
			JobType:         "Full-time",
			Remote:          false,
			Description:     "Develop cross-platform mobile applications for millions of users. Work with cutting-edge mobile technologies.",
			PostedAt:        now.AddDate(0, 0, -6),
		},
		{
			ID:              7,
			Title:           "Junior Software Developer",
			Company:         "TechStart Inc.",
			Location:        "Chicago, IL",
			SalaryMin:       65000,
			SalaryMax:       85000,
			RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "Git"},
			PreferredSkills: []string{"React", "Node.js", "SQL"},
			ExperienceYears: 1,
			JobType:         "Full-time",
			Remote:          true,
			Description:     "Great opportunity for junior developers to grow their skills. Mentorship program and learning opportunities available.",
			PostedAt:        now.AddDate(0, 0, -7),
		},
		{
			ID:              8,
			Title:           "UI/UX Designer",
			Company:         "DesignForward",
			Location:        "New York, NY",
			SalaryMin:       85000,
			SalaryMax:       115000,
			RequiredSkills:  []string{"Figma", "Adobe XD", "Sketch", "Prototyping"},
			PreferredSkills: []string{"User Research", "Wireframing", "HTML", "CSS"},
			ExperienceYears: 3,
			JobType:         "Full-time",
			Remote:          true,
			Description:     "Design beautiful and intuitive user interfaces. Collaborate with product and engineering teams.",
			PostedAt:        now.AddDate(0, 0, -8),
		},
	}
}
