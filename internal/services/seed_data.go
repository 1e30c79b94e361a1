package services

import (
	"github.com/lib/pq"
	"github.com/yoockh/jobboard/internal/models"
)

// SampleCompanies returns the demo companies in insertion order.
func SampleCompanies() []models.Company {
	return []models.Company{
		{
			Name:        "TechCorp Solutions",
			Description: "Leading technology consulting firm specializing in digital transformation and cloud solutions",
			Website:     "https://techcorp.com",
			Location:    "San Francisco, CA",
			Industry:    "Technology",
			Size:        "500-1000",
			LogoURL:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=100&h=100&fit=crop&crop=center",
		},
		{
			Name:        "GreenEnergy Inc",
			Description: "Renewable energy company focused on sustainable solutions and environmental impact",
			Website:     "https://greenenergy.com",
			Location:    "Austin, TX",
			Industry:    "Energy",
			Size:        "100-500",
			LogoURL:     "https://images.unsplash.com/photo-1466611653911-95081537e5b7?w=100&h=100&fit=crop&crop=center",
		},
		{
			Name:        "FinanceFirst",
			Description: "Premier financial services and investment firm with global reach",
			Website:     "https://financefirst.com",
			Location:    "New York, NY",
			Industry:    "Finance",
			Size:        "1000+",
			LogoURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=100&h=100&fit=crop&crop=center",
		},
		{
			Name:        "HealthTech Innovations",
			Description: "Healthcare technology startup revolutionizing patient care through AI",
			Website:     "https://healthtech.com",
			Location:    "Boston, MA",
			Industry:    "Healthcare",
			Size:        "50-100",
			LogoURL:     "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=100&h=100&fit=crop&crop=center",
		},
		{
			Name:        "DataDriven Analytics",
			Description: "Advanced analytics and machine learning solutions for enterprise clients",
			Website:     "https://datadriven.com",
			Location:    "Seattle, WA",
			Industry:    "Technology",
			Size:        "100-500",
			LogoURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=100&h=100&fit=crop&crop=center",
		},
	}
}

// SampleJobs builds the demo jobs. Job i belongs to companies[i], wrapping
// around when fewer companies exist. The pairing is by position only, so a
// store whose companies come back in another order gets other owners.
func SampleJobs(companies []models.Company) []models.Job {
	if len(companies) == 0 {
		return nil
	}
	owner := func(i int) string { return companies[i%len(companies)].ID }

	return []models.Job{
		{
			CompanyID:       owner(0),
			Title:           "Senior Frontend Developer",
			Description:     "Join our dynamic team to build cutting-edge web applications using modern technologies. You will work on challenging projects that impact millions of users worldwide.",
			Requirements:    pq.StringArray{"5+ years React experience", "TypeScript proficiency", "Modern CSS frameworks", "Git version control"},
			Benefits:        pq.StringArray{"Health insurance", "Remote work options", "401k matching", "Professional development budget"},
			SalaryMin:       90000,
			SalaryMax:       130000,
			Location:        "San Francisco, CA",
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.LevelSenior,
			SkillsRequired:  pq.StringArray{"React", "TypeScript", "CSS", "JavaScript"},
			IsRemote:        true,
			IsActive:        true,
		},
		{
			CompanyID:       owner(1),
			Title:           "Marketing Manager",
			Description:     "Lead our marketing initiatives to promote sustainable energy solutions. Drive campaigns that make a real environmental impact.",
			Requirements:    pq.StringArray{"3+ years marketing experience", "Digital marketing expertise", "Campaign management", "Analytics tools"},
			Benefits:        pq.StringArray{"Health insurance", "Flexible hours", "Stock options", "Green commute benefits"},
			SalaryMin:       65000,
			SalaryMax:       85000,
			Location:        "Austin, TX",
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.LevelMid,
			SkillsRequired:  pq.StringArray{"Marketing", "Digital Marketing", "Analytics"},
			IsRemote:        false,
			IsActive:        true,
		},
		{
			CompanyID:       owner(2),
			Title:           "Data Scientist",
			Description:     "Analyze financial data to drive investment decisions and risk assessment. Work with large datasets and cutting-edge ML models.",
			Requirements:    pq.StringArray{"Masters in Data Science or related field", "Python/R proficiency", "Machine learning experience", "Financial domain knowledge"},
			Benefits:        pq.StringArray{"Competitive salary", "Bonus structure", "Health insurance", "Learning stipend"},
			SalaryMin:       100000,
			SalaryMax:       150000,
			Location:        "New York, NY",
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.LevelSenior,
			SkillsRequired:  pq.StringArray{"Python", "Machine Learning", "SQL", "Statistics"},
			IsRemote:        false,
			IsActive:        true,
		},
		{
			CompanyID:       owner(3),
			Title:           "UX Designer",
			Description:     "Design intuitive healthcare applications that improve patient outcomes. Collaborate with medical professionals and developers.",
			Requirements:    pq.StringArray{"3+ years UX design experience", "Healthcare domain knowledge preferred", "Figma/Sketch proficiency", "User research skills"},
			Benefits:        pq.StringArray{"Health insurance", "Remote work", "Design conference budget", "Wellness programs"},
			SalaryMin:       70000,
			SalaryMax:       95000,
			Location:        "Boston, MA",
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.LevelMid,
			SkillsRequired:  pq.StringArray{"UX Design", "Figma", "User Research"},
			IsRemote:        true,
			IsActive:        true,
		},
		{
			CompanyID:       owner(4),
			Title:           "Junior Backend Developer",
			Description:     "Start your career building scalable backend systems for data processing and analytics platforms.",
			Requirements:    pq.StringArray{"Computer Science degree or bootcamp", "Basic programming skills", "Database knowledge", "Eagerness to learn"},
			Benefits:        pq.StringArray{"Mentorship program", "Health insurance", "Flexible hours", "Learning budget"},
			SalaryMin:       55000,
			SalaryMax:       75000,
			Location:        "Seattle, WA",
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.LevelEntry,
			SkillsRequired:  pq.StringArray{"Python", "SQL", "APIs"},
			IsRemote:        false,
			IsActive:        true,
		},
	}
}
