package models

import (
	"fmt"

	"github.com/lib/pq"
)

const (
	EmploymentFullTime  = "full-time"
	EmploymentPartTime  = "part-time"
	EmploymentContract  = "contract"
	EmploymentFreelance = "freelance"
)

type Job struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id,omitempty" bson:"_id"`
	CompanyID   string `gorm:"column:company_id;type:uuid;index" json:"company_id" bson:"company_id"`
	Title       string `gorm:"column:title;type:text" json:"title" bson:"title"`
	Description string `gorm:"column:description;type:text" json:"description" bson:"description"`

	Requirements pq.StringArray `gorm:"column:requirements;type:text[]" json:"requirements" bson:"requirements"`
	Benefits     pq.StringArray `gorm:"column:benefits;type:text[]" json:"benefits" bson:"benefits"`

	SalaryMin int `gorm:"column:salary_min" json:"salary_min" bson:"salary_min"`
	SalaryMax int `gorm:"column:salary_max" json:"salary_max" bson:"salary_max"`

	Location        string          `gorm:"column:location;type:text" json:"location" bson:"location"`
	EmploymentType  string          `gorm:"column:employment_type;type:text" json:"employment_type" bson:"employment_type"`
	ExperienceLevel ExperienceLevel `gorm:"column:experience_level;type:text" json:"experience_level" bson:"experience_level"`
	SkillsRequired  pq.StringArray  `gorm:"column:skills_required;type:text[]" json:"skills_required" bson:"skills_required"`

	IsRemote bool `gorm:"column:is_remote" json:"is_remote" bson:"is_remote"`
	IsActive bool `gorm:"column:is_active;index" json:"is_active" bson:"is_active"`
}

func (Job) TableName() string { return "jobs" }

func (j *Job) Validate() error {
	if j.CompanyID == "" {
		return fmt.Errorf("job %q: company_id is required", j.Title)
	}
	if j.SalaryMin > j.SalaryMax {
		return fmt.Errorf("job %q: salary_min %d > salary_max %d", j.Title, j.SalaryMin, j.SalaryMax)
	}
	return nil
}
