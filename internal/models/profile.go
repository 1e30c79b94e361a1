package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid-level"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior, LevelExecutive:
		return true
	}
	return false
}

// Profile is the candidate record, one per auth user.
type Profile struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id" bson:"_id"`
	UserID   string `gorm:"column:user_id;type:uuid;uniqueIndex" json:"user_id" bson:"user_id"`
	FullName string `gorm:"column:full_name;type:text" json:"full_name" bson:"full_name"`
	Email    string `gorm:"column:email;type:text" json:"email" bson:"email"` // immutable after creation

	Phone    string `gorm:"column:phone;type:text" json:"phone" bson:"phone"`
	Location string `gorm:"column:location;type:text" json:"location" bson:"location"`

	Skills          pq.StringArray  `gorm:"column:skills;type:text[]" json:"skills" bson:"skills"`
	ExperienceLevel ExperienceLevel `gorm:"column:experience_level;type:text" json:"experience_level" bson:"experience_level"`
	ResumeURL       string          `gorm:"column:resume_url;type:text" json:"resume_url" bson:"resume_url"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at" bson:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// NewDefaultProfile builds the record created on first visit.
func NewDefaultProfile(id Identity) *Profile {
	return &Profile{
		UserID:          id.UserID,
		FullName:        id.FullName,
		Email:           id.Email,
		Skills:          pq.StringArray{},
		ExperienceLevel: LevelEntry,
	}
}

// AddSkill appends the trimmed candidate unless it is empty or already present.
// Comparison is exact, no case folding.
func (p *Profile) AddSkill(candidate string) bool {
	s := strings.TrimSpace(candidate)
	if s == "" || p.HasSkill(s) {
		return false
	}
	p.Skills = append(p.Skills, s)
	return true
}

// RemoveSkill drops every occurrence of skill and reports whether anything changed.
func (p *Profile) RemoveSkill(skill string) bool {
	out := p.Skills[:0:0]
	for _, s := range p.Skills {
		if s != skill {
			out = append(out, s)
		}
	}
	removed := len(out) != len(p.Skills)
	if removed {
		p.Skills = out
	}
	return removed
}

func (p *Profile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with p.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Skills = append(pq.StringArray{}, p.Skills...)
	return &cp
}

// UpdateColumns lists the columns written on save. Email is never part of it.
func (p *Profile) UpdateColumns(now time.Time) map[string]any {
	skills := p.Skills
	if skills == nil {
		skills = pq.StringArray{}
	}
	return map[string]any{
		"full_name":        p.FullName,
		"phone":            p.Phone,
		"location":         p.Location,
		"skills":           skills,
		"experience_level": string(p.ExperienceLevel),
		"resume_url":       p.ResumeURL,
		"updated_at":       now,
	}
}
