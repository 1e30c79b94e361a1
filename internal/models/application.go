package models

import "time"

type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

type Application struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id" bson:"_id"`
	JobID  string `gorm:"column:job_id;type:uuid;index" json:"job_id" bson:"job_id"`
	UserID string `gorm:"column:user_id;type:uuid;index" json:"user_id" bson:"user_id"`

	// nil when the candidate left it blank; stored as NULL, never "".
	CoverLetter *string `gorm:"column:cover_letter;type:text" json:"cover_letter" bson:"cover_letter"`

	Status    ApplicationStatus `gorm:"column:status;type:text" json:"status" bson:"status"`
	AppliedAt time.Time         `gorm:"column:applied_at;type:timestamptz" json:"applied_at" bson:"applied_at"`
}

func (Application) TableName() string { return "applications" }
