package models

type Company struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id,omitempty" bson:"_id"`
	Name        string `gorm:"column:name;type:text" json:"name" bson:"name"`
	Description string `gorm:"column:description;type:text" json:"description" bson:"description"`
	Website     string `gorm:"column:website;type:text" json:"website" bson:"website"`
	Location    string `gorm:"column:location;type:text" json:"location" bson:"location"`
	Industry    string `gorm:"column:industry;type:text" json:"industry" bson:"industry"`
	Size        string `gorm:"column:size;type:text" json:"size" bson:"size"` // e.g. "100-500", "1000+"
	LogoURL     string `gorm:"column:logo_url;type:text" json:"logo_url" bson:"logo_url"`
}

func (Company) TableName() string { return "companies" }
