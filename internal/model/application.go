package model

// swagger:model Application
type Application struct {
	UUIDBase
	CompanyID   string   `gorm:"index;type:varchar(36);not null" json:"companyId"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Company     *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
