package model

// swagger:model BusinessArea
type BusinessArea struct {
	UUIDBase
	CompanyID   string            `gorm:"index;type:varchar(36);not null" json:"companyId"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	SubAreas    []BusinessSubArea `gorm:"foreignKey:AreaID" json:"subAreas"`
}

func (BusinessArea) TableName() string {
	return "business_areas"
}

type BusinessSubArea struct {
	UUIDBase
	AreaID string `gorm:"index;type:varchar(36);not null" json:"areaId"`
	Name   string `gorm:"size:255;not null" json:"name"`
}

func (BusinessSubArea) TableName() string {
	return "business_sub_areas"
}
