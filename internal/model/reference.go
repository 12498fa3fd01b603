package model

// Reference lookup tables used to classify people. Seeded at migration
// time and managed outside the assessment flow.

// swagger:model RefArchetype
type RefArchetype struct {
	BaseModel
	Label       string `gorm:"size:100;not null" json:"label"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (RefArchetype) TableName() string {
	return "ref_archetypes"
}

// swagger:model RefTechLevel
type RefTechLevel struct {
	BaseModel
	Label       string `gorm:"size:100;not null" json:"label"`
	LevelNumber int    `gorm:"default:0" json:"levelNumber"`
}

func (RefTechLevel) TableName() string {
	return "ref_tech_levels"
}

// swagger:model RefBusinessLevel
type RefBusinessLevel struct {
	BaseModel
	Label       string `gorm:"size:100;not null" json:"label"`
	LevelNumber int    `gorm:"default:0" json:"levelNumber"`
}

func (RefBusinessLevel) TableName() string {
	return "ref_business_levels"
}
