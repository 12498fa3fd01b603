package model

// swagger:model Person
type Person struct {
	UUIDBase
	CompanyID       string            `gorm:"index;type:varchar(36);not null" json:"companyId"`
	Name            string            `gorm:"size:255;not null" json:"name"`
	Email           string            `gorm:"size:255" json:"email,omitempty"`
	JobTitle        string            `gorm:"size:255" json:"jobTitle,omitempty"`
	Phone           string            `gorm:"size:50" json:"phone,omitempty"`
	ArchetypeID     *uint             `gorm:"index" json:"archetypeId,omitempty"`
	TechLevelID     *uint             `gorm:"index" json:"techLevelId,omitempty"`
	BusinessLevelID *uint             `gorm:"index" json:"businessLevelId,omitempty"`
	Archetype       *RefArchetype     `gorm:"foreignKey:ArchetypeID" json:"archetype,omitempty"`
	TechLevel       *RefTechLevel     `gorm:"foreignKey:TechLevelID" json:"technicalLevel,omitempty"`
	BusinessLevel   *RefBusinessLevel `gorm:"foreignKey:BusinessLevelID" json:"businessLevel,omitempty"`
}

func (Person) TableName() string {
	return "people"
}
