package model

// AssessmentSection groups questions into a thematic axis used for
// sub-scoring.
// swagger:model AssessmentSection
type AssessmentSection struct {
	BaseModel
	Title string `gorm:"size:255;not null" json:"title"`
}

func (AssessmentSection) TableName() string {
	return "assessment_sections"
}

// swagger:model Question
type Question struct {
	BaseModel
	Text       string             `gorm:"type:text;not null" json:"text"`
	OrderIndex int                `gorm:"default:0;index" json:"orderIndex"`
	SectionID  uint               `gorm:"index" json:"sectionId"`
	Section    *AssessmentSection `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Options    []QuestionOption   `gorm:"foreignKey:QuestionID" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionOption is one of the mutually exclusive choices of a question.
// ScoreValue is on a fixed 0-100 scale.
// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	ScoreValue int    `gorm:"default:0" json:"scoreValue"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}

// AssessmentTemplate is a versioned snapshot of which question set is
// active for new assessments. The active template is the highest
// version_number among rows flagged is_active.
// swagger:model AssessmentTemplate
type AssessmentTemplate struct {
	BaseModel
	Name          string `gorm:"size:255;not null" json:"name"`
	VersionNumber int    `gorm:"default:1;index" json:"versionNumber"`
	IsActive      bool   `gorm:"default:true" json:"isActive"`
}

func (AssessmentTemplate) TableName() string {
	return "assessment_templates"
}
