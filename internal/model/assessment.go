package model

import (
	"time"

	"gorm.io/datatypes"
)

type AssessmentStatus string

const (
	AssessmentInProgress AssessmentStatus = "IN_PROGRESS"
	AssessmentCompleted  AssessmentStatus = "COMPLETED"
)

// Assessment is one evaluation run of one application. CalculatedScore is
// only meaningful once Status is COMPLETED.
// swagger:model Assessment
type Assessment struct {
	UUIDBase
	ApplicationID   string             `gorm:"index;type:varchar(36);not null" json:"applicationId"`
	TemplateID      *uint              `gorm:"index" json:"templateId,omitempty"`
	Status          AssessmentStatus   `gorm:"size:20;default:'IN_PROGRESS';index" json:"status"`
	StartedAt       time.Time          `json:"startedAt"`
	FinishedAt      *time.Time         `json:"finishedAt,omitempty"`
	CalculatedScore *float64           `gorm:"type:decimal(6,2)" json:"calculatedScore,omitempty"`
	Answers         []AssessmentAnswer `gorm:"foreignKey:AssessmentID" json:"answers,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// AssessmentAnswer holds one answer per (assessment, question); a later
// answer to the same question overwrites the earlier one. ScoreAwarded is
// snapshotted from the option at write time so later edits to option
// scoring never change history.
type AssessmentAnswer struct {
	BaseModel
	AssessmentID     string `gorm:"uniqueIndex:idx_assessment_question;type:varchar(36);not null" json:"assessmentId"`
	QuestionID       uint   `gorm:"uniqueIndex:idx_assessment_question;not null" json:"questionId"`
	SelectedOptionID uint   `gorm:"not null" json:"selectedOptionId"`
	ScoreAwarded     int    `gorm:"default:0" json:"scoreAwarded"`
}

func (AssessmentAnswer) TableName() string {
	return "assessment_answers"
}

// AssessmentDiagnosis is the persisted output of a finalize call, one per
// assessment, replaced wholesale on re-finalization.
// swagger:model AssessmentDiagnosis
type AssessmentDiagnosis struct {
	BaseModel
	AssessmentID  string         `gorm:"uniqueIndex;type:varchar(36);not null" json:"assessmentId"`
	MaturityLevel string         `gorm:"size:50;not null" json:"maturityLevel"`
	RiskLabel     string         `gorm:"size:50;not null" json:"riskLabel"`
	AxisAnalysis  datatypes.JSON `gorm:"type:json" json:"axisAnalysis"`
	ActionPlan    datatypes.JSON `gorm:"type:json" json:"actionPlan"`
}

func (AssessmentDiagnosis) TableName() string {
	return "assessment_diagnosis"
}

// AxisScore is one per-section aggregate inside a diagnosis.
type AxisScore struct {
	SectionID uint    `json:"sectionId"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
}
