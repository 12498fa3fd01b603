package repository

import (
	"ai_maturity_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction
// handle, so finalize can run every step on one connection.
func (r *AssessmentRepository) WithTx(tx *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: tx}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Answers").First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindInProgressByApplication returns the open assessment for an
// application, if any. At most one is expected by the resume policy.
func (r *AssessmentRepository) FindInProgressByApplication(applicationID string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Answers").
		Where("application_id = ? AND status = ?", applicationID, model.AssessmentInProgress).
		Order("started_at desc").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpsertAnswer writes one answer keyed by (assessment_id, question_id).
// The composite-key conflict resolution makes concurrent saves for the
// same question last-committed-wins.
func (r *AssessmentRepository) UpsertAnswer(ans *model.AssessmentAnswer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"selected_option_id",
			"score_awarded",
			"updated_at",
		}),
	}).Create(ans).Error
}

func (r *AssessmentRepository) ListAnswers(assessmentID string) ([]model.AssessmentAnswer, error) {
	var answers []model.AssessmentAnswer
	err := r.DB.Where("assessment_id = ?", assessmentID).Find(&answers).Error
	return answers, err
}

// ScoredAnswer is one answer joined with its question's owning section,
// the shape the scoring engine consumes.
type ScoredAnswer struct {
	QuestionID   uint   `gorm:"column:question_id"`
	ScoreAwarded int    `gorm:"column:score_awarded"`
	SectionID    uint   `gorm:"column:section_id"`
	SectionTitle string `gorm:"column:section_title"`
}

func (r *AssessmentRepository) ListScoredAnswers(assessmentID string) ([]ScoredAnswer, error) {
	var rows []ScoredAnswer
	err := r.DB.Table("assessment_answers").
		Select("assessment_answers.question_id, assessment_answers.score_awarded, questions.section_id, assessment_sections.title as section_title").
		Joins("JOIN questions ON questions.id = assessment_answers.question_id").
		Joins("LEFT JOIN assessment_sections ON assessment_sections.id = questions.section_id").
		Where("assessment_answers.assessment_id = ?", assessmentID).
		Where("assessment_answers.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}

// UpsertDiagnosis replaces the diagnosis for an assessment wholesale.
// Re-finalization overwrites, never duplicates.
func (r *AssessmentRepository) UpsertDiagnosis(d *model.AssessmentDiagnosis) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assessment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"maturity_level",
			"risk_label",
			"axis_analysis",
			"action_plan",
			"updated_at",
		}),
	}).Create(d).Error
}

func (r *AssessmentRepository) FindDiagnosis(assessmentID string) (*model.AssessmentDiagnosis, error) {
	var d model.AssessmentDiagnosis
	err := r.DB.Where("assessment_id = ?", assessmentID).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *AssessmentRepository) Complete(id string, score float64, finishedAt time.Time) error {
	return r.DB.Model(&model.Assessment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"calculated_score": score,
		"status":           model.AssessmentCompleted,
		"finished_at":      finishedAt,
	}).Error
}
