package repository

import (
	"ai_maturity_backend/internal/model"

	"gorm.io/gorm"
)

// QuestionRepository reads the question catalog. The catalog is treated
// as read-only reference data inside assessment flows.
type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) ListQuestions() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Section").
		Order("order_index asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindOptionByID(id uint) (*model.QuestionOption, error) {
	var opt model.QuestionOption
	err := r.DB.First(&opt, id).Error
	if err != nil {
		return nil, err
	}
	return &opt, nil
}

// FindActiveTemplate returns the template with the highest version number
// among rows flagged active, or gorm.ErrRecordNotFound when none exists.
func (r *QuestionRepository) FindActiveTemplate() (*model.AssessmentTemplate, error) {
	var tpl model.AssessmentTemplate
	err := r.DB.Where("is_active = ?", true).Order("version_number desc").First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}
