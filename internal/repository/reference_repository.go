package repository

import (
	"ai_maturity_backend/internal/model"

	"gorm.io/gorm"
)

type ReferenceRepository struct {
	DB *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{DB: db}
}

func (r *ReferenceRepository) ListArchetypes() ([]model.RefArchetype, error) {
	var rows []model.RefArchetype
	err := r.DB.Order("label asc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) ListTechLevels() ([]model.RefTechLevel, error) {
	var rows []model.RefTechLevel
	err := r.DB.Order("level_number asc").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) ListBusinessLevels() ([]model.RefBusinessLevel, error) {
	var rows []model.RefBusinessLevel
	err := r.DB.Order("level_number asc").Find(&rows).Error
	return rows, err
}
