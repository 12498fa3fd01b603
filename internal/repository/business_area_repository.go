package repository

import (
	"ai_maturity_backend/internal/model"

	"gorm.io/gorm"
)

type BusinessAreaRepository struct {
	DB *gorm.DB
}

func NewBusinessAreaRepository(db *gorm.DB) *BusinessAreaRepository {
	return &BusinessAreaRepository{DB: db}
}

func (r *BusinessAreaRepository) ListByCompany(companyID string) ([]model.BusinessArea, error) {
	var areas []model.BusinessArea
	err := r.DB.
		Preload("SubAreas", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Where("company_id = ?", companyID).
		Order("name asc").
		Find(&areas).Error
	return areas, err
}

func (r *BusinessAreaRepository) FindAreaByID(id string) (*model.BusinessArea, error) {
	var area model.BusinessArea
	err := r.DB.Preload("SubAreas").First(&area, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *BusinessAreaRepository) CreateArea(area *model.BusinessArea) error {
	return r.DB.Create(area).Error
}

func (r *BusinessAreaRepository) UpdateArea(area *model.BusinessArea) error {
	return r.DB.Save(area).Error
}

// DeleteArea removes the area together with its sub-areas.
func (r *BusinessAreaRepository) DeleteArea(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("area_id = ?", id).Delete(&model.BusinessSubArea{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.BusinessArea{}).Error
	})
}

func (r *BusinessAreaRepository) FindSubAreaByID(id string) (*model.BusinessSubArea, error) {
	var sub model.BusinessSubArea
	err := r.DB.First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *BusinessAreaRepository) CreateSubArea(sub *model.BusinessSubArea) error {
	return r.DB.Create(sub).Error
}

func (r *BusinessAreaRepository) UpdateSubArea(sub *model.BusinessSubArea) error {
	return r.DB.Save(sub).Error
}

func (r *BusinessAreaRepository) DeleteSubArea(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.BusinessSubArea{}).Error
}
