package repository

import (
	"ai_maturity_backend/internal/model"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id string) (*model.Application, error) {
	var app model.Application
	err := r.DB.Preload("Company").First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByCompany(companyID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.DB.Where("company_id = ?", companyID).Order("name asc").Find(&apps).Error
	return apps, err
}
