package repository

import (
	"ai_maturity_backend/internal/model"

	"gorm.io/gorm"
)

type PersonRepository struct {
	DB *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

func (r *PersonRepository) ListByCompany(companyID string) ([]model.Person, error) {
	var people []model.Person
	err := r.DB.
		Preload("Archetype").
		Preload("TechLevel").
		Preload("BusinessLevel").
		Where("company_id = ?", companyID).
		Order("name asc").
		Find(&people).Error
	return people, err
}

func (r *PersonRepository) FindInCompany(personID, companyID string) (*model.Person, error) {
	var p model.Person
	err := r.DB.Where("id = ? AND company_id = ?", personID, companyID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) Create(person *model.Person) error {
	return r.DB.Create(person).Error
}

func (r *PersonRepository) Update(person *model.Person) error {
	return r.DB.Save(person).Error
}

// Reload fetches a person with reference labels preloaded, used after
// create/update so responses carry the resolved lookups.
func (r *PersonRepository) Reload(id string) (*model.Person, error) {
	var p model.Person
	err := r.DB.
		Preload("Archetype").
		Preload("TechLevel").
		Preload("BusinessLevel").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
