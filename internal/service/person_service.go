package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PersonService struct {
	Repo *repository.PersonRepository
}

func NewPersonService(repo *repository.PersonRepository) *PersonService {
	return &PersonService{Repo: repo}
}

func (s *PersonService) ListByCompany(companyID string) ([]model.Person, error) {
	return s.Repo.ListByCompany(companyID)
}

type PersonRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	JobTitle         string `json:"job_title"`
	Phone            string `json:"phone"`
	ArchetypeID      *uint  `json:"archetype_id"`
	TechnicalLevelID *uint  `json:"technical_level_id"`
	BusinessLevelID  *uint  `json:"business_level_id"`
}

func (s *PersonService) Create(companyID string, req PersonRequest) (*model.Person, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", util.ErrValidation)
	}

	person := &model.Person{
		CompanyID:       companyID,
		Name:            req.Name,
		Email:           req.Email,
		JobTitle:        req.JobTitle,
		Phone:           req.Phone,
		ArchetypeID:     req.ArchetypeID,
		TechLevelID:     req.TechnicalLevelID,
		BusinessLevelID: req.BusinessLevelID,
	}
	if err := s.Repo.Create(person); err != nil {
		return nil, err
	}

	return s.Repo.Reload(person.ID)
}

func (s *PersonService) Update(companyID, personID string, req PersonRequest) (*model.Person, error) {
	person, err := s.Repo.FindInCompany(personID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPersonMissing
		}
		return nil, err
	}

	if req.Name != "" {
		person.Name = req.Name
	}
	if req.Email != "" {
		person.Email = req.Email
	}
	if req.JobTitle != "" {
		person.JobTitle = req.JobTitle
	}
	if req.Phone != "" {
		person.Phone = req.Phone
	}
	if req.ArchetypeID != nil {
		person.ArchetypeID = req.ArchetypeID
	}
	if req.TechnicalLevelID != nil {
		person.TechLevelID = req.TechnicalLevelID
	}
	if req.BusinessLevelID != nil {
		person.BusinessLevelID = req.BusinessLevelID
	}

	if err := s.Repo.Update(person); err != nil {
		return nil, err
	}

	return s.Repo.Reload(person.ID)
}
