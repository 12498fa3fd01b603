package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CompanyService struct {
	Repo     *repository.CompanyRepository
	UserRepo *repository.UserRepository
}

func NewCompanyService(repo *repository.CompanyRepository, userRepo *repository.UserRepository) *CompanyService {
	return &CompanyService{Repo: repo, UserRepo: userRepo}
}

// CompanyWithRole is a company decorated with the caller's role on it.
type CompanyWithRole struct {
	model.Company
	Role model.CompanyRole `json:"role"`
}

func (s *CompanyService) ListForUser(userID string) ([]CompanyWithRole, error) {
	access, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	companies := make([]CompanyWithRole, 0, len(access))
	for _, a := range access {
		if a.Company == nil {
			continue
		}
		companies = append(companies, CompanyWithRole{Company: *a.Company, Role: a.Role})
	}
	return companies, nil
}

type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
}

func (s *CompanyService) Create(userID string, req CreateCompanyRequest) (*model.Company, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: company name is required", util.ErrValidation)
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserMissing
		}
		return nil, err
	}

	company := &model.Company{Name: req.Name, CNPJ: req.Document}
	if err := s.Repo.CreateWithTenant(user, company); err != nil {
		return nil, err
	}

	return company, nil
}
