package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"fmt"
)

type ApplicationService struct {
	Repo   *repository.ApplicationRepository
	Access AccessChecker
}

func NewApplicationService(repo *repository.ApplicationRepository, access AccessChecker) *ApplicationService {
	return &ApplicationService{Repo: repo, Access: access}
}

type CreateApplicationRequest struct {
	CompanyID   string `json:"company_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *ApplicationService) Create(userID string, req CreateApplicationRequest) (*model.Application, error) {
	if req.CompanyID == "" || req.Name == "" {
		return nil, fmt.Errorf("%w: missing company_id or name", util.ErrValidation)
	}

	ok, err := s.Access.HasAccess(userID, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotAuthorized
	}

	app := &model.Application{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.Repo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) ListByCompany(userID, companyID string) ([]model.Application, error) {
	ok, err := s.Access.HasAccess(userID, companyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotAuthorized
	}

	return s.Repo.ListByCompany(companyID)
}
