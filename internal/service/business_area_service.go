package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"fmt"
)

type BusinessAreaService struct {
	Repo *repository.BusinessAreaRepository
}

func NewBusinessAreaService(repo *repository.BusinessAreaRepository) *BusinessAreaService {
	return &BusinessAreaService{Repo: repo}
}

func (s *BusinessAreaService) ListByCompany(companyID string) ([]model.BusinessArea, error) {
	return s.Repo.ListByCompany(companyID)
}

func (s *BusinessAreaService) CreateArea(companyID, name, description string) (*model.BusinessArea, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", util.ErrValidation)
	}

	area := &model.BusinessArea{
		CompanyID:   companyID,
		Name:        name,
		Description: description,
		SubAreas:    []model.BusinessSubArea{},
	}
	if err := s.Repo.CreateArea(area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *BusinessAreaService) UpdateArea(id, name, description string) (*model.BusinessArea, error) {
	area, err := s.Repo.FindAreaByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		area.Name = name
	}
	if description != "" {
		area.Description = description
	}
	if err := s.Repo.UpdateArea(area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *BusinessAreaService) DeleteArea(id string) error {
	return s.Repo.DeleteArea(id)
}

func (s *BusinessAreaService) CreateSubArea(areaID, name string) (*model.BusinessSubArea, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", util.ErrValidation)
	}

	sub := &model.BusinessSubArea{AreaID: areaID, Name: name}
	if err := s.Repo.CreateSubArea(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *BusinessAreaService) UpdateSubArea(id, name string) (*model.BusinessSubArea, error) {
	sub, err := s.Repo.FindSubAreaByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		sub.Name = name
	}
	if err := s.Repo.UpdateSubArea(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *BusinessAreaService) DeleteSubArea(id string) error {
	return s.Repo.DeleteSubArea(id)
}
