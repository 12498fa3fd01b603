package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
)

type ReferenceService struct {
	Repo *repository.ReferenceRepository
}

func NewReferenceService(repo *repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{Repo: repo}
}

func (s *ReferenceService) Archetypes() ([]model.RefArchetype, error) {
	return s.Repo.ListArchetypes()
}

func (s *ReferenceService) TechnicalLevels() ([]model.RefTechLevel, error) {
	return s.Repo.ListTechLevels()
}

func (s *ReferenceService) BusinessLevels() ([]model.RefBusinessLevel, error) {
	return s.Repo.ListBusinessLevels()
}
