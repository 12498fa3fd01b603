package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages the per-company user roster: invites, role
// changes and access revocation.
type UserService struct {
	UserRepo    *repository.UserRepository
	CompanyRepo *repository.CompanyRepository
}

func NewUserService(userRepo *repository.UserRepository, companyRepo *repository.CompanyRepository) *UserService {
	return &UserService{UserRepo: userRepo, CompanyRepo: companyRepo}
}

// CanModifyRole encodes who may change whose role:
// OWNER can modify any role; ADMIN anything except OWNER; others nothing.
func CanModifyRole(requester, target model.CompanyRole) bool {
	if requester == model.RoleOwner {
		return true
	}
	if requester == model.RoleAdmin {
		return target != model.RoleOwner
	}
	return false
}

type CompanyUser struct {
	ID        string            `json:"id"`
	FullName  string            `json:"fullName"`
	Email     string            `json:"email"`
	AvatarURL string            `json:"avatarUrl,omitempty"`
	Role      model.CompanyRole `json:"role"`
}

func (s *UserService) ListByCompany(companyID string) ([]CompanyUser, error) {
	access, err := s.CompanyRepo.ListAccess(companyID)
	if err != nil {
		return nil, err
	}

	users := make([]CompanyUser, 0, len(access))
	for _, a := range access {
		if a.User == nil {
			continue
		}
		users = append(users, CompanyUser{
			ID:        a.User.ID,
			FullName:  a.User.FullName,
			Email:     a.User.Email,
			AvatarURL: a.User.AvatarURL,
			Role:      a.Role,
		})
	}
	return users, nil
}

type InviteUserRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role" binding:"required"`
}

// Invite grants a user access to a company, creating the user row first
// when the email is new. Inviting an email that already has access to
// the company is a conflict.
func (s *UserService) Invite(req InviteUserRequest) (*CompanyUser, error) {
	if !model.IsValidRole(req.Role) {
		return nil, fmt.Errorf("%w: invalid role %q", util.ErrValidation, req.Role)
	}

	user, err := s.UserRepo.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		name := req.FullName
		if name == "" {
			name = req.Email
		}
		user = &model.User{
			Email:     req.Email,
			FullName:  name,
			LastLogin: time.Now(),
		}
		if err := s.UserRepo.Create(user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if _, err := s.CompanyRepo.FindAccess(user.ID, req.CompanyID); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := model.CompanyRole(req.Role)
	if err := s.CompanyRepo.CreateAccess(&model.UserCompanyAccess{
		UserID:    user.ID,
		CompanyID: req.CompanyID,
		Role:      role,
	}); err != nil {
		return nil, err
	}

	return &CompanyUser{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     role,
	}, nil
}

// UpdateRole changes a user's role in a company, subject to the
// CanModifyRole rules against both the target's current role and the
// requested one.
func (s *UserService) UpdateRole(requesterID, targetUserID, companyID, newRole string) (*CompanyUser, error) {
	if !model.IsValidRole(newRole) {
		return nil, fmt.Errorf("%w: invalid role %q", util.ErrValidation, newRole)
	}

	requesterAccess, err := s.CompanyRepo.FindAccess(requesterID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotAuthorized
		}
		return nil, err
	}

	targetAccess, err := s.CompanyRepo.FindAccess(targetUserID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAccessMissing
		}
		return nil, err
	}

	if !CanModifyRole(requesterAccess.Role, targetAccess.Role) ||
		!CanModifyRole(requesterAccess.Role, model.CompanyRole(newRole)) {
		return nil, util.ErrRoleForbidden
	}

	if err := s.CompanyRepo.UpdateAccessRole(targetUserID, companyID, model.CompanyRole(newRole)); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByID(targetUserID)
	if err != nil {
		return nil, err
	}

	return &CompanyUser{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     model.CompanyRole(newRole),
	}, nil
}

func (s *UserService) RemoveAccess(targetUserID, companyID string) error {
	if _, err := s.CompanyRepo.FindAccess(targetUserID, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAccessMissing
		}
		return err
	}
	return s.CompanyRepo.DeleteAccess(targetUserID, companyID)
}

func (s *UserService) ResetPassword(userID, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserMissing
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.UserRepo.Update(user)
}

func (s *UserService) UpdateAvatar(userID, url string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	user.AvatarURL = url
	return s.UserRepo.Update(user)
}
