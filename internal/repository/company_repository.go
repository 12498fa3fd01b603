package repository

import (
	"ai_maturity_backend/internal/model"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) FindByID(id string) (*model.Company, error) {
	var c model.Company
	err := r.DB.First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUser returns every company the user holds an access link for,
// with the link's role attached.
func (r *CompanyRepository) ListByUser(userID string) ([]model.UserCompanyAccess, error) {
	var access []model.UserCompanyAccess
	err := r.DB.Preload("Company").Where("user_id = ?", userID).Find(&access).Error
	return access, err
}

var slugCleaner = regexp.MustCompile(`[^\w-]+`)

// CreateWithTenant creates a company inside one transaction. A user's
// first company also bootstraps their tenant: tenant row, tenant link and
// OWNER access link are created together so a half-provisioned tenant is
// never visible.
func (r *CompanyRepository) CreateWithTenant(user *model.User, company *model.Company) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var tenantUser model.TenantUser
		err := tx.Where("user_id = ?", user.ID).First(&tenantUser).Error

		var tenantID string
		switch {
		case err == nil:
			tenantID = tenantUser.TenantID
		case errors.Is(err, gorm.ErrRecordNotFound):
			display := user.FullName
			if display == "" {
				display = strings.SplitN(user.Email, "@", 2)[0]
			}
			baseSlug := slugCleaner.ReplaceAllString(strings.ReplaceAll(strings.ToLower(display), " ", "-"), "")

			tenant := model.Tenant{
				Name: fmt.Sprintf("Organização de %s", display),
				Slug: fmt.Sprintf("%s-%d", baseSlug, time.Now().UnixMilli()),
			}
			if err := tx.Create(&tenant).Error; err != nil {
				return err
			}
			if err := tx.Create(&model.TenantUser{
				UserID:   user.ID,
				TenantID: tenant.ID,
				Role:     model.RoleOwner,
			}).Error; err != nil {
				return err
			}
			tenantID = tenant.ID
		default:
			return err
		}

		company.TenantID = tenantID
		if err := tx.Create(company).Error; err != nil {
			return err
		}

		return tx.Create(&model.UserCompanyAccess{
			UserID:    user.ID,
			CompanyID: company.ID,
			Role:      model.RoleOwner,
		}).Error
	})
}

func (r *CompanyRepository) FindAccess(userID, companyID string) (*model.UserCompanyAccess, error) {
	var access model.UserCompanyAccess
	err := r.DB.Where("user_id = ? AND company_id = ?", userID, companyID).First(&access).Error
	if err != nil {
		return nil, err
	}
	return &access, nil
}

// HasAccess reports whether the user holds any access link to the
// company. This is the capability the assessment core gets injected.
func (r *CompanyRepository) HasAccess(userID, companyID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.UserCompanyAccess{}).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *CompanyRepository) ListAccess(companyID string) ([]model.UserCompanyAccess, error) {
	var access []model.UserCompanyAccess
	err := r.DB.Preload("User").Where("company_id = ?", companyID).Find(&access).Error
	return access, err
}

func (r *CompanyRepository) CreateAccess(access *model.UserCompanyAccess) error {
	return r.DB.Create(access).Error
}

func (r *CompanyRepository) UpdateAccessRole(userID, companyID string, role model.CompanyRole) error {
	return r.DB.Model(&model.UserCompanyAccess{}).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Update("role", role).Error
}

func (r *CompanyRepository) DeleteAccess(userID, companyID string) error {
	return r.DB.Where("user_id = ? AND company_id = ?", userID, companyID).
		Delete(&model.UserCompanyAccess{}).Error
}

func (r *CompanyRepository) CountUserAccess(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserCompanyAccess{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
