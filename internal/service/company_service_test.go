package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompanyBootstrapsTenant(t *testing.T) {
	db := openTestDB(t)

	user := &model.User{FullName: "Ana", Email: "ana@example.com"}
	require.NoError(t, db.Create(user).Error)

	svc := NewCompanyService(repository.NewCompanyRepository(db), repository.NewUserRepository(db))

	company, err := svc.Create(user.ID, CreateCompanyRequest{Name: "Acme", Document: "12345678000190"})
	require.NoError(t, err)
	assert.NotEmpty(t, company.TenantID)

	// First company creates the tenant and the OWNER membership.
	var tenantUser model.TenantUser
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&tenantUser).Error)
	assert.Equal(t, company.TenantID, tenantUser.TenantID)
	assert.Equal(t, model.RoleOwner, tenantUser.Role)

	var access model.UserCompanyAccess
	require.NoError(t, db.Where("user_id = ? AND company_id = ?", user.ID, company.ID).First(&access).Error)
	assert.Equal(t, model.RoleOwner, access.Role)

	// A second company reuses the existing tenant.
	second, err := svc.Create(user.ID, CreateCompanyRequest{Name: "Acme Labs"})
	require.NoError(t, err)
	assert.Equal(t, company.TenantID, second.TenantID)

	var tenantCount int64
	require.NoError(t, db.Model(&model.Tenant{}).Count(&tenantCount).Error)
	assert.Equal(t, int64(1), tenantCount)
}

func TestListForUserReturnsRoles(t *testing.T) {
	db := openTestDB(t)

	user := &model.User{FullName: "Ana", Email: "ana@example.com"}
	require.NoError(t, db.Create(user).Error)

	svc := NewCompanyService(repository.NewCompanyRepository(db), repository.NewUserRepository(db))

	created, err := svc.Create(user.ID, CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	companies, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, created.ID, companies[0].ID)
	assert.Equal(t, model.RoleOwner, companies[0].Role)
}
