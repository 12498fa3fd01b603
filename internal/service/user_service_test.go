package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCanModifyRole(t *testing.T) {
	cases := []struct {
		requester model.CompanyRole
		target    model.CompanyRole
		allowed   bool
	}{
		{model.RoleOwner, model.RoleOwner, true},
		{model.RoleOwner, model.RoleAdmin, true},
		{model.RoleOwner, model.RoleEditor, true},
		{model.RoleOwner, model.RoleViewer, true},
		{model.RoleAdmin, model.RoleOwner, false},
		{model.RoleAdmin, model.RoleAdmin, true},
		{model.RoleAdmin, model.RoleEditor, true},
		{model.RoleAdmin, model.RoleViewer, true},
		{model.RoleEditor, model.RoleViewer, false},
		{model.RoleEditor, model.RoleEditor, false},
		{model.RoleViewer, model.RoleViewer, false},
	}

	for _, tc := range cases {
		got := CanModifyRole(tc.requester, tc.target)
		assert.Equal(t, tc.allowed, got, "%s modifying %s", tc.requester, tc.target)
	}
}

type userFixture struct {
	svc     *UserService
	db      *gorm.DB
	company *model.Company
}

func seedUserFixture(t *testing.T) (*userFixture, *model.User) {
	t.Helper()
	db := openTestDB(t)

	tenant := &model.Tenant{Name: "Base", Slug: "base-users"}
	require.NoError(t, db.Create(tenant).Error)

	company := &model.Company{TenantID: tenant.ID, Name: "Acme"}
	require.NoError(t, db.Create(company).Error)

	owner := &model.User{FullName: "Owner", Email: "owner@example.com"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(&model.UserCompanyAccess{
		UserID:    owner.ID,
		CompanyID: company.ID,
		Role:      model.RoleOwner,
	}).Error)

	svc := NewUserService(repository.NewUserRepository(db), repository.NewCompanyRepository(db))
	return &userFixture{svc: svc, db: db, company: company}, owner
}

func TestInviteCreatesUserAndAccess(t *testing.T) {
	f, _ := seedUserFixture(t)

	invited, err := f.svc.Invite(InviteUserRequest{
		CompanyID: f.company.ID,
		Email:     "new@example.com",
		FullName:  "New Person",
		Role:      "EDITOR",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleEditor, invited.Role)

	var user model.User
	require.NoError(t, f.db.Where("email = ?", "new@example.com").First(&user).Error)
	assert.Equal(t, "New Person", user.FullName)
}

func TestInviteExistingAccessConflicts(t *testing.T) {
	f, owner := seedUserFixture(t)

	_, err := f.svc.Invite(InviteUserRequest{
		CompanyID: f.company.ID,
		Email:     owner.Email,
		Role:      "VIEWER",
	})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestInviteRejectsUnknownRole(t *testing.T) {
	f, _ := seedUserFixture(t)

	_, err := f.svc.Invite(InviteUserRequest{
		CompanyID: f.company.ID,
		Email:     "x@example.com",
		Role:      "SUPERUSER",
	})
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestUpdateRoleHonorsHierarchy(t *testing.T) {
	f, owner := seedUserFixture(t)

	admin := &model.User{FullName: "Admin", Email: "admin@example.com"}
	require.NoError(t, f.db.Create(admin).Error)
	require.NoError(t, f.db.Create(&model.UserCompanyAccess{
		UserID: admin.ID, CompanyID: f.company.ID, Role: model.RoleAdmin,
	}).Error)

	viewer := &model.User{FullName: "Viewer", Email: "viewer@example.com"}
	require.NoError(t, f.db.Create(viewer).Error)
	require.NoError(t, f.db.Create(&model.UserCompanyAccess{
		UserID: viewer.ID, CompanyID: f.company.ID, Role: model.RoleViewer,
	}).Error)

	// Admin may promote a viewer to editor.
	updated, err := f.svc.UpdateRole(admin.ID, viewer.ID, f.company.ID, "EDITOR")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEditor, updated.Role)

	// Admin may not touch the owner, nor grant OWNER.
	_, err = f.svc.UpdateRole(admin.ID, owner.ID, f.company.ID, "VIEWER")
	assert.ErrorIs(t, err, util.ErrRoleForbidden)

	_, err = f.svc.UpdateRole(admin.ID, viewer.ID, f.company.ID, "OWNER")
	assert.ErrorIs(t, err, util.ErrRoleForbidden)

	// Owner may do both.
	_, err = f.svc.UpdateRole(owner.ID, viewer.ID, f.company.ID, "ADMIN")
	require.NoError(t, err)
}

func TestUpdateRoleRequesterWithoutAccess(t *testing.T) {
	f, owner := seedUserFixture(t)

	stranger := &model.User{FullName: "Stranger", Email: "s@example.com"}
	require.NoError(t, f.db.Create(stranger).Error)

	_, err := f.svc.UpdateRole(stranger.ID, owner.ID, f.company.ID, "VIEWER")
	assert.ErrorIs(t, err, util.ErrNotAuthorized)
}

func TestRemoveAccess(t *testing.T) {
	f, _ := seedUserFixture(t)

	member := &model.User{FullName: "Member", Email: "m@example.com"}
	require.NoError(t, f.db.Create(member).Error)
	require.NoError(t, f.db.Create(&model.UserCompanyAccess{
		UserID: member.ID, CompanyID: f.company.ID, Role: model.RoleViewer,
	}).Error)

	require.NoError(t, f.svc.RemoveAccess(member.ID, f.company.ID))

	err := f.svc.RemoveAccess(member.ID, f.company.ID)
	assert.ErrorIs(t, err, util.ErrAccessMissing)
}

func TestListByCompany(t *testing.T) {
	f, owner := seedUserFixture(t)

	users, err := f.svc.ListByCompany(f.company.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, owner.Email, users[0].Email)
	assert.Equal(t, model.RoleOwner, users[0].Role)
}
