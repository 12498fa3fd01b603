package model

// CompanyRole is the per-company role attached to a user's access link.
type CompanyRole string

const (
	RoleOwner  CompanyRole = "OWNER"
	RoleAdmin  CompanyRole = "ADMIN"
	RoleEditor CompanyRole = "EDITOR"
	RoleViewer CompanyRole = "VIEWER"
)

func IsValidRole(role string) bool {
	switch CompanyRole(role) {
	case RoleOwner, RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// swagger:model Tenant
type Tenant struct {
	UUIDBase
	Name string `gorm:"size:255;not null" json:"name"`
	Slug string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type TenantUser struct {
	UUIDBase
	UserID   string      `gorm:"index;type:varchar(36);not null" json:"userId"`
	TenantID string      `gorm:"index;type:varchar(36);not null" json:"tenantId"`
	Role     CompanyRole `gorm:"size:20;default:'OWNER'" json:"role"`
}

func (TenantUser) TableName() string {
	return "tenant_users"
}

// swagger:model Company
type Company struct {
	UUIDBase
	TenantID string `gorm:"index;type:varchar(36);not null" json:"tenantId"`
	Name     string `gorm:"size:255;not null" json:"name"`
	CNPJ     string `gorm:"size:20" json:"cnpj,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

// UserCompanyAccess links a user to a company with a role. Unique on
// (user_id, company_id); holding any row grants read access to the company.
type UserCompanyAccess struct {
	UUIDBase
	UserID    string      `gorm:"uniqueIndex:idx_user_company;type:varchar(36);not null" json:"userId"`
	CompanyID string      `gorm:"uniqueIndex:idx_user_company;type:varchar(36);not null" json:"companyId"`
	Role      CompanyRole `gorm:"size:20;default:'VIEWER'" json:"role"`
	Company   *Company    `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	User      *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserCompanyAccess) TableName() string {
	return "user_company_access"
}
