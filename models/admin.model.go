package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin roles
const (
	RoleSuperAdmin   = "SUPER-ADMIN"
	RoleCompanyAdmin = "ADMIN"
)

// Admin is a backoffice user. Super admins operate across companies;
// company admins only see their own company's data.
type Admin struct {
	gorm.Model
	Username  string     `json:"username" gorm:"unique;not null"`
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"default:''"`
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"default:'ADMIN'"` // SUPER-ADMIN, ADMIN
	CompanyID *uint      `json:"company_id" gorm:"index"`     // nil for super admins
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `json:"-" gorm:"default:false"`
}
