package models

import "gorm.io/gorm"

// Company groups workers, departments and company-scoped content.
type Company struct {
	gorm.Model
	Name         string `json:"name" gorm:"unique;not null"`
	Description  string `json:"description" gorm:"default:''"`
	ContactEmail string `json:"contact_email" gorm:"default:''"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}

// Department belongs to a single company.
type Department struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"default:''"`
	CompanyID   uint   `json:"company_id" gorm:"index;not null"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
