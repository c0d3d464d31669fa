package models

import "gorm.io/gorm"

// Worker is a field employee identified by a company-unique SAP code.
type Worker struct {
	gorm.Model
	SapID        string `json:"sap_id" gorm:"unique;not null;index"`
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"default:''"`
	CompanyID    uint   `json:"company_id" gorm:"index;not null"`
	DepartmentID *uint  `json:"department_id" gorm:"index"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
