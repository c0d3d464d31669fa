package models

import "gorm.io/gorm"

// News is a bulletin item. CompanyID nil means global, visible to every
// worker; otherwise only workers of that company see it.
type News struct {
	gorm.Model
	Title     string `json:"title" gorm:"not null"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	CompanyID *uint  `json:"company_id" gorm:"index"`
	CreatedBy uint   `json:"created_by" gorm:"index"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// Regulation is a safety regulation document. Regulations are always
// global and managed by super admins only.
type Regulation struct {
	gorm.Model
	Title     string `json:"title" gorm:"not null"`
	Body      string `json:"body"`
	FileURL   string `json:"file_url"`
	CreatedBy uint   `json:"created_by" gorm:"index"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// SupervisorFeedback is a free-form message a worker leaves for their
// supervisor.
type SupervisorFeedback struct {
	gorm.Model
	WorkerID  uint   `json:"worker_id" gorm:"index;not null"`
	Message   string `json:"message" gorm:"not null"`
	Contact   string `json:"contact"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
