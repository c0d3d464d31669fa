package models

import "gorm.io/gorm"

// LoginTracking records every successful worker login.
type LoginTracking struct {
	gorm.Model
	WorkerID  uint   `json:"worker_id" gorm:"index;not null"`
	SapID     string `json:"sap_id"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
