package training

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once per (worker, training) pair when the worker
// passes. It is revoked, never deleted, when its enrollment is reset.
// ExpiresAt nil means the certificate never expires.
type Certificate struct {
	gorm.Model
	CertificateNumber string     `json:"certificate_number" gorm:"unique;not null"`
	WorkerID          uint       `json:"worker_id" gorm:"uniqueIndex:idx_cert_worker_training;not null"`
	TrainingID        uint       `json:"training_id" gorm:"uniqueIndex:idx_cert_worker_training;not null"`
	EnrollmentID      uint       `json:"enrollment_id" gorm:"index;not null"`
	Score             int        `json:"score"`
	Attempts          int        `json:"attempts"`
	IssuedAt          time.Time  `json:"issued_at"`
	ExpiresAt         *time.Time `json:"expires_at"`
	IsRevoked         bool       `json:"is_revoked" gorm:"default:false"`
	IsDeleted         bool       `json:"-" gorm:"default:false"`
}
