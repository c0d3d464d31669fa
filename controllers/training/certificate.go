package trainingController

import (
	"log"
	"time"
	"wst/database"
	"wst/lifecycle"
	"wst/middleware"
	"wst/models"
	"wst/models/training"
	"wst/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// issueCertificate creates the certificate for a passed enrollment.
// Idempotent per (worker, training): when any certificate already exists
// for the pair, nothing is created, regardless of that certificate's
// validity state. The unique pair index backstops concurrent submissions.
func issueCertificate(db *gorm.DB, e *training.Enrollment, tr *training.Training) (*training.Certificate, error) {
	var existing training.Certificate
	if err := db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", e.WorkerID, e.TrainingID, false).First(&existing).Error; err == nil {
		return &existing, nil
	}

	issuedAt := time.Now()
	cert := training.Certificate{
		CertificateNumber: utils.GenerateCertificateNumber(issuedAt),
		WorkerID:          e.WorkerID,
		TrainingID:        e.TrainingID,
		EnrollmentID:      e.ID,
		Score:             e.Score,
		Attempts:          e.Attempts,
		IssuedAt:          issuedAt,
		ExpiresAt:         lifecycle.ComputeExpiry(issuedAt, tr.ValidityPeriod),
	}

	if err := db.Create(&cert).Error; err != nil {
		return nil, err
	}

	var worker models.Worker
	if err := db.First(&worker, e.WorkerID).Error; err == nil {
		event := utils.CertificateIssuedEvent{
			CertificateNumber: cert.CertificateNumber,
			WorkerID:          worker.ID,
			SapID:             worker.SapID,
			TrainingID:        tr.ID,
			TrainingTitle:     tr.Title,
			Score:             cert.Score,
			IssuedAt:          cert.IssuedAt.Format(time.RFC3339),
		}
		if cert.ExpiresAt != nil {
			event.ExpiresAt = cert.ExpiresAt.Format(time.RFC3339)
		}
		go utils.NotifyCertificateIssued(event)
	}

	return &cert, nil
}

// resetEnrollment clears an enrollment's progress in place and revokes any
// unrevoked certificate for the pair. The certificate row is kept.
func resetEnrollment(db *gorm.DB, e *training.Enrollment) error {
	lifecycle.ResetEnrollment(e)

	tx := db.Begin()

	if err := tx.Save(e).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&training.Certificate{}).
		Where("worker_id = ? AND training_id = ? AND is_revoked = ? AND is_deleted = ?", e.WorkerID, e.TrainingID, false, false).
		Update("is_revoked", true).Error; err != nil {
		tx.Rollback()
		return err
	}

	tx.Commit()
	return nil
}

// certificateView decorates a certificate with its derived status.
func certificateView(cert *training.Certificate) fiber.Map {
	return fiber.Map{
		"certificate": cert,
		"status":      lifecycle.CertificateStatus(cert, time.Now()),
	}
}

// GetWorkerCertificate returns the worker's certificate for one training,
// with its derived status.
func GetWorkerCertificate(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	var cert training.Certificate
	if err := database.Database.Db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", worker.ID, trainingID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully.", certificateView(&cert))
}

// GetWorkerCertificates returns all of the worker's certificates with
// derived statuses.
func GetWorkerCertificates(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certs []training.Certificate
	if err := database.Database.Db.Where("worker_id = ? AND is_deleted = ?", worker.ID, false).Order("issued_at desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]fiber.Map, len(certs))
	for i := range certs {
		var tr training.Training
		if err := database.Database.Db.First(&tr, certs[i].TrainingID).Error; err != nil {
			log.Printf("Error fetching training %d: %v", certs[i].TrainingID, err)
		}
		result[i] = fiber.Map{
			"certificate":    certs[i],
			"status":         lifecycle.CertificateStatus(&certs[i], time.Now()),
			"training_title": tr.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", result)
}
