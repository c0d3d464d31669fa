package utils

import (
	"log"
	"time"
	"wst/config"
	"wst/database"
	"wst/models"
	"wst/models/training"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CERT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processExpiringCertificates mails a reminder for every unrevoked
// certificate that expires inside the configured lookahead window.
func processExpiringCertificates() {
	db := database.Database.Db

	today := now.BeginningOfDay()
	windowEnd := today.AddDate(0, 0, config.AppConfig.ExpiryReminderDays)

	var certs []training.Certificate
	if err := db.Where("is_revoked = ? AND is_deleted = ? AND expires_at IS NOT NULL AND expires_at BETWEEN ? AND ?",
		false, false, today, windowEnd).Find(&certs).Error; err != nil {
		logScheduler("Error fetching expiring certificates: " + err.Error())
		return
	}

	for _, cert := range certs {
		var worker models.Worker
		if err := db.Where("id = ? AND is_deleted = ?", cert.WorkerID, false).First(&worker).Error; err != nil {
			continue
		}

		var tr training.Training
		if err := db.First(&tr, cert.TrainingID).Error; err != nil {
			continue
		}

		var company models.Company
		if err := db.First(&company, worker.CompanyID).Error; err != nil {
			continue
		}

		// Reminders go to the company contact; workers have no mailbox.
		if company.ContactEmail == "" {
			continue
		}

		body := ExpiryReminderBody(worker.Name, tr.Title, cert.ExpiresAt.Format("2006-01-02"))
		if err := SendEmail([]string{company.ContactEmail}, "Certificate expiring soon", body); err != nil {
			logScheduler("Error sending reminder for certificate " + cert.CertificateNumber + ": " + err.Error())
		}
	}

	logScheduler("Expiry sweep finished")
}

// StartCertificateScheduler runs the daily certificate-expiry reminder job.
func StartCertificateScheduler() *cron.Cron {
	c := cron.New()

	// Every day at midnight
	if _, err := c.AddFunc("0 0 * * *", processExpiringCertificates); err != nil {
		log.Fatalf("Failed to schedule certificate expiry job: %v", err)
	}

	c.Start()
	logScheduler("Certificate expiry scheduler started")
	return c
}
