package utils

import (
	"log"
	"time"
	"wst/config"

	"github.com/go-resty/resty/v2"
)

// CertificateIssuedEvent is posted to the configured webhook whenever a
// certificate is issued.
type CertificateIssuedEvent struct {
	CertificateNumber string `json:"certificate_number"`
	WorkerID          uint   `json:"worker_id"`
	SapID             string `json:"sap_id"`
	TrainingID        uint   `json:"training_id"`
	TrainingTitle     string `json:"training_title"`
	Score             int    `json:"score"`
	IssuedAt          string `json:"issued_at"`
	ExpiresAt         string `json:"expires_at,omitempty"`
}

// NotifyCertificateIssued posts the event to the webhook URL. Best-effort:
// failures are logged and never retried.
func NotifyCertificateIssued(event CertificateIssuedEvent) {
	url := config.AppConfig.CertificateWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(url)
	if err != nil {
		log.Printf("Error posting certificate webhook: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("Certificate webhook returned status %d", resp.StatusCode())
	}
}
