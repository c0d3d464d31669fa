package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"wst/config"
)

// SendEmail sends an HTML mail through SMTP. Best-effort: callers log and
// continue on failure.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Safety Training <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// WelcomeEmailBody renders the mail sent when an admin creates a worker.
func WelcomeEmailBody(workerName, sapID string) string {
	return fmt.Sprintf(`
	<html><body>
	<h2>Welcome, %s</h2>
	<p>You have been registered for safety training. Log in with your SAP number <b>%s</b> to see your assigned trainings.</p>
	</body></html>`, workerName, sapID)
}

// ExpiryReminderBody renders the certificate-expiry reminder mail.
func ExpiryReminderBody(workerName, trainingTitle, expiryDate string) string {
	return fmt.Sprintf(`
	<html><body>
	<h2>Certificate expiring</h2>
	<p>The certificate of <b>%s</b> for training <b>%s</b> expires on <b>%s</b>. Plan a re-enrollment.</p>
	</body></html>`, workerName, trainingTitle, expiryDate)
}
