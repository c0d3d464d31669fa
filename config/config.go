package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	SaltRound int

	AdminJWTKey  string // signing secret for admin tokens
	WorkerJWTKey string // signing secret for worker tokens

	UploadDir string

	EmailSender string
	Password    string // SMTP Password

	// SupervisorOpenAccess leaves the supervisor kiosk endpoints
	// (worker check / enrollment reset) unauthenticated when true.
	SupervisorOpenAccess bool

	// CertificateWebhookURL receives a POST for every issued certificate.
	// Empty disables the notification.
	CertificateWebhookURL string

	// ExpiryReminderDays is the lookahead window of the daily
	// certificate-expiry reminder job.
	ExpiryReminderDays int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AdminJWTKey:  getEnv("ADMIN_JWT_SECRET_KEY", "defaultAdminSecret"),
		WorkerJWTKey: getEnv("WORKER_JWT_SECRET_KEY", "defaultWorkerSecret"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		SupervisorOpenAccess:  getEnvBool("SUPERVISOR_OPEN_ACCESS", true),
		CertificateWebhookURL: getEnv("CERTIFICATE_WEBHOOK_URL", ""),
		ExpiryReminderDays:    getEnvInt("EXPIRY_REMINDER_DAYS", 30),
	}

	// Validate critical configuration
	if AppConfig.AdminJWTKey == "defaultAdminSecret" {
		log.Println("Warning: Using default ADMIN_JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.WorkerJWTKey == "defaultWorkerSecret" {
		log.Println("Warning: Using default WORKER_JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
