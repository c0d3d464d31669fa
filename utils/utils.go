package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateCertificateNumber builds a unique, human-readable certificate
// number like WST-2024-1A2B3C4D.
func GenerateCertificateNumber(issuedAt time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("WST-%d-%s", issuedAt.Year(), suffix)
}
