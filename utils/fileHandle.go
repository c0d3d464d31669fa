package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
	"wst/config"
)

// MimeCategory maps a content type to the upload subdirectory it is stored
// under. Unknown types are rejected.
func MimeCategory(contentType string) (string, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "images", nil
	case contentType == "application/pdf":
		return "pdfs", nil
	case contentType == "application/vnd.ms-powerpoint",
		contentType == "application/vnd.openxmlformats-officedocument.presentationml.presentation":
		return "presentations", nil
	default:
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// SaveUploadedFile stores an uploaded file under the configured upload
// directory, partitioned by MIME category, and returns its relative URL.
func SaveUploadedFile(file *multipart.FileHeader) (string, error) {
	category, err := MimeCategory(file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(config.AppConfig.UploadDir, category)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405") + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + category + "/" + newFilename, nil
}
