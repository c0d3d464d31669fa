package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCertificateNumber(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	number := GenerateCertificateNumber(issuedAt)
	assert.Regexp(t, `^WST-2026-[0-9A-F]{8}$`, number)

	// Numbers are unique across calls
	assert.NotEqual(t, number, GenerateCertificateNumber(issuedAt))
}

func TestMimeCategory(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"image/png", "images"},
		{"image/jpeg", "images"},
		{"application/pdf", "pdfs"},
		{"application/vnd.ms-powerpoint", "presentations"},
		{"application/vnd.openxmlformats-officedocument.presentationml.presentation", "presentations"},
	}
	for _, tc := range cases {
		got, err := MimeCategory(tc.contentType)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := MimeCategory("application/zip")
	assert.Error(t, err)
}
