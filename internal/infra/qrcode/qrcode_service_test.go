package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://bartile.example/configurator")

	qrBytes, err := service.GenerateShareQR("eyJwIjoibGVnZW5kYXJ5LXNsYXRlIn0")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateShareQR_EmptyToken(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateShareQR("")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateShareQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		qrBytes, err := service.GenerateShareQR("token")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ShareURLRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"plain base", "https://bartile.example/configurator", "https://bartile.example/configurator?share=abc-_1"},
		{"base with query", "https://bartile.example/c?lang=en", "https://bartile.example/c?lang=en&share=abc-_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, "M", tt.baseURL)

			link := service.ShareURL("abc-_1")
			assert.Equal(t, tt.want, link)

			token, err := service.ParseShareURL(link)
			require.NoError(t, err)
			assert.Equal(t, "abc-_1", token)
		})
	}
}

func TestQRCodeService_ParseShareURL_Missing(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseShareURL("https://bartile.example/configurator")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no share parameter")

	_, err = service.ParseShareURL("://bad")
	assert.Error(t, err)
}
