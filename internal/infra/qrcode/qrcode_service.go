package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"bartile/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:3000/configurator"

	// shareParam is the query parameter that carries the share token.
	shareParam = "share"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// ShareURL appends the token to the configured configurator page URL.
func (s *qrcodeService) ShareURL(token string) string {
	sep := "?"
	if strings.Contains(s.baseURL, "?") {
		sep = "&"
	}

	return s.baseURL + sep + shareParam + "=" + url.QueryEscape(token)
}

// GenerateShareQR generates a PNG QR code for the share link of token
func (s *qrcodeService) GenerateShareQR(token string) ([]byte, error) {
	if token == "" {
		return nil, fmt.Errorf("share token is empty")
	}

	// Generate QR code
	qrCode, err := qrcode.New(s.ShareURL(token), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShareURL returns the share token carried by link
func (s *qrcodeService) ParseShareURL(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("failed to parse share link: %w", err)
	}

	token := u.Query().Get(shareParam)
	if token == "" {
		return "", fmt.Errorf("share link has no %s parameter", shareParam)
	}

	return token, nil
}
