package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at the share link for token
	GenerateShareQR(token string) ([]byte, error)

	// ShareURL returns the link encoded in the QR code for token
	ShareURL(token string) string

	// ParseShareURL extracts the share token from a link produced by ShareURL
	ParseShareURL(link string) (string, error)
}
