package qrcode

import (
	"fmt"
	"strings"

	"potluck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. The base URL is the
// externally visible address the encoded share links point at.
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateDishShareQR generates a PNG QR code encoding the dish's share URL.
func (s *qrcodeService) GenerateDishShareQR(dishID uuid.UUID) ([]byte, error) {
	shareURL := fmt.Sprintf("%s/dishes/%s", s.baseURL, dishID)

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
