package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateDishShareQR generates a PNG QR code encoding the share URL of a dish.
	GenerateDishShareQR(dishID uuid.UUID) ([]byte, error)
}
