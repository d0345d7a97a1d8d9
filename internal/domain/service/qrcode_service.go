package service

import (
	"venture/internal/domain/entity"

	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateConnectQR generates a PNG QR code that points at a profile.
	GenerateConnectQR(entityType entity.EntityType, profileID uuid.UUID) ([]byte, error)

	// ParseConnectQR parses QR code data and returns the profile it points at.
	ParseConnectQR(qrData string) (entity.EntityType, uuid.UUID, error)
}
