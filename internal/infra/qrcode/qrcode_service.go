// Package qrcode renders and parses connect QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"venture/config"
	"venture/internal/domain/entity"
	"venture/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	connectType = "connect"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type       string `json:"type"`
	EntityType string `json:"entity_type"`
	ProfileID  string `json:"profile_id"`
}

// New builds the service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// parseRecoveryLevel accepts either the letter or the name of the level.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateConnectQR generates a PNG QR code that points at a profile.
func (s *qrcodeService) GenerateConnectQR(entityType entity.EntityType, profileID uuid.UUID) ([]byte, error) {
	payload, err := EncodePayload(entityType, profileID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseConnectQR parses QR code data and returns the profile it points at.
func (s *qrcodeService) ParseConnectQR(qrData string) (entity.EntityType, uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != connectType {
		return "", uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	entityType, ok := entity.ParseEntityType(data.EntityType)
	if !ok {
		return "", uuid.Nil, fmt.Errorf("invalid QR code entity type: %s", data.EntityType)
	}

	profileID, err := uuid.Parse(data.ProfileID)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to parse profile ID: %w", err)
	}

	return entityType, profileID, nil
}

// EncodePayload returns the JSON text embedded in a connect QR code.
func EncodePayload(entityType entity.EntityType, profileID uuid.UUID) (string, error) {
	jsonData, err := json.Marshal(QRCodeData{
		Type:       connectType,
		EntityType: entityType.String(),
		ProfileID:  profileID.String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return string(jsonData), nil
}
