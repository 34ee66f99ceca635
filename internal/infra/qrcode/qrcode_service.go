package qrcode

import (
	"fmt"
	"strings"

	"printshop/config"
	"printshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// shopPrefix is what the web client's scanner looks for before selecting a shop.
const shopPrefix = "SHOP:"

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the service from the optional qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateShopQR renders "SHOP:<id>" as a PNG
func (s *qrcodeService) GenerateShopQR(shopID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(shopPrefix+shopID.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShopQR parses scanned text and returns the shop ID
func (s *qrcodeService) ParseShopQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)
	if !strings.HasPrefix(qrData, shopPrefix) {
		return uuid.Nil, fmt.Errorf("invalid QR code payload: %q", qrData)
	}

	shopID, err := uuid.Parse(strings.TrimPrefix(qrData, shopPrefix))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse shop ID: %w", err)
	}

	return shopID, nil
}
