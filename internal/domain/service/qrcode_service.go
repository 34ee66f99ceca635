package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and parses scan-to-order QR codes.
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code pointing at a shop.
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)

	// ParseShopQR extracts the shop id from QR payload text.
	ParseShopQR(qrData string) (uuid.UUID, error)
}
