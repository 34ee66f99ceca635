package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"printshop/config"

	"github.com/google/uuid"
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
		{"Medium error correction", 256, "m"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateShopQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestNewFromConfig(t *testing.T) {
	svc := NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})

	qrBytes, err := svc.GenerateShopQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	assert.NotNil(t, NewFromConfig(&config.Config{}))
}

func TestQRCodeService_ParseShopQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	shopID := uuid.New()

	tests := []struct {
		name    string
		input   string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "valid", input: "SHOP:" + shopID.String(), want: shopID},
		{name: "surrounding whitespace", input: "  SHOP:" + shopID.String() + "\n", want: shopID},
		{name: "missing prefix", input: shopID.String(), wantErr: true},
		{name: "bad id", input: "SHOP:not-a-uuid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseShopQR(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
