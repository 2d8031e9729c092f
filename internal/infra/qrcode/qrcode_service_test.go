package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		level     string
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{name: "low", size: 128, level: "L", wantSize: 128, wantLevel: qrcode.Low},
		{name: "lower case quartile", size: 128, level: "q", wantSize: 128, wantLevel: qrcode.High},
		{name: "highest", size: 128, level: "H", wantSize: 128, wantLevel: qrcode.Highest},
		{name: "unknown level", size: 128, level: "X", wantSize: 128, wantLevel: qrcode.Medium},
		{name: "unset size", level: "M", wantSize: defaultSize, wantLevel: qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(tt.size, tt.level, "").(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.level)
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	qrBytes, err := svc.GenerateOrderQR("KIT-1A2B3C4D")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateOrderQR_EmptyReference(t *testing.T) {
	_, err := NewQRCodeService(256, "M", "").GenerateOrderQR("")
	assert.Error(t, err)
}

func TestQRCodeService_Content(t *testing.T) {
	bare, ok := NewQRCodeService(0, "", "").(*qrcodeService)
	require.True(t, ok)
	content, err := bare.content("TOUR-00FF00FF")
	require.NoError(t, err)
	assert.Equal(t, "TOUR-00FF00FF", content)

	linked, ok := NewQRCodeService(0, "", "https://shop.example.com/").(*qrcodeService)
	require.True(t, ok)
	content, err = linked.content("TOUR-00FF00FF")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/orders/TOUR-00FF00FF", content)
}
