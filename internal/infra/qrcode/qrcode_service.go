// Package qrcode renders order references as PNG QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// go-qrcode names the levels by recovery strength; configuration uses the
// letters printed in the QR standard.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService falls back to 256px and level M for unset or unknown values.
// With a baseURL the code encodes the staff lookup link instead of the bare reference.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:    size,
		level:   level,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *qrcodeService) GenerateOrderQR(reference string) ([]byte, error) {
	content, err := s.content(reference)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(content, s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "encode QR for %s", reference)
	}

	return png, nil
}

func (s *qrcodeService) content(reference string) (string, error) {
	if reference == "" {
		return "", errors.New("order reference is required")
	}
	if s.baseURL == "" {
		return reference, nil
	}

	link, err := url.JoinPath(s.baseURL, "orders", reference)
	if err != nil {
		return "", errors.Wrapf(err, "build lookup link from %q", s.baseURL)
	}

	return link, nil
}
