package service

type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code that identifies the order by reference.
	GenerateOrderQR(reference string) ([]byte, error)
}
