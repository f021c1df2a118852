package service

// QRCodeService renders links as QR code images.
type QRCodeService interface {
	// GenerateLinkQR returns a PNG encoding link.
	GenerateLinkQR(link string) ([]byte, error)
}
