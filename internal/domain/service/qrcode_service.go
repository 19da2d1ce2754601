package service

// QRCodeService renders payment URIs as QR images.
type QRCodeService interface {
	// GeneratePaymentQR renders the given UPI payment URI as a PNG image.
	GeneratePaymentQR(paymentURI string) ([]byte, error)
}
