package service

import "dukaan/internal/domain/entity"

// LinkService composes the outbound handoff URLs for a created order. The
// links are returned to the client and opened there; the core never dials
// them.
type LinkService interface {
	// PaymentURI builds the upi://pay deep link for the order total, using
	// the shop's UPI address from settings.
	PaymentURI(settings entity.StoreSettings, order entity.Order) string

	// WhatsAppURL builds the wa.me link carrying the pre-composed order
	// message for the shop owner's contact number.
	WhatsAppURL(settings entity.StoreSettings, order entity.Order) string
}
