// Package deeplink composes the outbound payment and messaging URLs handed
// to the storefront client. The URLs are opened on the customer's device;
// this process never dials them.
package deeplink

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"dukaan/internal/domain/entity"
	"dukaan/internal/domain/service"
)

// countryCallingCode prefixes the shop contact number in wa.me links.
const countryCallingCode = "91"

type linkService struct{}

// NewLinkService is the constructor for linkService.
func NewLinkService() service.LinkService {
	return &linkService{}
}

// PaymentURI builds the upi://pay deep link for the order total.
func (s *linkService) PaymentURI(settings entity.StoreSettings, order entity.Order) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR",
		settings.UpiID,
		escapeQuery(settings.Name),
		formatAmount(order.TotalAmount),
	)
}

// WhatsAppURL builds the wa.me link carrying the pre-composed order message.
func (s *linkService) WhatsAppURL(settings entity.StoreSettings, order entity.Order) string {
	var lines []string
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%s x %d = ₹%s", item.Name, item.Quantity, formatAmount(item.Price*float64(item.Quantity))))
	}

	message := fmt.Sprintf(`Hello %s, I would like to place an order:

Order ID: %s
Items:
%s

Total: ₹%s

Delivery Details:
Name: %s
Phone: %s
Address: %s

I am making the payment via UPI.`,
		settings.Name,
		order.ID,
		strings.Join(lines, "\n"),
		formatAmount(order.TotalAmount),
		order.CustomerName,
		order.CustomerMobile,
		order.Address,
	)

	return fmt.Sprintf("https://wa.me/%s%s?text=%s", countryCallingCode, settings.Contact, escapeQuery(message))
}

// escapeQuery percent-encodes a query value with %20 for spaces, the form
// messaging and payment apps expect in deep links.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// formatAmount renders a rupee amount without trailing zeros (20, 20.5).
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
