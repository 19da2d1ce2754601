package entity

// StoreSettings is the singleton shop profile. Exactly one record exists; it
// is created with defaults on first access and replaced wholesale by the
// admin console.
type StoreSettings struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`        // Logo URI.
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"` // Owner mobile number, feeds the WhatsApp handoff link.
	UpiID       string `json:"upiId"`   // Payment address, feeds the UPI deep link and QR.
}
