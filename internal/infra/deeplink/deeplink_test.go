package deeplink

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"dukaan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() entity.StoreSettings {
	return entity.StoreSettings{
		Name:    "Parthi Store",
		Contact: "9499900625",
		UpiID:   "parthi101089-1@okaxis",
	}
}

func testOrder() entity.Order {
	return entity.Order{
		ID:             "ord_42",
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		Address:        "12 Gandhi Street, Tambaram",
		Items: []entity.OrderItem{
			{ProductID: "prod_0", Name: "Tea Powder Sachet", Quantity: 2, Price: 5},
			{ProductID: "prod_7", Name: "Notebook (Mini)", Quantity: 1, Price: 10},
		},
		TotalAmount: 20,
		Status:      entity.StatusPendingVerification,
		CreatedAt:   time.Now(),
	}
}

func TestLinkService_PaymentURI(t *testing.T) {
	svc := NewLinkService()

	uri := svc.PaymentURI(testSettings(), testOrder())

	assert.Equal(t, "upi://pay?pa=parthi101089-1@okaxis&pn=Parthi%20Store&am=20&cu=INR", uri)
}

func TestLinkService_PaymentURI_FractionalAmount(t *testing.T) {
	svc := NewLinkService()
	order := testOrder()
	order.TotalAmount = 20.5

	uri := svc.PaymentURI(testSettings(), order)

	assert.Contains(t, uri, "am=20.5&cu=INR")
}

func TestLinkService_WhatsAppURL(t *testing.T) {
	svc := NewLinkService()

	waURL := svc.WhatsAppURL(testSettings(), testOrder())

	require.True(t, strings.HasPrefix(waURL, "https://wa.me/919499900625?text="), waURL)

	parsed, err := url.Parse(waURL)
	require.NoError(t, err)
	message := parsed.Query().Get("text")

	assert.Contains(t, message, "Hello Parthi Store")
	assert.Contains(t, message, "Order ID: ord_42")
	assert.Contains(t, message, "Tea Powder Sachet x 2 = ₹10")
	assert.Contains(t, message, "Notebook (Mini) x 1 = ₹10")
	assert.Contains(t, message, "Total: ₹20")
	assert.Contains(t, message, "Name: Ravi")
	assert.Contains(t, message, "Phone: 9876543210")
	assert.Contains(t, message, "Address: 12 Gandhi Street, Tambaram")
}
