package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dukaan/internal/delivery/http/validator"
	"dukaan/internal/infra/deeplink"
	"dukaan/internal/infra/persistence/localstore"
	"dukaan/internal/infra/qrcode"
	"dukaan/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorefrontHandlers(t *testing.T) (*CatalogHandler, *OrderHandler) {
	t.Helper()

	store := localstore.NewMemoryStore()
	productRepo := localstore.NewProductRepository(store)
	orderRepo := localstore.NewOrderRepository(store)
	settingsRepo := localstore.NewSettingsRepository(store)

	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{ProductRepo: productRepo})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		OrderRepo:    orderRepo,
		ProductRepo:  productRepo,
		SettingsRepo: settingsRepo,
		LinkService:  deeplink.NewLinkService(),
		QRService:    qrcode.NewQRCodeService(256, "M"),
	})

	return NewCatalogHandler(catalogUC, slog.Default()), NewOrderHandler(orderUC, slog.Default())
}

func TestCatalogHandler_ListStorefront_Integration(t *testing.T) {
	catalogHandler, _ := newStorefrontHandlers(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, catalogHandler.ListStorefront(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID      string `json:"id"`
			Enabled bool   `json:"enabled"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	// First hit seeds the default catalog.
	require.Len(t, body.Data, 10)
	for _, product := range body.Data {
		assert.True(t, product.Enabled)
	}
}

func TestOrderHandler_Checkout_Integration(t *testing.T) {
	catalogHandler, orderHandler := newStorefrontHandlers(t)

	e := echo.New()
	e.Validator = validator.New()

	// Seed the catalog through the storefront listing.
	seedReq := httptest.NewRequest(http.MethodGet, "/products", nil)
	require.NoError(t, catalogHandler.ListStorefront(e.NewContext(seedReq, httptest.NewRecorder())))

	payload := `{"name":"Asha","mobile":"9876543210","address":"12 Main Road","items":[{"productId":"prod_0","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, orderHandler.Checkout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			Order struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"order"`
			PaymentURI  string `json:"paymentUri"`
			WhatsAppURL string `json:"whatsappUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, strings.HasPrefix(body.Data.Order.ID, "ord_"))
	assert.Equal(t, "Pending Verification", body.Data.Order.Status)
	assert.True(t, strings.HasPrefix(body.Data.PaymentURI, "upi://pay?"))
	assert.True(t, strings.HasPrefix(body.Data.WhatsAppURL, "https://wa.me/"))
}

func TestOrderHandler_Checkout_RejectsShortMobile(t *testing.T) {
	_, orderHandler := newStorefrontHandlers(t)

	e := echo.New()
	e.Validator = validator.New()

	payload := `{"name":"Asha","mobile":"12345","address":"12 Main Road","items":[{"productId":"prod_0","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := orderHandler.Checkout(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
