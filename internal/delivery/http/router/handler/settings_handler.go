package handler

import (
	"log/slog"
	"net/http"

	"dukaan/internal/delivery/http/response"
	"dukaan/internal/domain/entity"
	"dukaan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for shop profile handlers.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateSettingsRequest replaces the shop profile wholesale.
type UpdateSettingsRequest struct {
	Name        string `json:"name" validate:"required"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact" validate:"required"`
	UpiID       string `json:"upiId" validate:"required"`
}

// GetSettings returns the shop profile shown on the storefront.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// UpdateSettings replaces the shop profile from the admin console.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	settings, err := h.uc.UpdateSettings(c.Request().Context(), entity.StoreSettings{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Location:    req.Location,
		Contact:     req.Contact,
		UpiID:       req.UpiID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings updated")
}
