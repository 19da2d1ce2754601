// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dukaan/internal/delivery/http/middleware"
	"dukaan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	SettingsHandler *handler.SettingsHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	settingsHandler *handler.SettingsHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		settingsHandler: params.SettingsHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	e.GET("/products", r.catalogHandler.ListStorefront)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/settings", r.settingsHandler.GetSettings)
	e.POST("/cart/quote", r.orderHandler.QuoteCart)

	// Checkout and order tracking
	e.POST("/checkout", r.orderHandler.Checkout)
	e.GET("/orders/:id", r.orderHandler.GetOrder)
	e.GET("/orders/:id/qr", r.orderHandler.PaymentQR)

	// Admin console routes
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/login", r.adminHandler.Login)
	}

	// Admin routes that require authentication and the "admin" role
	managedGroup := adminGroup.Group("")
	managedGroup.Use(r.authMiddleware.Authenticate)
	managedGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		managedGroup.GET("/products", r.catalogHandler.ListProducts)
		managedGroup.POST("/products", r.catalogHandler.SaveProduct)
		managedGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		managedGroup.GET("/orders", r.orderHandler.ListOrders)
		managedGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)

		managedGroup.PUT("/settings", r.settingsHandler.UpdateSettings)
	}
}
