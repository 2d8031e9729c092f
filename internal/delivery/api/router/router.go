// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProductHandler    *handler.ProductHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	OrderHandler      *handler.OrderHandler
	AuthMiddleware    *middleware.AuthMiddleware
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	productHandler    *handler.ProductHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	orderHandler      *handler.OrderHandler
	authMiddleware    *middleware.AuthMiddleware
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		productHandler:    params.ProductHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		orderHandler:      params.OrderHandler,
		authMiddleware:    params.AuthMiddleware,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes carry the session so login can claim the anonymous cart
	authGroup := e.Group("/auth")
	authGroup.Use(r.sessionMiddleware.Load)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	apiV1 := e.Group("/api/v1")

	// Catalog is public and sessionless
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:type/:id", r.productHandler.GetProduct)
	}

	// Cart and checkout work for anonymous and signed in customers alike.
	// Order matters: the user decides which cart the session yields, and the cart is cleaned before use.
	shopGroup := apiV1.Group("")
	shopGroup.Use(r.authMiddleware.Identify, r.sessionMiddleware.Load, r.sessionMiddleware.Cart)
	{
		shopGroup.GET("/cart", r.cartHandler.GetCart)
		shopGroup.DELETE("/cart", r.cartHandler.ClearCart)
		shopGroup.POST("/cart/items", r.cartHandler.AddItem)
		shopGroup.PATCH("/cart/items", r.cartHandler.UpdateItem)
		shopGroup.DELETE("/cart/items", r.cartHandler.RemoveItem)
		shopGroup.POST("/checkout", r.checkoutHandler.Checkout)
	}

	// Order history requires authentication
	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id/qr", r.orderHandler.GetOrderQR)
	}
}
