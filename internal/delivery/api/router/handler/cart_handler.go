package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// CartHandler serves the session cart opened by the cart middleware.
type CartHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding a product to the cart
type AddCartItemRequest struct {
	ProductType      string            `json:"product_type" validate:"required,oneof=kit tour church"`
	ProductID        string            `json:"product_id" validate:"required,uuid"`
	Quantity         int               `json:"quantity" validate:"min=1"`
	OverrideQuantity bool              `json:"override_quantity"`
	VariationFields  map[string]string `json:"variation_fields"`
}

// UpdateCartItemRequest represents the request body for editing a cart line directly
type UpdateCartItemRequest struct {
	Key      string `json:"key" validate:"required"`
	Quantity int    `json:"quantity"`
}

// RemoveCartItemRequest represents the request body for removing a product from the cart.
// Omitting variation_fields removes the first matching line.
type RemoveCartItemRequest struct {
	ProductType     string            `json:"product_type" validate:"required,oneof=kit tour church"`
	ProductID       string            `json:"product_id" validate:"required,uuid"`
	VariationFields map[string]string `json:"variation_fields"`
}

// CartResponse is returned by every cart endpoint
type CartResponse struct {
	Cart    *usecase.CartSummary `json:"cart"`
	Outcome *entity.AddOutcome   `json:"outcome,omitempty"`
	Removed *string              `json:"removed,omitempty"`
	Notice  *CartNotice          `json:"notice,omitempty"`
}

// GetCart returns the cart contents
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, ok := deliverycontext.GetCart(c)
	if !ok {
		return response.InternalServerError(c, "CONTEXT_ERROR", "Cart not found in context")
	}

	return response.Success(c, http.StatusOK, h.newCartResponse(c, cart))
}

// AddItem adds a product to the cart. A rejected add is reported in the outcome, not as an error.
func (h *CartHandler) AddItem(c echo.Context) error {
	cart, ok := deliverycontext.GetCart(c)
	if !ok {
		return response.InternalServerError(c, "CONTEXT_ERROR", "Cart not found in context")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	outcome, err := cart.Add(c.Request().Context(), usecase.AddToCartInput{
		Product:          entity.ProductRef{Type: entity.ProductType(req.ProductType), ID: uuid.MustParse(req.ProductID)},
		Quantity:         req.Quantity,
		OverrideQuantity: req.OverrideQuantity,
		VariationFields:  req.VariationFields,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if outcome.Added {
		if err := middleware.SaveSession(c, h.sessionUC); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	resp := h.newCartResponse(c, cart)
	resp.Outcome = &outcome

	return response.Success(c, http.StatusOK, resp)
}

// UpdateItem sets the quantity of a cart line. A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	cart, ok := deliverycontext.GetCart(c)
	if !ok {
		return response.InternalServerError(c, "CONTEXT_ERROR", "Cart not found in context")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	found, err := cart.SetQuantity(req.Key, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !found {
		return response.HandleAppError(c, domainerrors.ErrCartItemNotFound)
	}

	if err := middleware.SaveSession(c, h.sessionUC); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.newCartResponse(c, cart))
}

// RemoveItem removes one line of a product. Removing something that is not in the cart is a no-op.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, ok := deliverycontext.GetCart(c)
	if !ok {
		return response.InternalServerError(c, "CONTEXT_ERROR", "Cart not found in context")
	}

	var req RemoveCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	removed, err := cart.Remove(usecase.RemoveFromCartInput{
		Product:         entity.ProductRef{Type: entity.ProductType(req.ProductType), ID: uuid.MustParse(req.ProductID)},
		VariationFields: req.VariationFields,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := h.newCartResponse(c, cart)
	if removed != "" {
		if err := middleware.SaveSession(c, h.sessionUC); err != nil {
			return response.HandleAppError(c, err)
		}
		resp.Removed = &removed
	}

	return response.Success(c, http.StatusOK, resp)
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	cart, ok := deliverycontext.GetCart(c)
	if !ok {
		return response.InternalServerError(c, "CONTEXT_ERROR", "Cart not found in context")
	}

	if err := cart.Clear(); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := middleware.SaveSession(c, h.sessionUC); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.newCartResponse(c, cart))
}

func (h *CartHandler) newCartResponse(c echo.Context, cart usecase.SessionCart) *CartResponse {
	report := deliverycontext.GetCleanupReport(c)

	return &CartResponse{
		Cart:   cart.Summary(c.Request().Context()),
		Notice: newCartNotice(report),
	}
}
