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

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	SessionUC  usecase.SessionUsecase
	CartUC     usecase.CartUsecase
	Logger     *slog.Logger
}

// CheckoutHandler turns the session cart into orders.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	sessionUC  usecase.SessionUsecase
	cartUC     usecase.CartUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		sessionUC:  params.SessionUC,
		cartUC:     params.CartUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest represents the checkout form. Which fields are required depends on the cart contents.
type CheckoutRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	CallUpNumber  string `json:"call_up_number"`
	State         string `json:"state"`
	LGA           string `json:"lga"`
	FullName      string `json:"full_name"`
	PickupOnCamp  bool   `json:"pickup_on_camp"`
	DeliveryState string `json:"delivery_state"`
	DeliveryLGA   string `json:"delivery_lga"`
}

func (r *CheckoutRequest) toForm() *entity.CheckoutForm {
	return &entity.CheckoutForm{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		CallUpNumber:  r.CallUpNumber,
		State:         r.State,
		LGA:           r.LGA,
		FullName:      r.FullName,
		PickupOnCamp:  r.PickupOnCamp,
		DeliveryState: r.DeliveryState,
		DeliveryLGA:   r.DeliveryLGA,
	}
}

// CheckoutResponse lists the orders created, one per product type
type CheckoutResponse struct {
	Orders []*entity.Order `json:"orders"`
	Notice *CartNotice     `json:"notice,omitempty"`
}

// Checkout places the orders for the cart
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	cart, ok := deliverycontext.GetCart(c)
	if !ok {
		return response.InternalServerError(c, "CONTEXT_ERROR", "Cart not found in context")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.checkoutUC.Checkout(c.Request().Context(), usecase.CheckoutInput{
		Cart:   cart,
		Form:   req.toForm(),
		UserID: deliverycontext.GetUserIDPtr(c),
	})
	if errors.Is(err, domainerrors.ErrPriceMismatch) {
		h.saveClearedCart(c)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Orders are committed by now: a failed save is logged, never returned.
	h.saveClearedCart(c)

	report := deliverycontext.GetCleanupReport(c)

	return response.Success(c, http.StatusCreated, &CheckoutResponse{
		Orders: orders,
		Notice: newCartNotice(report),
	})
}

func (h *CheckoutHandler) saveClearedCart(c echo.Context) {
	if err := middleware.SaveClearedCart(c, h.sessionUC, h.cartUC); err != nil {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to persist cleared cart", slog.Any("error", err))
	}
}
