package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	CartUC     usecase.CartUsecase
	SessionUC  usecase.SessionUsecase
	Logger     *slog.Logger
}

// AuthHandler handles customer registration and login
type AuthHandler struct {
	customerUC usecase.CustomerUsecase
	cartUC     usecase.CartUsecase
	sessionUC  usecase.SessionUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		customerUC: params.CustomerUC,
		cartUC:     params.CartUC,
		sessionUC:  params.SessionUC,
		logger:     params.Logger,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CustomerResponse is the public view of a customer
type CustomerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse is returned after registration or login
type AuthResponse struct {
	Customer *CustomerResponse    `json:"customer"`
	Tokens   *entity.AuthTokens   `json:"tokens"`
	Cart     *usecase.CartSummary `json:"cart,omitempty"`
}

// Register creates a customer account
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.customerUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.signedIn(c, http.StatusCreated, output)
}

// Login authenticates a customer and moves the anonymous cart to their account
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.customerUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.signedIn(c, http.StatusOK, output)
}

func (h *AuthHandler) signedIn(c echo.Context, status int, output *usecase.AuthOutput) error {
	resp := &AuthResponse{
		Customer: &CustomerResponse{
			ID:    output.Customer.ID,
			Name:  output.Customer.Name,
			Email: output.Customer.Email,
		},
		Tokens: output.Tokens,
	}

	if session, ok := deliverycontext.GetSession(c); ok {
		ctx := c.Request().Context()

		cart, err := h.cartUC.Open(ctx, session, &output.Customer.ID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		if err := middleware.SaveSession(c, h.sessionUC); err != nil {
			return response.HandleAppError(c, err)
		}

		resp.Cart = cart.Summary(ctx)
	}

	return response.Success(c, status, resp)
}
