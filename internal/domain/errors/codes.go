package errors

import "net/http"

var errValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")

// Catalog
var (
	ErrProductNotFound    = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", "")
	ErrProductUnavailable = NewBaseError(http.StatusConflict, "PRODUCT_UNAVAILABLE", "A product in your cart is no longer available", "")
	ErrInvalidProductType = NewBaseError(http.StatusBadRequest, "INVALID_PRODUCT_TYPE", "Unknown product type", "")
)

// Cart and session
var (
	ErrCartEmpty        = NewBaseError(http.StatusBadRequest, "CART_EMPTY", "Your cart is empty", "")
	ErrCartItemNotFound = NewBaseError(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Cart item not found", "")
	ErrPriceMismatch    = NewBaseError(http.StatusConflict, "PRICE_MISMATCH",
		"Prices in your cart no longer match the catalog; the cart has been cleared", "")
	ErrSessionConflict = NewBaseError(http.StatusConflict, "SESSION_CONFLICT",
		"Your session was changed by another request, please retry", "")
)

// Orders
var (
	ErrOrderNotFound       = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", "")
	ErrOrderCreationFailed = NewBaseError(http.StatusInternalServerError, "ORDER_CREATION_FAILED", "Failed to place order", "")
	ErrForbidden           = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
)

// Customers
var (
	ErrCustomerAlreadyExists = NewBaseError(http.StatusConflict, "CUSTOMER_ALREADY_EXISTS", "This email address is already registered", "")
	ErrInvalidCredentials    = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", "")
	ErrPasswordHashFailed    = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed", "")
)
