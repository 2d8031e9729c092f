package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrOrderNotFound.WrapMessage("order 42")

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, "order 42: Order not found", err.Error())

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestValidationError(t *testing.T) {
	err := NewMissingFieldsError([]string{"phone", "email"})

	assert.Equal(t, "validation failed: email, phone", err.Error())
	assert.Equal(t, map[string]string{"email": "required", "phone": "required"}, err.Fields())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())

	var target *ValidationError
	assert.ErrorAs(t, errors.Wrap(err, "checkout"), &target)
}

func TestDatabaseExecuteError_UnwrapsDriverError(t *testing.T) {
	driverErr := errors.New("connection refused")
	err := NewDatabaseExecuteError(driverErr, "failed to create order")

	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, "failed to create order: connection refused", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Database execution failed", err.Message())
}
