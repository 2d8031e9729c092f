package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Type     string `json:"type" validate:"required,oneof=kit tour church"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Email: "ada@example.com", Type: "kit", Quantity: 1}))

	err := v.Validate(&sampleRequest{Email: "nope", Quantity: -2})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"type":     "required",
		"quantity": "must be at least 1",
	}, validationErr.Fields())
}
