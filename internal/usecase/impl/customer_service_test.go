package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerFixture struct {
	repo    *mockRepo.MockCustomerRepository
	hasher  *mockService.MockPasswordHasher
	tokens  *mockService.MockTokenService
	service usecase.CustomerUsecase
}

func newCustomerFixture(t *testing.T) *customerFixture {
	t.Helper()

	fx := &customerFixture{
		repo:   mockRepo.NewMockCustomerRepository(t),
		hasher: mockService.NewMockPasswordHasher(t),
		tokens: mockService.NewMockTokenService(t),
	}
	fx.service = NewCustomerService(CustomerServiceParams{
		CustomerRepo: fx.repo,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestCustomerService_Register_Success(t *testing.T) {
	fx := newCustomerFixture(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	fx.hasher.EXPECT().Hash("correct horse").Return("hashed", nil)
	fx.repo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.Email == "ada@example.com" && c.Name == "Ada Obi" && c.PasswordHash == "hashed" && c.ID != uuid.Nil
	})).Return(nil)
	fx.tokens.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), "ada@example.com").Return("token", expiresAt, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     " Ada Obi ",
		Email:    " Ada@Example.com ",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.Customer.Email)
	assert.Equal(t, "token", out.Tokens.AccessToken)
	assert.Equal(t, "Bearer", out.Tokens.TokenType)
	assert.Equal(t, expiresAt, out.Tokens.ExpiresAt)
}

func TestCustomerService_Register_Duplicate(t *testing.T) {
	fx := newCustomerFixture(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("password1").Return("hashed", nil)
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(repository.ErrDuplicateCustomer)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "password1"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerAlreadyExists))
}

func TestCustomerService_Register_WeakPassword(t *testing.T) {
	fx := newCustomerFixture(t)

	weak := domainerrors.NewValidationError(map[string]string{"password": "too short"})
	fx.hasher.EXPECT().Hash("x").Return("", weak)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "x"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "too short", validationErr.Fields()["password"])
}

func TestCustomerService_Login(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := newCustomerFixture(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(customer, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.tokens.EXPECT().GenerateAccessToken(customer.ID, customer.Email).Return("token", time.Now(), nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "secret"})

		require.NoError(t, err)
		assert.Same(t, customer, out.Customer)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := newCustomerFixture(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrCustomerNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := newCustomerFixture(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(customer, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("token failure", func(t *testing.T) {
		fx := newCustomerFixture(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(customer, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.tokens.EXPECT().GenerateAccessToken(customer.ID, customer.Email).Return("", time.Time{}, errors.New("no key"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "secret"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate access token")
	})
}
