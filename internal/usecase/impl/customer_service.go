// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	now          func() time.Time
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService. It receives all dependencies as interfaces.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and logs it in.
func (srv *customerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := srv.now()
	customer := &entity.Customer{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.customerRepo.Create(ctx, customer)
	if errors.Is(err, repository.ErrDuplicateCustomer) {
		return nil, domainerrors.ErrCustomerAlreadyExists.WrapMessage(email)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return srv.issueTokens(ctx, customer)
}

// Login verifies the password and issues an access token.
func (srv *customerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	customer, err := srv.customerRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		srv.log(ctx).Info("Login for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		srv.log(ctx).Info("Password mismatch on login", slog.String("customerID", customer.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(ctx, customer)
}

func (srv *customerService) issueTokens(ctx context.Context, customer *entity.Customer) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(customer.ID, customer.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.String("customerID", customer.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		Customer: customer,
		Tokens: &entity.AuthTokens{
			AccessToken: token,
			TokenType:   tokenTypeBearer,
			ExpiresAt:   expiresAt,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
