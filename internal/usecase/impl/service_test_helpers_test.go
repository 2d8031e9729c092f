package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "storefront_session",
			TTL:        time.Hour,
		},
	}
}

func newTestProduct(productType entity.ProductType, price string) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Type:      productType,
		Name:      string(productType) + " item",
		Price:     decimal.RequireFromString(price),
		Available: true,
	}
}

// cartLine describes one entry seeded directly into a session cart.
type cartLine struct {
	product  *entity.Product
	quantity int
	fields   map[string]string
}

// seedSession stores the given lines under the anonymous cart key without touching the catalog.
func seedSession(t *testing.T, lines ...cartLine) *entity.Session {
	t.Helper()

	cart := entity.NewCart()
	for _, line := range lines {
		outcome := cart.Add(line.product, line.quantity, false, line.fields)
		require.True(t, outcome.Added)
	}

	session := entity.NewSession(time.Now(), time.Hour)
	require.NoError(t, session.Set(constants.SessionKeyAnonymousCart, cart.Entries))
	session.MarkSaved()

	return session
}

// openSeededCart opens an anonymous cart over the seeded lines.
func openSeededCart(t *testing.T, catalog repository.CatalogRepository, lines ...cartLine) (usecase.SessionCart, *entity.Session) {
	t.Helper()

	session := seedSession(t, lines...)
	srv := NewCartService(CartServiceParams{CatalogRepo: catalog, Logger: newDiscardLogger()})

	cart, err := srv.Open(context.Background(), session, nil)
	require.NoError(t, err)

	return cart, session
}

// txFixture runs every Execute call against a fixed mock factory and returns the callback's error.
type txFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	catalog   *mockRepo.MockCatalogRepository
	orders    *mockRepo.MockOrderRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	fx := &txFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		catalog:   mockRepo.NewMockCatalogRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
	}

	return fx
}

func (fx *txFixture) expectExecute(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}
