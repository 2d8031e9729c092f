package impl

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open binds the cart stored in session to a SessionCart.
func (srv *cartService) Open(ctx context.Context, session *entity.Session, userID *uuid.UUID) (usecase.SessionCart, error) {
	if session == nil {
		return nil, errors.New("session is required to open a cart")
	}

	key := constants.SessionKeyAnonymousCart
	if userID != nil {
		key = constants.SessionKeyUserCartPrefix + userID.String()
		srv.migrateAnonymousCart(ctx, session, key)
	}

	cart := entity.NewCart()
	if _, err := session.Get(key, &cart.Entries); err != nil {
		srv.log(ctx).Warn("Discarding unreadable cart", slog.String("sessionID", session.ID.String()), slog.String("key", key), slog.Any("error", err))

		cart = entity.NewCart()
	}
	if cart.Entries == nil {
		cart.Entries = make(map[string]*entity.CartEntry)
	}

	for entryKey, entry := range cart.Entries {
		if entry == nil {
			srv.log(ctx).Warn("Dropping empty cart entry", slog.String("key", entryKey))
			delete(cart.Entries, entryKey)
		}
	}

	return &sessionCart{
		srv:     srv,
		session: session,
		key:     key,
		cart:    cart,
	}, nil
}

// migrateAnonymousCart moves the anonymous cart under the user's key.
// When the user already has a cart neither cart is touched: no overwrite, no merge.
func (srv *cartService) migrateAnonymousCart(ctx context.Context, session *entity.Session, userKey string) {
	raw, ok := session.Values[constants.SessionKeyAnonymousCart]
	if !ok {
		return
	}

	if session.Has(userKey) {
		srv.log(ctx).Debug("Keeping anonymous cart, user already has one", slog.String("sessionID", session.ID.String()), slog.String("key", userKey))

		return
	}

	session.Values[userKey] = raw
	session.Delete(constants.SessionKeyAnonymousCart)
	srv.log(ctx).Info("Migrated anonymous cart", slog.String("sessionID", session.ID.String()), slog.String("key", userKey))
}

// sessionCart implements usecase.SessionCart on top of a session value.
type sessionCart struct {
	srv     *cartService
	session *entity.Session
	key     string
	cart    *entity.Cart
}

func (c *sessionCart) Key() string { return c.key }

// save writes the entries back into the session.
func (c *sessionCart) save() error {
	if err := c.session.Set(c.key, c.cart.Entries); err != nil {
		return errors.Wrap(err, "failed to store cart in session")
	}

	return nil
}

func (c *sessionCart) Add(ctx context.Context, input usecase.AddToCartInput) (entity.AddOutcome, error) {
	if !input.Product.Type.IsValid() {
		return entity.AddOutcome{}, domainerrors.ErrInvalidProductType.WrapMessage(string(input.Product.Type))
	}

	product, err := c.srv.catalogRepo.FindProduct(ctx, input.Product)
	if errors.Is(err, repository.ErrProductNotFound) {
		c.srv.log(ctx).Debug("Rejected add of unknown product", slog.Any("product", input.Product))

		return entity.AddOutcome{Reason: entity.RejectReasonUnavailable}, nil
	}
	if err != nil {
		return entity.AddOutcome{}, errors.Wrap(err, "failed to find product")
	}

	outcome := c.cart.Add(product, input.Quantity, input.OverrideQuantity, input.VariationFields)
	if !outcome.Added {
		c.srv.log(ctx).Debug("Rejected add", slog.Any("product", input.Product), slog.String("reason", outcome.Reason))

		return outcome, nil
	}

	if err := c.save(); err != nil {
		return entity.AddOutcome{}, err
	}

	return outcome, nil
}

func (c *sessionCart) Remove(input usecase.RemoveFromCartInput) (string, error) {
	key := c.cart.Remove(input.Product, input.VariationFields)
	if key == "" {
		return "", nil
	}

	return key, c.save()
}

func (c *sessionCart) SetQuantity(key string, quantity int) (bool, error) {
	if !c.cart.SetQuantity(key, quantity) {
		return false, nil
	}

	return true, c.save()
}

func (c *sessionCart) Items(ctx context.Context) iter.Seq[*entity.CartItem] {
	return func(yield func(*entity.CartItem) bool) {
		lines, corrupt := c.cart.Lines()
		for _, key := range corrupt {
			c.srv.log(ctx).Warn("Skipping cart entry with invalid key", slog.String("key", key))
		}

		for _, line := range lines {
			product, err := c.srv.catalogRepo.FindProduct(ctx, line.Ref)
			if err != nil {
				c.srv.log(ctx).Warn("Skipping unresolvable cart entry", slog.String("key", line.Key), slog.Any("error", err))

				continue
			}

			item := &entity.CartItem{
				Key:             line.Key,
				Product:         product,
				Quantity:        line.Entry.Quantity,
				UnitPrice:       line.Entry.Price,
				TotalPrice:      line.Entry.Total(),
				VariationFields: line.Entry.VariationFields,
			}
			if !yield(item) {
				return
			}
		}
	}
}

func (c *sessionCart) Lines() ([]entity.CartLine, []string) {
	return c.cart.Lines()
}

func (c *sessionCart) Summary(ctx context.Context) *usecase.CartSummary {
	summary := &usecase.CartSummary{
		Items:      []*entity.CartItem{},
		Count:      c.cart.Len(),
		TotalPrice: c.cart.TotalPrice(),
	}
	for item := range c.Items(ctx) {
		summary.Items = append(summary.Items, item)
	}

	return summary
}

// Cleanup resolves every entry before removing anything, so a failed lookup
// leaves both the cart and the session unchanged.
func (c *sessionCart) Cleanup(ctx context.Context) (*entity.CleanupReport, error) {
	lines, corrupt := c.cart.Lines()

	report := &entity.CleanupReport{}
	for _, line := range lines {
		product, err := c.srv.catalogRepo.FindProduct(ctx, line.Ref)
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			report.Deleted = append(report.Deleted, entity.CartRemoval{
				Key:             line.Key,
				Product:         line.Ref,
				VariationFields: line.Entry.VariationFields,
			})
		case err != nil:
			return nil, errors.Wrap(err, "failed to resolve cart entry during cleanup")
		case !product.IsPurchasable():
			report.OutOfStock = append(report.OutOfStock, entity.CartRemoval{
				Key:             line.Key,
				Product:         line.Ref,
				Name:            product.Name,
				VariationFields: line.Entry.VariationFields,
			})
		}
	}

	for _, key := range corrupt {
		c.srv.log(ctx).Warn("Removing cart entry with invalid key", slog.String("key", key))
		c.cart.Delete(key)
	}
	for _, removal := range slices.Concat(report.Deleted, report.OutOfStock) {
		c.cart.Delete(removal.Key)
	}

	removed := len(report.Deleted) + len(report.OutOfStock)
	if removed == 0 && len(corrupt) == 0 {
		return nil, nil
	}

	if err := c.save(); err != nil {
		return nil, err
	}

	if removed == 0 {
		return nil, nil
	}

	c.srv.log(ctx).Info("Cart cleaned up", slog.Int("deleted", len(report.Deleted)), slog.Int("outOfStock", len(report.OutOfStock)))

	return report, nil
}

func (c *sessionCart) Len() int { return c.cart.Len() }

func (c *sessionCart) TotalPrice() decimal.Decimal { return c.cart.TotalPrice() }

func (c *sessionCart) IsEmpty() bool { return c.cart.IsEmpty() }

func (c *sessionCart) Clear() error {
	c.cart.Clear()

	return c.save()
}
