package usecase

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// StorefrontUseCase owns the storefront session: the loaded catalog, the
// cart, the cart modal and the toasts waiting to be shown.
type StorefrontUseCase interface {
	LoadProducts(ctx context.Context) error
	LoadCart(ctx context.Context) error
	Reload(ctx context.Context) error

	Products() []domain.Product
	Catalog(c Criteria) []domain.Product

	AddToCart(productID int) (domain.Notice, bool)
	ClearCart() domain.Notice
	Cart() []domain.Product
	CartView() domain.CartView

	Modal() domain.ModalState
	HandleModal(ev domain.ModalEvent) domain.ModalState

	Notices() []domain.Notice
}

type storefrontUseCase struct {
	client   clients.CatalogClient
	sortOpts SortOptions
	log      *logrus.Logger

	mu       sync.RWMutex
	products []domain.Product
	cart     []domain.Product
	modal    domain.ModalState
	notices  []domain.Notice

	reloads singleflight.Group
}

func NewStorefrontUseCase(client clients.CatalogClient, sortOpts SortOptions, logger *logrus.Logger) StorefrontUseCase {
	return &storefrontUseCase{
		client:   client,
		sortOpts: sortOpts,
		log:      logger,
		products: []domain.Product{},
		cart:     []domain.Product{},
	}
}

// LoadProducts replaces the catalog and then loads the cart. On failure the
// catalog is left as it was and the cart is not requested. A cart failure
// only keeps the current cart; the product load still counts as done.
func (uc *storefrontUseCase) LoadProducts(ctx context.Context) error {
	uc.log.Info("Use Case: Loading products")
	products, err := uc.client.ListProducts(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Error loading products: %v", err)
		return err
	}

	uc.mu.Lock()
	uc.products = products
	uc.mu.Unlock()
	uc.log.Infof("Use Case: Catalog replaced with %d products", len(products))

	if err := uc.LoadCart(ctx); err != nil {
		uc.log.Warnf("Use Case: Keeping current cart after load failure: %v", err)
	}
	return nil
}

// LoadCart replaces the cart with the stored one. On failure the current
// cart is kept.
func (uc *storefrontUseCase) LoadCart(ctx context.Context) error {
	uc.log.Info("Use Case: Loading cart")
	cart, err := uc.client.GetCart(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Error loading cart: %v", err)
		return err
	}

	uc.mu.Lock()
	uc.cart = cart
	uc.mu.Unlock()
	uc.log.Infof("Use Case: Cart replaced with %d items", len(cart))
	return nil
}

// Reload re-runs the product and cart load. Callers that arrive while a
// reload is in flight share its result. The shared load does not stop when
// the caller that started it goes away; the client timeout bounds it.
func (uc *storefrontUseCase) Reload(ctx context.Context) error {
	loadCtx := context.WithoutCancel(ctx)
	_, err, shared := uc.reloads.Do("reload", func() (interface{}, error) {
		return nil, uc.LoadProducts(loadCtx)
	})
	if shared {
		uc.log.Debug("Use Case: Joined in-flight reload")
	}
	if err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	return nil
}

func (uc *storefrontUseCase) Products() []domain.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]domain.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

// Catalog is the displayed product list for the given control values.
func (uc *storefrontUseCase) Catalog(c Criteria) []domain.Product {
	products := uc.Products()
	filtered := ApplyFilters(products, c, uc.sortOpts)
	uc.log.Debugf("Use Case: Catalog filtered from %d to %d products (criteria: %+v)", len(products), len(filtered), c)
	return filtered
}

func (uc *storefrontUseCase) AddToCart(productID int) (domain.Notice, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	product, ok := domain.FindProduct(uc.products, productID)
	if !ok {
		uc.log.Debugf("Use Case: Ignoring add to cart for unknown product ID %d", productID)
		return domain.Notice{}, false
	}

	uc.cart = append(uc.cart, product)
	notice := domain.CartAddedNotice(product)
	uc.notices = append(uc.notices, notice)
	uc.log.Infof("Use Case: Product ID %d added to cart (%d items)", productID, len(uc.cart))
	return notice, true
}

func (uc *storefrontUseCase) ClearCart() domain.Notice {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.cart = []domain.Product{}
	notice := domain.CartClearedNotice()
	uc.notices = append(uc.notices, notice)
	uc.log.Info("Use Case: Cart cleared")
	return notice
}

func (uc *storefrontUseCase) Cart() []domain.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]domain.Product, len(uc.cart))
	copy(out, uc.cart)
	return out
}

func (uc *storefrontUseCase) CartView() domain.CartView {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return domain.NewCartView(uc.cart)
}

func (uc *storefrontUseCase) Modal() domain.ModalState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.modal
}

func (uc *storefrontUseCase) HandleModal(ev domain.ModalEvent) domain.ModalState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	next := uc.modal.Next(ev)
	if next != uc.modal {
		uc.log.Debugf("Use Case: Cart modal %s -> %s", uc.modal, next)
	}
	uc.modal = next
	return next
}

// Notices drains the toasts emitted since the last call.
func (uc *storefrontUseCase) Notices() []domain.Notice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := uc.notices
	uc.notices = nil
	return out
}
