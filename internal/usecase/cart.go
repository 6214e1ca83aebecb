package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/domain/order"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/pkg/schedule"
	"storefront-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart.go -destination=../../tests/mock/usecase/mock_cart.go -package=usecasemock

type CartRepository = shared.Repository[[]cart.Line]
type OrderRepository = shared.Repository[[]*order.Order]

// OrderTiming drives the simulated kitchen. Both delays count from
// placement.
type OrderTiming struct {
	PreparingDelay time.Duration
	ReadyDelay     time.Duration
	ReadyWindow    time.Duration
}

func NewOrderTiming(cfg config.EngineConfig) OrderTiming {
	return OrderTiming{
		PreparingDelay: cfg.OrderPreparingDelay,
		ReadyDelay:     cfg.OrderReadyDelay,
		ReadyWindow:    cfg.OrderReadyWindow,
	}
}

type CartUseCase interface {
	AddToCart(product catalog.Product)
	RemoveFromCart(productID int)
	UpdateQuantity(productID, quantity int) error
	ClearCart()
	Lines() []cart.Line
	TotalItems() int
	TotalPrice() decimal.Decimal
	// PlaceOrder returns false when the cart is empty.
	PlaceOrder() (*order.Order, bool)
	Orders() []*order.Order
	Order(id string) (*order.Order, error)
}

type cartUseCaseImpl struct {
	mu        sync.Mutex
	cart      *cart.Cart
	orders    []*order.Order // newest first
	cartRepo  CartRepository
	orderRepo OrderRepository
	sink      notification.Sink
	scheduler schedule.Scheduler
	clock     clock.Clock
	ids       shared.IDGenerator
	timing    OrderTiming
	logger    *slog.Logger
}

func NewCartUseCase(
	cartRepo CartRepository,
	orderRepo OrderRepository,
	sink notification.Sink,
	scheduler schedule.Scheduler,
	clk clock.Clock,
	ids shared.IDGenerator,
	timing OrderTiming,
	logger *slog.Logger,
) CartUseCase {
	lines := shared.Hydrate(logger, cartRepo, "cart", nil)
	orders := shared.Hydrate(logger, orderRepo, "orders", nil)

	return &cartUseCaseImpl{
		cart:      cart.New(lines...),
		orders:    orders,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		sink:      sink,
		scheduler: scheduler,
		clock:     clk,
		ids:       ids,
		timing:    timing,
		logger:    logger,
	}
}

func (uc *cartUseCaseImpl) AddToCart(product catalog.Product) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	existed, err := uc.cart.Add(product)
	if err != nil {
		uc.sink.Notify(notification.Destructive(notification.KindCartLimitReached,
			"Quantity Limit Reached", fmt.Sprintf("You can order at most %d of %s", cart.MaxQuantity, product.Name)))
		return
	}
	uc.persistCart()

	if existed {
		uc.sink.Notify(notification.New(notification.KindCartUpdated,
			"Cart Updated", fmt.Sprintf("%s quantity increased", product.Name)))
		return
	}
	uc.sink.Notify(notification.New(notification.KindCartAdded,
		"Added to Cart", fmt.Sprintf("%s has been added to your cart", product.Name)))
}

// RemoveFromCart notifies even when nothing was removed.
func (uc *cartUseCaseImpl) RemoveFromCart(productID int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.removeLocked(productID)
}

// UpdateQuantity rejects quantities above cart.MaxQuantity and leaves the
// line untouched.
func (uc *cartUseCaseImpl) UpdateQuantity(productID, quantity int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if quantity <= 0 {
		uc.removeLocked(productID)
		return nil
	}
	found, err := uc.cart.SetQuantity(productID, quantity)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if found {
		uc.persistCart()
	}
	return nil
}

func (uc *cartUseCaseImpl) ClearCart() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.cart.Clear()
	uc.persistCart()
}

func (uc *cartUseCaseImpl) Lines() []cart.Line {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.Lines()
}

func (uc *cartUseCaseImpl) TotalItems() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.TotalItems()
}

func (uc *cartUseCaseImpl) TotalPrice() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.TotalPrice()
}

func (uc *cartUseCaseImpl) PlaceOrder() (*order.Order, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cart.IsEmpty() {
		uc.sink.Notify(notification.Destructive(notification.KindCartEmpty,
			"Cart is Empty", "Add items to your cart before placing an order"))
		return nil, false
	}

	placedAt := uc.clock.Now()
	o, err := order.NewOrder(uc.ids.NewID(shared.OrderIDPrefix), uc.cart.Lines(), placedAt, uc.timing.ReadyWindow)
	if err != nil {
		// only reachable with an empty id from a broken generator
		uc.logger.Error("Failed to freeze order", slog.String("error", err.Error()))
		return nil, false
	}

	uc.orders = append([]*order.Order{o}, uc.orders...)
	uc.cart.Clear()
	uc.persistOrders()
	uc.persistCart()

	uc.sink.Notify(notification.New(notification.KindOrderPlaced,
		"Order Placed Successfully!", fmt.Sprintf("Order %s is being processed", o.ID())).WithRef(o.ID()))

	id := o.ID()
	uc.scheduler.AfterFunc(uc.timing.PreparingDelay, func() {
		uc.advanceOrder(id, order.StatusPlaced, order.StatusPreparing)
	})
	uc.scheduler.AfterFunc(uc.timing.ReadyDelay, func() {
		uc.advanceOrder(id, order.StatusPreparing, order.StatusReady)
	})
	uc.logger.Debug("Scheduled order progression",
		slog.String("order_id", id),
		slog.Duration("preparing_in", uc.timing.PreparingDelay),
		slog.Duration("ready_in", uc.timing.ReadyDelay),
	)

	return o.Clone(), true
}

func (uc *cartUseCaseImpl) Orders() []*order.Order {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]*order.Order, 0, len(uc.orders))
	for _, o := range uc.orders {
		out = append(out, o.Clone())
	}
	return out
}

func (uc *cartUseCaseImpl) Order(id string) (*order.Order, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	o := uc.findOrder(id)
	if o == nil {
		return nil, errs.ErrOrderNotFound
	}
	return o.Clone(), nil
}

// advanceOrder is the timer callback. The order is looked up again by id and
// only moved if it is still in from.
func (uc *cartUseCaseImpl) advanceOrder(id string, from, to order.Status) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	o := uc.findOrder(id)
	if o == nil || !o.Advance(from, to) {
		uc.logger.Debug("Skipped stale order transition",
			slog.String("order_id", id),
			slog.String("to", to.String()),
		)
		return
	}
	uc.persistOrders()

	switch to {
	case order.StatusPreparing:
		uc.sink.Notify(notification.New(notification.KindOrderPreparing,
			"Order Update", "Your order is now being prepared!").WithRef(id))
	case order.StatusReady:
		uc.sink.Notify(notification.New(notification.KindOrderReady,
			"Order Ready!", "Your order is ready for pickup!").WithRef(id))
	}
}

func (uc *cartUseCaseImpl) removeLocked(productID int) {
	if uc.cart.Remove(productID) {
		uc.persistCart()
	}
	uc.sink.Notify(notification.New(notification.KindCartRemoved,
		"Removed from Cart", "Item has been removed from your cart"))
}

func (uc *cartUseCaseImpl) findOrder(id string) *order.Order {
	for _, o := range uc.orders {
		if o.ID() == id {
			return o
		}
	}
	return nil
}

func (uc *cartUseCaseImpl) persistCart() {
	shared.Persist(uc.logger, uc.cartRepo, "cart", uc.cart.Lines())
}

func (uc *cartUseCaseImpl) persistOrders() {
	shared.Persist(uc.logger, uc.orderRepo, "orders", uc.orders)
}
