package repository

import (
	"log/slog"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/domain/order"
	"storefront-engine/internal/infra/converter"
)

func NewCartRepository(store Store, logger *slog.Logger) *KeyRepository[[]cart.Line] {
	return &KeyRepository[[]cart.Line]{
		store:  store,
		key:    KeyCart,
		logger: logger,
		encode: jsonEncode(converter.CartLinesToRecords),
		decode: jsonList(converter.CartLinesFromRecords),
	}
}

func NewOrderRepository(store Store, logger *slog.Logger) *KeyRepository[[]*order.Order] {
	return &KeyRepository[[]*order.Order]{
		store:  store,
		key:    KeyOrders,
		logger: logger,
		encode: jsonEncode(converter.OrdersToRecords),
		decode: jsonList(converter.OrdersFromRecords),
	}
}

func NewFavoriteRepository(store Store, logger *slog.Logger) *KeyRepository[[]catalog.Product] {
	return &KeyRepository[[]catalog.Product]{
		store:  store,
		key:    KeyFavorites,
		logger: logger,
		encode: jsonEncode(converter.ProductsToRecords),
		decode: jsonList(converter.ProductsFromRecords),
	}
}
