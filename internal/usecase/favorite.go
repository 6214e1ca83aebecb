package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/usecase/shared"
)

//go:generate mockgen -source=favorite.go -destination=../../tests/mock/usecase/mock_favorite.go -package=usecasemock

type FavoriteRepository = shared.Repository[[]catalog.Product]

type FavoriteUseCase interface {
	AddToFavorites(product catalog.Product)
	RemoveFromFavorites(productID int)
	IsFavorite(productID int) bool
	Favorites() []catalog.Product
}

type favoriteUseCaseImpl struct {
	mu        sync.Mutex
	favorites []catalog.Product
	repo      FavoriteRepository
	sink      notification.Sink
	logger    *slog.Logger
}

func NewFavoriteUseCase(repo FavoriteRepository, sink notification.Sink, logger *slog.Logger) FavoriteUseCase {
	return &favoriteUseCaseImpl{
		favorites: shared.Hydrate(logger, repo, "favorites", nil),
		repo:      repo,
		sink:      sink,
		logger:    logger,
	}
}

// AddToFavorites is silent when the product is already a favorite.
func (uc *favoriteUseCaseImpl) AddToFavorites(product catalog.Product) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.indexOf(product.ID) >= 0 {
		return
	}
	uc.favorites = append(uc.favorites, product)
	uc.persist()

	uc.sink.Notify(notification.New(notification.KindFavoriteAdded,
		"Added to Favorites", fmt.Sprintf("%s saved to your favorites!", product.Name)))
}

func (uc *favoriteUseCaseImpl) RemoveFromFavorites(productID int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if i := uc.indexOf(productID); i >= 0 {
		uc.favorites = append(uc.favorites[:i:i], uc.favorites[i+1:]...)
		uc.persist()
	}
	uc.sink.Notify(notification.New(notification.KindFavoriteRemoved,
		"Removed from Favorites", "Item removed from favorites"))
}

func (uc *favoriteUseCaseImpl) IsFavorite(productID int) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.indexOf(productID) >= 0
}

func (uc *favoriteUseCaseImpl) Favorites() []catalog.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]catalog.Product, len(uc.favorites))
	copy(out, uc.favorites)
	return out
}

func (uc *favoriteUseCaseImpl) indexOf(productID int) int {
	for i, p := range uc.favorites {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func (uc *favoriteUseCaseImpl) persist() {
	shared.Persist(uc.logger, uc.repo, "favorites", uc.favorites)
}
