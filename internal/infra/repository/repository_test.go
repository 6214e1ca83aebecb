//go:build unit

package repository_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/order"
	"storefront-engine/internal/infra"
	"storefront-engine/internal/infra/repository"
	"storefront-engine/tests/common/builder"
	repositorymock "storefront-engine/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPointsRepository(t *testing.T) {
	logger := discardLogger()

	testCases := []struct {
		name      string
		setupMock func(*repositorymock.MockStore)
		expected  int
		errKind   infra.RepositoryErrorKind
	}{
		{
			name: "bare text",
			setupMock: func(m *repositorymock.MockStore) {
				m.EXPECT().Load(repository.KeyLoyaltyPoints).Return([]byte("320"), nil)
			},
			expected: 320,
		},
		{
			name: "missing key",
			setupMock: func(m *repositorymock.MockStore) {
				m.EXPECT().Load(repository.KeyLoyaltyPoints).
					Return(nil, infra.WrapRepoErr(logger, infra.KindNotFound, repository.KeyLoyaltyPoints, "no stored value", nil))
			},
			errKind: infra.KindNotFound,
		},
		{
			name: "not a number",
			setupMock: func(m *repositorymock.MockStore) {
				m.EXPECT().Load(repository.KeyLoyaltyPoints).Return([]byte("many"), nil)
			},
			errKind: infra.KindDecodeFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := repositorymock.NewMockStore(ctrl)
			tc.setupMock(store)

			points, err := repository.NewPointsRepository(store, logger).Load()

			if tc.errKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.errKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, points)
		})
	}

	t.Run("save writes bare text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := repositorymock.NewMockStore(ctrl)
		store.EXPECT().Save(repository.KeyLoyaltyPoints, []byte("42")).Return(nil)

		require.NoError(t, repository.NewPointsRepository(store, logger).Save(42))
	})

	t.Run("save surfaces store errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := repositorymock.NewMockStore(ctrl)
		ioErr := infra.WrapRepoErr(logger, infra.KindIOFailure, repository.KeyLoyaltyPoints, "disk full", errors.New("ENOSPC"))
		store.EXPECT().Save(repository.KeyLoyaltyPoints, gomock.Any()).Return(ioErr)

		err := repository.NewPointsRepository(store, logger).Save(42)
		assert.True(t, infra.IsKind(err, infra.KindIOFailure))
	})
}

func TestCartRepository(t *testing.T) {
	logger := discardLogger()
	espresso := builder.NewProductBuilder().BuildDomain()

	t.Run("save writes the full cart as JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := repositorymock.NewMockStore(ctrl)
		line, err := cart.NewLine(espresso, 2)
		require.NoError(t, err)

		var saved []byte
		store.EXPECT().Save(repository.KeyCart, gomock.Any()).
			DoAndReturn(func(_ string, data []byte) error {
				saved = data
				return nil
			})

		repo := repository.NewCartRepository(store, logger)
		require.NoError(t, repo.Save([]cart.Line{line}))

		assert.Equal(t, repository.KeyCart, repo.Key())
		assert.JSONEq(t, `[{
			"id": 1,
			"name": "Dark Roast Espresso",
			"description": "Rich, bold, and full-bodied with notes of dark chocolate",
			"price": "18.99",
			"image": "product-espresso.jpg",
			"quantity": 2
		}]`, string(saved))
	})

	t.Run("load drops invalid lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := repositorymock.NewMockStore(ctrl)
		store.EXPECT().Load(repository.KeyCart).Return([]byte(`[
			{"id":1,"name":"Dark Roast Espresso","price":18.99,"quantity":1},
			{"id":2,"name":"","price":16.99,"quantity":1}
		]`), nil)

		lines, err := repository.NewCartRepository(store, logger).Load()

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Product().ID)
	})

	t.Run("load rejects a non-array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := repositorymock.NewMockStore(ctrl)
		store.EXPECT().Load(repository.KeyCart).Return([]byte(`{"id":1}`), nil)

		_, err := repository.NewCartRepository(store, logger).Load()
		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
	})
}

func TestOrderRepository(t *testing.T) {
	logger := discardLogger()
	placedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	line, err := cart.NewLine(builder.NewProductBuilder().BuildDomain(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder("ORD-1", []cart.Line{line}, placedAt, order.DefaultReadyWindow)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	store := repositorymock.NewMockStore(ctrl)

	var saved []byte
	store.EXPECT().Save(repository.KeyOrders, gomock.Any()).
		DoAndReturn(func(_ string, data []byte) error {
			saved = data
			return nil
		})
	repo := repository.NewOrderRepository(store, logger)
	require.NoError(t, repo.Save([]*order.Order{o}))
	assert.Contains(t, string(saved), `"status":"ordered"`)
	assert.Contains(t, string(saved), `"estimatedReady":"2025-03-01T09:15:00Z"`)

	store.EXPECT().Load(repository.KeyOrders).DoAndReturn(func(string) ([]byte, error) {
		return saved, nil
	})
	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, o.ID(), loaded[0].ID())
	assert.Equal(t, order.StatusPlaced, loaded[0].Status())
	assert.True(t, o.Total().Equal(loaded[0].Total()))
	assert.True(t, placedAt.Equal(loaded[0].PlacedAt()))
}
