//go:build unit

package store_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"storefront-engine/internal/infra"
	"storefront-engine/internal/infra/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kvStore interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStores(t *testing.T) {
	fileStore, err := store.NewFileStore(t.TempDir(), discardLogger())
	require.NoError(t, err)

	stores := map[string]kvStore{
		"file":   fileStore,
		"memory": store.NewMemoryStore(discardLogger()),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("absent key is not found", func(t *testing.T) {
				_, err := s.Load("cart")
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
			})

			t.Run("save replaces the whole value", func(t *testing.T) {
				require.NoError(t, s.Save("orders", []byte(`[{"id":"ORD-1"},{"id":"ORD-0"}]`)))
				require.NoError(t, s.Save("orders", []byte(`[]`)))

				got, err := s.Load("orders")
				require.NoError(t, err)
				assert.Equal(t, "[]", string(got))
			})

			t.Run("keys are independent", func(t *testing.T) {
				require.NoError(t, s.Save("loyaltyPoints", []byte(`"250"`)))
				require.NoError(t, s.Save("favorites", []byte(`[]`)))

				got, err := s.Load("loyaltyPoints")
				require.NoError(t, err)
				assert.Equal(t, `"250"`, string(got))
			})
		})
	}
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewFileStore(dir, discardLogger())
	require.NoError(t, err)

	t.Run("one file per key and no temp files left behind", func(t *testing.T) {
		require.NoError(t, s.Save("reviews", []byte(`[]`)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "reviews.json", entries[0].Name())
	})

	t.Run("values survive a new store on the same directory", func(t *testing.T) {
		require.NoError(t, s.Save("cart", []byte(`[{"id":1,"quantity":2}]`)))

		reopened, err := store.NewFileStore(dir, discardLogger())
		require.NoError(t, err)
		got, err := reopened.Load("cart")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"quantity":2}]`, string(got))
	})

	t.Run("path-like keys are rejected", func(t *testing.T) {
		err := s.Save("../escape", []byte(`{}`))
		assert.ErrorIs(t, err, store.ErrInvalidKey)

		_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.json"))
		assert.True(t, os.IsNotExist(err))
	})
}
