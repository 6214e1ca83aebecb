//go:build unit

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"storefront-engine/internal/infra/catalog"
	"storefront-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m, err := catalog.Default()
	require.NoError(t, err)

	products := m.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "Dark Roast Espresso", products[0].Name)
	assert.Equal(t, "18.99", products[0].Price.StringFixed(2))
	assert.Equal(t, "Signature Latte", products[2].Name)

	rewards := m.Rewards().All()
	require.Len(t, rewards, 5)
	assert.Equal(t, "COOKIE", rewards[0].Code().String())
	assert.Equal(t, 50, rewards[0].Points())
	assert.Equal(t, 500, rewards[4].Points())
}

func TestMenu_Product(t *testing.T) {
	m, err := catalog.Default()
	require.NoError(t, err)

	p, err := m.Product(2)
	require.NoError(t, err)
	assert.Equal(t, "Pour Over Blend", p.Name)

	_, err = m.Product(99)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "minimal menu",
			yaml: `
products:
  - id: 7
    name: Cold Brew
    price: "4.50"
`,
		},
		{
			name: "missing price defaults to zero",
			yaml: `
products:
  - id: 7
    name: Tap Water
`,
		},
		{name: "invalid yaml", yaml: "products: [", wantErr: true},
		{
			name: "duplicate product id",
			yaml: `
products:
  - {id: 1, name: A, price: "1"}
  - {id: 1, name: B, price: "2"}
`,
			wantErr: true,
		},
		{
			name:    "bad price",
			yaml:    `products: [{id: 1, name: A, price: "one"}]`,
			wantErr: true,
		},
		{
			name:    "negative price",
			yaml:    `products: [{id: 1, name: A, price: "-1"}]`,
			wantErr: true,
		},
		{
			name:    "lower case reward code is normalised",
			yaml:    `rewards: [{code: mug, name: Free Mug, points: 75}]`,
			wantErr: false,
		},
		{
			name:    "duplicate reward code",
			yaml:    `rewards: [{code: MUG, name: A, points: 1}, {code: MUG, name: B, points: 2}]`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tc.yaml))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path uses the embedded menu", func(t *testing.T) {
		m, err := catalog.LoadFile("")
		require.NoError(t, err)
		assert.Len(t, m.Products(), 3)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "menu.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`products: [{id: 5, name: Mocha, price: "5.25"}]`), 0o600))

		m, err := catalog.LoadFile(path)
		require.NoError(t, err)
		p, err := m.Product(5)
		require.NoError(t, err)
		assert.Equal(t, "5.25", p.Price.StringFixed(2))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
