// Package catalog loads the storefront menu and the rewards list from YAML.
package catalog

import (
	_ "embed"
	"os"

	domcatalog "storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/domain/reward"
	"storefront-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

type MenuFile struct {
	Version  string         `yaml:"version"`
	Products []ProductEntry `yaml:"products"`
	Rewards  []RewardEntry  `yaml:"rewards"`
}

type ProductEntry struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// quoted in YAML so the decimal is read exactly
	Price string `yaml:"price"`
	Image string `yaml:"image"`
}

type RewardEntry struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Points int    `yaml:"points"`
}

// Menu is the read-only product catalog.
type Menu struct {
	products []domcatalog.Product
	byID     map[int]domcatalog.Product
	rewards  *reward.Catalog
}

// LoadFile reads a menu from path, or the embedded default when path is
// empty.
func LoadFile(path string) (*Menu, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Parse(data)
}

func Default() (*Menu, error) {
	return Parse(defaultMenu)
}

func Parse(data []byte) (*Menu, error) {
	var mf MenuFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, errs.Wrap(err, "failed to parse catalog YAML")
	}
	applyDefaults(&mf)
	return build(mf)
}

func applyDefaults(mf *MenuFile) {
	if mf.Version == "" {
		mf.Version = "1"
	}
	for i := range mf.Products {
		if mf.Products[i].Price == "" {
			mf.Products[i].Price = "0"
		}
	}
}

func build(mf MenuFile) (*Menu, error) {
	m := &Menu{byID: make(map[int]domcatalog.Product, len(mf.Products))}

	for _, e := range mf.Products {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, errs.Wrapf(err, "product %d: invalid price %q", e.ID, e.Price)
		}
		p, err := domcatalog.NewProduct(e.ID, e.Name, e.Description, price, e.Image)
		if err != nil {
			return nil, errs.Wrapf(err, "product %d", e.ID)
		}
		if _, dup := m.byID[p.ID]; dup {
			return nil, errs.Newf("product %d: duplicate id", p.ID)
		}
		m.byID[p.ID] = p
		m.products = append(m.products, p)
	}

	rewards := make([]*reward.Reward, 0, len(mf.Rewards))
	for _, e := range mf.Rewards {
		r, err := reward.NewReward(e.Code, e.Name, e.Points)
		if err != nil {
			return nil, errs.Wrapf(err, "reward %q", e.Code)
		}
		rewards = append(rewards, r)
	}
	rc, err := reward.NewCatalog(rewards...)
	if err != nil {
		return nil, err
	}
	m.rewards = rc

	return m, nil
}

func (m *Menu) Products() []domcatalog.Product {
	out := make([]domcatalog.Product, len(m.products))
	copy(out, m.products)
	return out
}

func (m *Menu) Product(id int) (domcatalog.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return domcatalog.Product{}, errs.ErrProductNotFound
	}
	return p, nil
}

func (m *Menu) Rewards() *reward.Catalog {
	return m.rewards
}
