package usecase

import (
	"storefront-engine/internal/domain/catalog"
)

//go:generate mockgen -source=catalog.go -destination=../../tests/mock/usecase/mock_catalog.go -package=usecasemock

// ProductCatalog is the read-only menu. Lookups of unknown ids fail with
// errs.ErrProductNotFound.
type ProductCatalog interface {
	Products() []catalog.Product
	Product(id int) (catalog.Product, error)
}
