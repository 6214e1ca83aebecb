package converter

import (
	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"
)

func ProductToRecord(p catalog.Product) ProductRecord {
	return ProductRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
	}
}

func ProductFromRecord(r ProductRecord) (catalog.Product, error) {
	return catalog.NewProduct(r.ID, r.Name, r.Description, r.Price, r.Image)
}

func ProductsToRecords(products []catalog.Product) []ProductRecord {
	out := make([]ProductRecord, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToRecord(p))
	}
	return out
}

// ProductsFromRecords drops invalid and repeated products and reports how
// many were dropped.
func ProductsFromRecords(records []ProductRecord) ([]catalog.Product, int) {
	out := make([]catalog.Product, 0, len(records))
	seen := make(map[int]struct{}, len(records))
	skipped := 0
	for _, r := range records {
		p, err := ProductFromRecord(r)
		if err != nil {
			skipped++
			continue
		}
		if _, dup := seen[p.ID]; dup {
			skipped++
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, skipped
}

func CartLinesToRecords(lines []cart.Line) []CartLineRecord {
	out := make([]CartLineRecord, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineRecord{
			ProductRecord: ProductToRecord(l.Product()),
			Quantity:      l.Quantity(),
		})
	}
	return out
}

// CartLinesFromRecords drops lines with an invalid product or quantity.
// Repeated product ids are kept; the cart merges them.
func CartLinesFromRecords(records []CartLineRecord) ([]cart.Line, int) {
	out := make([]cart.Line, 0, len(records))
	skipped := 0
	for _, r := range records {
		p, err := ProductFromRecord(r.ProductRecord)
		if err != nil {
			skipped++
			continue
		}
		l, err := cart.NewLine(p, r.Quantity)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, l)
	}
	return out, skipped
}
