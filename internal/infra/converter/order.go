package converter

import (
	"storefront-engine/internal/domain/order"
)

func OrderToRecord(o *order.Order) OrderRecord {
	return OrderRecord{
		ID:             o.ID(),
		Items:          CartLinesToRecords(o.Lines()),
		Total:          o.Total(),
		Status:         o.Status().String(),
		Date:           o.PlacedAt(),
		EstimatedReady: o.EstimatedReadyAt(),
	}
}

func OrderFromRecord(r OrderRecord) (*order.Order, error) {
	lines, skipped := CartLinesFromRecords(r.Items)
	if skipped > 0 || len(lines) == 0 {
		return nil, order.ErrEmptyOrder
	}
	return order.ReconstructOrder(r.ID, lines, r.Total, order.Status(r.Status), r.Date, r.EstimatedReady)
}

func OrdersToRecords(orders []*order.Order) []OrderRecord {
	out := make([]OrderRecord, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToRecord(o))
	}
	return out
}

// OrdersFromRecords keeps the stored order (newest first) and drops orders
// that fail to reconstruct.
func OrdersFromRecords(records []OrderRecord) ([]*order.Order, int) {
	out := make([]*order.Order, 0, len(records))
	skipped := 0
	for _, r := range records {
		o, err := OrderFromRecord(r)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, o)
	}
	return out, skipped
}
