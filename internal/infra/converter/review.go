package converter

import (
	"storefront-engine/internal/domain/review"
)

func ReviewToRecord(r *review.Review) ReviewRecord {
	return ReviewRecord{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserName:  r.UserName(),
		Rating:    r.Rating().Value(),
		Comment:   r.Comment().String(),
		Date:      r.Date(),
	}
}

func ReviewFromRecord(r ReviewRecord) (*review.Review, error) {
	return review.NewReview(r.ID, r.ProductID, r.UserName, r.Rating, r.Comment, r.Date)
}

func ReviewsToRecords(reviews []*review.Review) []ReviewRecord {
	out := make([]ReviewRecord, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewToRecord(r))
	}
	return out
}

func ReviewsFromRecords(records []ReviewRecord) ([]*review.Review, int) {
	out := make([]*review.Review, 0, len(records))
	skipped := 0
	for _, r := range records {
		rev, err := ReviewFromRecord(r)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, rev)
	}
	return out, skipped
}
