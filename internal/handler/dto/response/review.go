package response

import (
	"strconv"
	"time"

	"storefront-engine/internal/domain/review"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	ProductID int       `json:"productId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}

type RatingResponse struct {
	ProductID int            `json:"productId"`
	Count     int            `json:"count"`
	Average   float64        `json:"average"`
	Histogram map[string]int `json:"histogram"`
}

func FromReview(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserName:  r.UserName(),
		Rating:    r.Rating().Value(),
		Comment:   r.Comment().String(),
		Date:      r.Date(),
	}
}

func FromReviews(reviews []*review.Review) []*ReviewResponse {
	res := make([]*ReviewResponse, len(reviews))
	for i, r := range reviews {
		res[i] = FromReview(r)
	}
	return res
}

func FromSummary(s review.Summary) *RatingResponse {
	h := make(map[string]int, len(s.Histogram))
	for i, n := range s.Histogram {
		h[strconv.Itoa(i+1)] = n
	}
	return &RatingResponse{
		ProductID: s.ProductID,
		Count:     s.Count,
		Average:   s.Average,
		Histogram: h,
	}
}
