//go:build unit || e2e

package builder

import (
	"time"

	domreview "storefront-engine/internal/domain/review"
	reqdto "storefront-engine/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ProductID int
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ProductID: 1,
		UserName:  "Grace Hopper",
		Rating:    5,
		Comment:   "Excellent espresso!",
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview("REV-"+uuid.NewString(), r.ProductID, r.UserName, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		UserName: r.UserName,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithProductID(productID int) *ReviewBuilder {
	r.ProductID = productID
	return r
}

func (r *ReviewBuilder) WithUserName(name string) *ReviewBuilder {
	r.UserName = name
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Too bitter"
	return r
}
