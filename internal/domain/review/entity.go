package review

import (
	"strings"
	"time"
)

type Review struct {
	id        string
	productID int
	userName  string
	rating    Rating
	comment   Comment
	date      time.Time
}

func NewReview(id string, productID int, userName string, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if id == "" {
		return nil, ErrEmptyReviewID
	}
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        id,
		productID: productID,
		userName:  strings.TrimSpace(userName),
		rating:    rating,
		comment:   comment,
		date:      now,
	}, nil
}

func (r *Review) ID() string       { return r.id }
func (r *Review) ProductID() int   { return r.productID }
func (r *Review) UserName() string { return r.userName }
func (r *Review) Rating() Rating   { return r.rating }
func (r *Review) Comment() Comment { return r.comment }
func (r *Review) Date() time.Time  { return r.date }
