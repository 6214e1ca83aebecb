package review

import "errors"

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong   = errors.New("comment exceeds maximum length")
	ErrEmptyReviewID    = errors.New("review id cannot be empty")
	ErrInvalidProductID = errors.New("product id must be positive")
)
