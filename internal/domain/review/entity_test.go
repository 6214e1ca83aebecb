//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"storefront-engine/internal/domain/review"
	"storefront-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEmpty(t, actual.ID())
		assert.False(t, actual.Date().IsZero())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent espresso!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty comment is allowed",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
			{
				name:   "multibyte comment at the limit",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("ñ", review.MaxCommentLength)) },
			},
			{
				name:   "multibyte comment over the limit",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("ñ", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("product id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero product id",
				mutate: func(b *builder.ReviewBuilder) { b.WithProductID(0) },
				errIs:  review.ErrInvalidProductID,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		r, err := review.NewReview("REV-1", 1, " Ada ", 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)

		assert.Equal(t, "Trimmed comment", r.Comment().String())
		assert.Equal(t, "Ada", r.UserName())
	})
}

func TestSummarize(t *testing.T) {
	build := func(productID, rating int) *review.Review {
		r, err := builder.NewReviewBuilder().WithProductID(productID).WithRating(rating).BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("no reviews averages to exactly zero", func(t *testing.T) {
		s := review.Summarize(1, nil)
		assert.Equal(t, 0, s.Count)
		assert.Equal(t, 0.0, s.Average)
	})

	t.Run("mean and histogram of one product", func(t *testing.T) {
		reviews := []*review.Review{build(1, 4), build(2, 1), build(1, 5)}

		s := review.Summarize(1, reviews)
		assert.Equal(t, 2, s.Count)
		assert.Equal(t, 4.5, s.Average)
		assert.Equal(t, [5]int{0, 0, 0, 1, 1}, s.Histogram)
	})

	t.Run("filter keeps order", func(t *testing.T) {
		a, b, c := build(1, 4), build(2, 1), build(1, 5)
		assert.Equal(t, []*review.Review{a, c}, review.ForProduct(1, []*review.Review{a, b, c}))
		assert.Empty(t, review.ForProduct(3, []*review.Review{a, b, c}))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
