package usecase

import (
	"log/slog"
	"sync"

	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/domain/review"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/usecase/shared"
)

//go:generate mockgen -source=review.go -destination=../../tests/mock/usecase/mock_review.go -package=usecasemock

type ReviewRepository = shared.Repository[[]*review.Review]

type ReviewUseCase interface {
	AddReview(productID int, userName string, rating int, comment string) (*review.Review, error)
	ProductReviews(productID int) []*review.Review
	// AverageRating is exactly 0 for a product without reviews.
	AverageRating(productID int) float64
	RatingSummary(productID int) review.Summary
}

type reviewUseCaseImpl struct {
	mu      sync.Mutex
	reviews []*review.Review // newest first
	repo    ReviewRepository
	sink    notification.Sink
	clock   clock.Clock
	ids     shared.IDGenerator
	logger  *slog.Logger
}

func NewReviewUseCase(
	repo ReviewRepository,
	sink notification.Sink,
	clk clock.Clock,
	ids shared.IDGenerator,
	logger *slog.Logger,
) ReviewUseCase {
	return &reviewUseCaseImpl{
		reviews: shared.Hydrate(logger, repo, "reviews", nil),
		repo:    repo,
		sink:    sink,
		clock:   clk,
		ids:     ids,
		logger:  logger,
	}
}

func (uc *reviewUseCaseImpl) AddReview(productID int, userName string, rating int, comment string) (*review.Review, error) {
	rev, err := review.NewReview(uc.ids.NewID(shared.ReviewIDPrefix), productID, userName, rating, comment, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.reviews = append([]*review.Review{rev}, uc.reviews...)
	shared.Persist(uc.logger, uc.repo, "reviews", uc.reviews)

	uc.sink.Notify(notification.New(notification.KindReviewPosted,
		"Review Posted!", "Thank you for your feedback!").WithRef(rev.ID()))
	return rev, nil
}

// Reviews are immutable, so the returned slice may share them.
func (uc *reviewUseCaseImpl) ProductReviews(productID int) []*review.Review {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return review.ForProduct(productID, uc.reviews)
}

func (uc *reviewUseCaseImpl) AverageRating(productID int) float64 {
	return uc.RatingSummary(productID).Average
}

func (uc *reviewUseCaseImpl) RatingSummary(productID int) review.Summary {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return review.Summarize(productID, uc.reviews)
}
