package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"storefront-engine/internal/domain/loyalty"
	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/domain/reward"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/usecase/shared"
)

//go:generate mockgen -source=loyalty.go -destination=../../tests/mock/usecase/mock_loyalty.go -package=usecasemock

type PointsRepository = shared.Repository[int]

// LoyaltyStatus is a point-in-time view of the account.
type LoyaltyStatus struct {
	Points          int
	Tier            loyalty.Tier
	DiscountPercent int
	NextTier        loyalty.Tier
	PointsToNext    int
	HasNextTier     bool
}

type LoyaltyUseCase interface {
	AddPoints(amount int) error
	// RedeemPoints reports false, without error, when the balance is too low.
	RedeemPoints(amount int) (bool, error)
	Points() int
	Tier() loyalty.Tier
	DiscountPercent() int
	Status() LoyaltyStatus
	Rewards() []*reward.Reward
	RedeemReward(code string) (*reward.Reward, bool, error)
}

type loyaltyUseCaseImpl struct {
	mu      sync.Mutex
	account loyalty.Account
	repo    PointsRepository
	rewards *reward.Catalog
	sink    notification.Sink
	logger  *slog.Logger
}

func NewLoyaltyUseCase(
	repo PointsRepository,
	rewards *reward.Catalog,
	sink notification.Sink,
	logger *slog.Logger,
) LoyaltyUseCase {
	points := shared.Hydrate(logger, repo, "loyaltyPoints", 0)

	return &loyaltyUseCaseImpl{
		account: loyalty.NewAccount(points),
		repo:    repo,
		rewards: rewards,
		sink:    sink,
		logger:  logger,
	}
}

func (uc *loyaltyUseCaseImpl) AddPoints(amount int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	before := uc.account.Tier()
	if err := uc.account.Add(amount); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	uc.persist()

	after := uc.account.Tier()
	if after != before {
		uc.logger.Info("Loyalty tier changed",
			slog.String("from", before.String()),
			slog.String("to", after.String()),
		)
		uc.sink.Notify(notification.New(notification.KindTierUpgraded,
			fmt.Sprintf("Tier Upgraded to %s!", after),
			fmt.Sprintf("You now get %d%% discount on all orders!", after.DiscountPercent())))
	}
	return nil
}

func (uc *loyaltyUseCaseImpl) RedeemPoints(amount int) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.redeemLocked(amount)
}

func (uc *loyaltyUseCaseImpl) Points() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.account.Points()
}

func (uc *loyaltyUseCaseImpl) Tier() loyalty.Tier {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.account.Tier()
}

func (uc *loyaltyUseCaseImpl) DiscountPercent() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.account.DiscountPercent()
}

func (uc *loyaltyUseCaseImpl) Status() LoyaltyStatus {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	status := LoyaltyStatus{
		Points:          uc.account.Points(),
		Tier:            uc.account.Tier(),
		DiscountPercent: uc.account.DiscountPercent(),
	}
	status.NextTier, status.PointsToNext, status.HasNextTier = uc.account.PointsToNextTier()
	return status
}

func (uc *loyaltyUseCaseImpl) Rewards() []*reward.Reward {
	return uc.rewards.All()
}

func (uc *loyaltyUseCaseImpl) RedeemReward(code string) (*reward.Reward, bool, error) {
	rw, err := uc.rewards.Find(code)
	if err != nil {
		return nil, false, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	ok, err := uc.redeemLocked(rw.Points())
	if err != nil {
		return nil, false, err
	}
	return rw, ok, nil
}

func (uc *loyaltyUseCaseImpl) redeemLocked(amount int) (bool, error) {
	err := uc.account.Redeem(amount)
	switch {
	case err == nil:
	case errs.Is(err, loyalty.ErrInsufficientPoints):
		uc.sink.Notify(notification.Destructive(notification.KindInsufficientPoints,
			"Insufficient Points", "You don't have enough points for this redemption"))
		return false, nil
	default:
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}

	uc.persist()
	uc.sink.Notify(notification.New(notification.KindPointsRedeemed,
		"Points Redeemed", fmt.Sprintf("%d points redeemed successfully!", amount)))
	return true, nil
}

func (uc *loyaltyUseCaseImpl) persist() {
	shared.Persist(uc.logger, uc.repo, "loyaltyPoints", uc.account.Points())
}
