package response

import (
	"storefront-engine/internal/domain/reward"
	"storefront-engine/internal/usecase"
)

type LoyaltyResponse struct {
	Points           int    `json:"points"`
	Tier             string `json:"tier"`
	DiscountPercent  int    `json:"discountPercent"`
	NextTier         string `json:"nextTier,omitempty"`
	PointsToNextTier *int   `json:"pointsToNextTier,omitempty"`
}

type RewardResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
	Affordable bool   `json:"affordable"`
}

type RedeemResponse struct {
	Success bool            `json:"success"`
	Reward  *RewardResponse `json:"reward,omitempty"`
	Balance int             `json:"balance"`
}

func FromLoyaltyStatus(s usecase.LoyaltyStatus) *LoyaltyResponse {
	res := &LoyaltyResponse{
		Points:          s.Points,
		Tier:            s.Tier.String(),
		DiscountPercent: s.DiscountPercent,
	}
	if s.HasNextTier {
		missing := s.PointsToNext
		res.NextTier = s.NextTier.String()
		res.PointsToNextTier = &missing
	}
	return res
}

func FromReward(r *reward.Reward, balance int) *RewardResponse {
	return &RewardResponse{
		Code:       r.Code().String(),
		Name:       r.Name(),
		Points:     r.Points(),
		Affordable: r.Affordable(balance),
	}
}

func FromRewards(rewards []*reward.Reward, balance int) []*RewardResponse {
	res := make([]*RewardResponse, len(rewards))
	for i, r := range rewards {
		res[i] = FromReward(r, balance)
	}
	return res
}
