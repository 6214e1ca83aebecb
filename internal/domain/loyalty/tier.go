package loyalty

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

type tierRule struct {
	tier      Tier
	minPoints int
	discount  int
}

// ascending by minPoints
var tierRules = []tierRule{
	{tier: TierBronze, minPoints: 0, discount: 5},
	{tier: TierSilver, minPoints: 200, discount: 10},
	{tier: TierGold, minPoints: 500, discount: 15},
	{tier: TierPlatinum, minPoints: 1000, discount: 20},
}

// TierFor is the only source of truth for tiers; nothing caches its result.
func TierFor(points int) Tier {
	current := TierBronze
	for _, r := range tierRules {
		if points >= r.minPoints {
			current = r.tier
		}
	}
	return current
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) DiscountPercent() int {
	if r, ok := t.rule(); ok {
		return r.discount
	}
	return 0
}

func (t Tier) MinPoints() int {
	if r, ok := t.rule(); ok {
		return r.minPoints
	}
	return 0
}

// Next returns the tier above t, or false at the top.
func (t Tier) Next() (Tier, bool) {
	for i, r := range tierRules {
		if r.tier == t && i+1 < len(tierRules) {
			return tierRules[i+1].tier, true
		}
	}
	return "", false
}

func Tiers() []Tier {
	out := make([]Tier, len(tierRules))
	for i, r := range tierRules {
		out[i] = r.tier
	}
	return out
}

func (t Tier) rule() (tierRule, bool) {
	for _, r := range tierRules {
		if r.tier == t {
			return r, true
		}
	}
	return tierRule{}, false
}
