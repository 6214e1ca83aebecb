package reward

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidRewardCode = errors.New("invalid reward code format")
	ErrEmptyRewardName   = errors.New("reward name cannot be empty")
	ErrInvalidCost       = errors.New("reward cost must be positive")
	ErrDuplicateCode     = errors.New("duplicate reward code")
	ErrRewardNotFound    = errors.New("reward not found")
)

var rewardCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !rewardCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidRewardCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Reward is something a member can buy with loyalty points.
type Reward struct {
	code   Code
	name   string
	points int
}

func NewReward(code, name string, points int) (*Reward, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRewardName
	}
	if points <= 0 {
		return nil, ErrInvalidCost
	}
	return &Reward{code: c, name: name, points: points}, nil
}

func (r *Reward) Code() Code   { return r.code }
func (r *Reward) Name() string { return r.name }
func (r *Reward) Points() int  { return r.points }

// Affordable reports whether a balance covers the reward.
func (r *Reward) Affordable(balance int) bool {
	return balance >= r.points
}

type Catalog struct {
	rewards []*Reward
	byCode  map[Code]*Reward
}

func NewCatalog(rewards ...*Reward) (*Catalog, error) {
	c := &Catalog{byCode: make(map[Code]*Reward, len(rewards))}
	for _, r := range rewards {
		if _, dup := c.byCode[r.code]; dup {
			return nil, ErrDuplicateCode
		}
		c.byCode[r.code] = r
		c.rewards = append(c.rewards, r)
	}
	return c, nil
}

func (c *Catalog) Find(code string) (*Reward, error) {
	normalized, err := NewCode(code)
	if err != nil {
		return nil, ErrRewardNotFound
	}
	r, ok := c.byCode[normalized]
	if !ok {
		return nil, ErrRewardNotFound
	}
	return r, nil
}

func (c *Catalog) All() []*Reward {
	out := make([]*Reward, len(c.rewards))
	copy(out, c.rewards)
	return out
}
