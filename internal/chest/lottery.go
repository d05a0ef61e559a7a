package chest

import (
	"context"
	"math/rand/v2"
	"sync"
)

// Lottery draws rewards locally. It stands in for the remote endpoint in
// offline play and tests.
type Lottery struct {
	mu        sync.Mutex
	rng       *rand.Rand
	kitsune   float64
	dragonfly float64
}

// Default odds for the local lottery.
const (
	DefaultKitsuneChance   = 0.10
	DefaultDragonflyChance = 0.10
)

// NewLottery creates a lottery with default odds.
func NewLottery(seed int64) *Lottery {
	return NewLotteryWithOdds(seed, DefaultKitsuneChance, DefaultDragonflyChance)
}

// NewLotteryWithOdds creates a lottery with explicit odds.
func NewLotteryWithOdds(seed int64, kitsune, dragonfly float64) *Lottery {
	return &Lottery{
		rng:       rand.New(rand.NewPCG(uint64(seed), 0x636865)), //#nosec G115 -- intentional conversion for RNG seeding
		kitsune:   kitsune,
		dragonfly: dragonfly,
	}
}

// Resolve implements Resolver.
func (l *Lottery) Resolve(ctx context.Context, _ string) (Reward, error) {
	if err := ctx.Err(); err != nil {
		return RewardNone, err
	}

	l.mu.Lock()
	r := l.rng.Float64()
	l.mu.Unlock()

	switch {
	case r < l.kitsune:
		return RewardKitsune, nil
	case r < l.kitsune+l.dragonfly:
		return RewardDragonfly, nil
	default:
		return RewardNone, nil
	}
}
