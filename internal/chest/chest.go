// Package chest resolves caught chests into rewards out of band and hands
// the results back to the game loop.
package chest

import (
	"context"
	"errors"
)

// Reward is the item key a chest resolves to.
type Reward string

const (
	RewardNone      Reward = ""
	RewardKitsune   Reward = "pet_kitsune"
	RewardDragonfly Reward = "pet_dragonfly"
)

// String returns the reward key, or "none".
func (r Reward) String() string {
	if r == RewardNone {
		return "none"
	}
	return string(r)
}

// ParseReward maps an item key onto a known reward. Unknown keys are RewardNone.
func ParseReward(key string) Reward {
	switch Reward(key) {
	case RewardKitsune:
		return RewardKitsune
	case RewardDragonfly:
		return RewardDragonfly
	default:
		return RewardNone
	}
}

// ErrNoResolver is returned when a dispatcher has nothing to resolve with.
var ErrNoResolver = errors.New("chest: no resolver configured")

// Resolver turns a chest opened by a player into a reward.
type Resolver interface {
	Resolve(ctx context.Context, playerID string) (Reward, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, playerID string) (Reward, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, playerID string) (Reward, error) {
	return f(ctx, playerID)
}

// Recorder persists resolved chests.
type Recorder interface {
	RecordChestOpening(player, reward string) error
}
