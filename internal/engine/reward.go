package engine

import (
	"fmt"

	"github.com/focusquest/platform/internal/domain"
)

// Reward is the outcome of a cosmetic reward roll.
type Reward struct {
	Rarity domain.RewardRarity `json:"rarity"`
	Effect string              `json:"effect"`
}

// rewardWeight pairs a rarity tier with its draw weight. Order matters: the
// first-fit draw walks tiers in ascending rarity.
type rewardWeight struct {
	rarity domain.RewardRarity
	weight int
}

var rewardWeights = []rewardWeight{
	{domain.RarityCommon, 600},
	{domain.RarityUncommon, 250},
	{domain.RarityRare, 120},
	{domain.RarityLegendary, 29},
	{domain.RarityMythic, 1},
}

const totalRewardWeight = 1000

// RollReward draws a rarity tier by cumulative weight, then picks an effect
// uniformly from that tier's list. Effects are supplied by the catalog; a
// missing or empty effect list is an error so the caller can degrade the
// roll without blocking the rest of the event.
func RollReward(rng RNG, effects map[domain.RewardRarity][]string) (Reward, error) {
	draw := rng.IntN(totalRewardWeight)
	rarity := rarityForDraw(draw)

	pool := effects[rarity]
	if len(pool) == 0 {
		return Reward{}, fmt.Errorf("no effects defined for rarity %q", rarity)
	}
	return Reward{Rarity: rarity, Effect: pool[rng.IntN(len(pool))]}, nil
}

// rarityForDraw maps a uniform draw in [0, totalRewardWeight) to a tier by
// subtracting weights in ascending-rarity order until the draw is exhausted.
func rarityForDraw(draw int) domain.RewardRarity {
	for _, rw := range rewardWeights {
		draw -= rw.weight
		if draw < 0 {
			return rw.rarity
		}
	}
	return rewardWeights[len(rewardWeights)-1].rarity
}
