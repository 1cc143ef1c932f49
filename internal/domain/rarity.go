package domain

// RewardRarity is the ordered rarity scale for cosmetic reward rolls.
// Ordering (rank) is used for "rarest reward seen" tracking.
type RewardRarity string

const (
	RarityCommon    RewardRarity = "common"
	RarityUncommon  RewardRarity = "uncommon"
	RarityRare      RewardRarity = "rare"
	RarityLegendary RewardRarity = "legendary"
	RarityMythic    RewardRarity = "mythic"
)

// RewardRarities lists all reward rarities in ascending order.
var RewardRarities = []RewardRarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityLegendary,
	RarityMythic,
}

// Rank returns the position of the rarity in the ordering, or -1 if unknown.
func (r RewardRarity) Rank() int {
	for i, known := range RewardRarities {
		if r == known {
			return i
		}
	}
	return -1
}

// Valid reports whether the rarity is one of the five known tiers.
func (r RewardRarity) Valid() bool { return r.Rank() >= 0 }

// RarerThan reports whether r is strictly rarer than other.
// An unknown rarity is never rarer than anything.
func (r RewardRarity) RarerThan(other RewardRarity) bool {
	return r.Rank() > other.Rank() && r.Valid()
}

// CreatureRarity classifies collectible creatures. It shares four names with
// RewardRarity plus the creature-only "secret" tier, and is deliberately a
// distinct type: creature rarities never participate in rarest-reward tracking.
type CreatureRarity string

const (
	CreatureCommon    CreatureRarity = "common"
	CreatureUncommon  CreatureRarity = "uncommon"
	CreatureRare      CreatureRarity = "rare"
	CreatureLegendary CreatureRarity = "legendary"
	CreatureMythic    CreatureRarity = "mythic"
	CreatureSecret    CreatureRarity = "secret"
)

// Valid reports whether the creature rarity is known.
func (r CreatureRarity) Valid() bool {
	switch r {
	case CreatureCommon, CreatureUncommon, CreatureRare, CreatureLegendary, CreatureMythic, CreatureSecret:
		return true
	default:
		return false
	}
}
