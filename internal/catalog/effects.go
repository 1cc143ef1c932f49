package catalog

import "github.com/focusquest/platform/internal/domain"

// RewardEffects maps each rarity to its pool of cosmetic celebration
// effects. The roller picks one uniformly after the rarity is drawn.
func RewardEffects() map[domain.RewardRarity][]string {
	return map[domain.RewardRarity][]string{
		domain.RarityCommon:    {"sparkle", "thumbs_up", "soft_chime"},
		domain.RarityUncommon:  {"confetti_burst", "star_shower"},
		domain.RarityRare:      {"firework", "aurora_wave"},
		domain.RarityLegendary: {"golden_rain", "dragon_flyby"},
		domain.RarityMythic:    {"supernova"},
	}
}
