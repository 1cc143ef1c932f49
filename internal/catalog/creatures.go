package catalog

import "github.com/focusquest/platform/internal/domain"

// Creatures returns the bestiary. SpawnChance is a relative weight among
// eligible creatures, not a probability; zero means the default weight.
// Conditions are AND-combined, nil means always eligible.
func Creatures() []domain.CreatureDefinition {
	return []domain.CreatureDefinition{
		{ID: "dust-bunny", Name: "Dust Bunny", Rarity: domain.CreatureCommon},
		{ID: "pocket-snail", Name: "Pocket Snail", Rarity: domain.CreatureCommon},
		{
			ID: "ink-sprite", Name: "Ink Sprite", SpawnChance: 60, Rarity: domain.CreatureUncommon,
			Conditions: &domain.SpawnConditions{OnTaskComplete: true},
		},
		{
			ID: "spark-fox", Name: "Spark Fox", SpawnChance: 40, Rarity: domain.CreatureRare,
			Conditions: &domain.SpawnConditions{OnQuickTask: true},
		},
		{
			ID: "mossback", Name: "Mossback", SpawnChance: 35, Rarity: domain.CreatureRare,
			Conditions: &domain.SpawnConditions{OnStreakDay: 3},
		},
		{
			ID: "dawn-finch", Name: "Dawn Finch", SpawnChance: 25, Rarity: domain.CreatureRare,
			Conditions: &domain.SpawnConditions{OnTimeRange: &domain.TimeRange{StartHour: 5, EndHour: 9}},
		},
		{
			ID: "ember-drake", Name: "Ember Drake", SpawnChance: 8, Rarity: domain.CreatureLegendary,
			Conditions: &domain.SpawnConditions{OnStreakDay: 14, OnLevel: 10},
		},
		{
			ID: "clockwork-crab", Name: "Clockwork Crab", SpawnChance: 8, Rarity: domain.CreatureLegendary,
			Conditions: &domain.SpawnConditions{OnLevel: 15},
		},
		{
			ID: "comet-moth", Name: "Comet Moth", SpawnChance: 3, Rarity: domain.CreatureMythic,
			Conditions: &domain.SpawnConditions{OnStreakDay: 30, OnLevel: 20},
		},
		{
			ID: "night-owl", Name: "Night Owl", SpawnChance: 5, Rarity: domain.CreatureSecret,
			Conditions: &domain.SpawnConditions{OnTimeRange: &domain.TimeRange{StartHour: 0, EndHour: 5}},
		},
	}
}
