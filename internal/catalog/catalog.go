// Package catalog holds the static gamification catalogs: feature unlock
// definitions, the creature bestiary, daily quest templates and reward
// effects. Catalogs are plain data validated once at startup; the engine
// treats them as read-only.
package catalog

import (
	"fmt"

	"github.com/focusquest/platform/internal/domain"
)

// Validate checks every catalog for structural problems. Called once at
// startup so unknown codes or bad weights never reach the engine.
func Validate() error {
	if err := validateFeatures(Features()); err != nil {
		return fmt.Errorf("feature catalog: %w", err)
	}
	if err := validateCreatures(Creatures()); err != nil {
		return fmt.Errorf("creature catalog: %w", err)
	}
	if err := validateQuestTemplates(QuestTemplates()); err != nil {
		return fmt.Errorf("quest catalog: %w", err)
	}
	if err := validateEffects(RewardEffects()); err != nil {
		return fmt.Errorf("effect catalog: %w", err)
	}
	return nil
}

func validateFeatures(defs []domain.FeatureDefinition) error {
	seen := make(map[domain.FeatureCode]bool, len(defs))
	for _, def := range defs {
		if !def.Code.Valid() {
			return fmt.Errorf("unknown feature code %q", def.Code)
		}
		if seen[def.Code] {
			return fmt.Errorf("duplicate feature code %q", def.Code)
		}
		seen[def.Code] = true
		if def.UnlockLevel < 0 {
			return fmt.Errorf("feature %q has negative unlock level", def.Code)
		}
		if def.UnlockTaskCount < 0 {
			return fmt.Errorf("feature %q has negative unlock task count", def.Code)
		}
	}
	return nil
}

func validateCreatures(defs []domain.CreatureDefinition) error {
	seen := make(map[domain.CreatureID]bool, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			return fmt.Errorf("creature with empty id")
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate creature id %q", def.ID)
		}
		seen[def.ID] = true
		if !def.Rarity.Valid() {
			return fmt.Errorf("creature %q has unknown rarity %q", def.ID, def.Rarity)
		}
		if def.SpawnChance < 0 {
			return fmt.Errorf("creature %q has negative spawn chance", def.ID)
		}
		if tr := condTimeRange(def); tr != nil {
			if tr.StartHour < 0 || tr.EndHour > 24 || tr.StartHour >= tr.EndHour {
				return fmt.Errorf("creature %q has invalid time range [%d,%d)", def.ID, tr.StartHour, tr.EndHour)
			}
		}
	}
	return nil
}

func condTimeRange(def domain.CreatureDefinition) *domain.TimeRange {
	if def.Conditions == nil {
		return nil
	}
	return def.Conditions.OnTimeRange
}

func validateQuestTemplates(templates []domain.QuestTemplate) error {
	seen := make(map[string]bool, len(templates))
	for _, t := range templates {
		if t.ID == "" {
			return fmt.Errorf("quest template with empty id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate quest template id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Target <= 0 {
			return fmt.Errorf("quest template %q has non-positive target", t.ID)
		}
		if t.XPReward < 0 {
			return fmt.Errorf("quest template %q has negative xp reward", t.ID)
		}
		if t.MinLevel < 1 {
			return fmt.Errorf("quest template %q has min level below 1", t.ID)
		}
	}
	return nil
}

func validateEffects(effects map[domain.RewardRarity][]string) error {
	for _, rarity := range domain.RewardRarities {
		pool := effects[rarity]
		if len(pool) == 0 {
			return fmt.Errorf("no effects for rarity %q", rarity)
		}
		for _, effect := range pool {
			if effect == "" {
				return fmt.Errorf("empty effect string for rarity %q", rarity)
			}
		}
	}
	return nil
}
