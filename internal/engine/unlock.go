package engine

import "github.com/focusquest/platform/internal/domain"

// EvaluateUnlocks translates the player's progress into the new unlocked
// feature set. Criteria on each definition are OR-combined, and unlocking is
// monotonic: everything already in unlocked stays unlocked. The inbox
// feature is always present regardless of the catalog.
//
// Returns the full new set and the delta of newly-unlocked codes, both in
// stable order (previously-unlocked first, then catalog order).
func EvaluateUnlocks(
	level int,
	tasksCompleted int,
	achievements []string,
	unlocked []domain.FeatureCode,
	defs []domain.FeatureDefinition,
) (all []domain.FeatureCode, newly []domain.FeatureCode) {
	have := make(map[domain.FeatureCode]bool, len(unlocked)+1)
	all = make([]domain.FeatureCode, 0, len(unlocked)+1)

	add := func(code domain.FeatureCode) {
		if !have[code] {
			have[code] = true
			all = append(all, code)
		}
	}

	add(domain.FeatureInbox)
	for _, code := range unlocked {
		add(code)
	}

	held := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		held[a] = true
	}

	for _, def := range defs {
		if have[def.Code] {
			continue
		}
		if meetsUnlockCriteria(def, level, tasksCompleted, held) {
			add(def.Code)
			newly = append(newly, def.Code)
		}
	}
	return all, newly
}

func meetsUnlockCriteria(def domain.FeatureDefinition, level, tasksCompleted int, achievements map[string]bool) bool {
	if level >= def.UnlockLevel {
		return true
	}
	if def.UnlockTaskCount > 0 && tasksCompleted >= def.UnlockTaskCount {
		return true
	}
	if def.UnlockAchievement != "" && achievements[def.UnlockAchievement] {
		return true
	}
	return false
}
