package engine

import "github.com/focusquest/platform/internal/domain"

const (
	// BaseSpawnChance is the flat probability that any creature spawns at
	// all, checked before eligibility.
	BaseSpawnChance = 0.30

	// DefaultSpawnWeight is used for creatures with no explicit SpawnChance.
	DefaultSpawnWeight = 100
)

// SpawnSkipReason explains why no creature spawned.
type SpawnSkipReason string

const (
	SkipGateFailed   SpawnSkipReason = "gate_failed"
	SkipNoneEligible SpawnSkipReason = "none_eligible"
)

// SpawnOutcome is the spawn decision: either a creature or a skip reason.
// Ownership bookkeeping (new vs repeat, counts) belongs to the caller.
type SpawnOutcome struct {
	Creature *domain.CreatureDefinition `json:"creature,omitempty"`
	Skipped  SpawnSkipReason            `json:"skipped,omitempty"`
}

// RollSpawn decides whether and which creature spawns for the given context.
//
// Three steps: a flat base gate, an eligibility filter over the catalog's
// spawn conditions, then a cumulative-weight pick over the eligible set.
func RollSpawn(ctx domain.SpawnContext, creatures []domain.CreatureDefinition, rng RNG) SpawnOutcome {
	if rng.Float64() > BaseSpawnChance {
		return SpawnOutcome{Skipped: SkipGateFailed}
	}

	var eligible []domain.CreatureDefinition
	total := 0
	for _, c := range creatures {
		if !conditionsMet(c.Conditions, ctx) {
			continue
		}
		eligible = append(eligible, c)
		total += spawnWeight(c)
	}
	if len(eligible) == 0 {
		return SpawnOutcome{Skipped: SkipNoneEligible}
	}

	draw := rng.IntN(total)
	for i := range eligible {
		draw -= spawnWeight(eligible[i])
		if draw < 0 {
			return SpawnOutcome{Creature: &eligible[i]}
		}
	}
	return SpawnOutcome{Creature: &eligible[len(eligible)-1]}
}

func spawnWeight(c domain.CreatureDefinition) int {
	if c.SpawnChance > 0 {
		return c.SpawnChance
	}
	return DefaultSpawnWeight
}

// conditionsMet evaluates each defined condition as an independent AND-gate.
// Nil conditions mean always eligible.
func conditionsMet(cond *domain.SpawnConditions, ctx domain.SpawnContext) bool {
	if cond == nil {
		return true
	}
	if cond.OnTaskComplete && !ctx.OnTaskComplete {
		return false
	}
	if cond.OnQuickTask && !ctx.QuickTask {
		return false
	}
	if cond.OnStreakDay > 0 && ctx.StreakDays < cond.OnStreakDay {
		return false
	}
	if cond.OnLevel > 0 && ctx.Level < cond.OnLevel {
		return false
	}
	if cond.OnTimeRange != nil && !cond.OnTimeRange.Contains(ctx.Hour) {
		return false
	}
	return true
}
