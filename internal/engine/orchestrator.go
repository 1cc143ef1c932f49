package engine

import (
	"time"

	"github.com/focusquest/platform/internal/domain"
)

// Event is a single triggering event fed to the orchestrator.
type Event struct {
	Type          domain.GameEventType `json:"type"`
	XP            int                  `json:"xp"`
	QuickTask     bool                 `json:"quick_task,omitempty"`
	RewardTrigger bool                 `json:"reward_trigger,omitempty"`
	Achievements  []string             `json:"achievements,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// Result is the consolidated outcome of one orchestrator run.
type Result struct {
	XPAwarded     int                  `json:"xp_awarded"`
	LeveledUp     bool                 `json:"leveled_up"`
	NewLevel      int                  `json:"new_level,omitempty"`
	NewlyUnlocked []domain.FeatureCode `json:"newly_unlocked,omitempty"`
	Streak        *StreakResult        `json:"streak,omitempty"`
	Reward        *Reward              `json:"reward,omitempty"`
	Spawn         *SpawnOutcome        `json:"spawn,omitempty"`
}

// Orchestrator sequences the engine components for a triggering event.
// It is pure computation over an injected RNG and static catalogs; the
// service layer is responsible for making each run atomic per player.
type Orchestrator struct {
	features  []domain.FeatureDefinition
	creatures []domain.CreatureDefinition
	effects   map[domain.RewardRarity][]string
	rng       RNG
}

// NewOrchestrator creates an orchestrator over the given catalogs and RNG.
func NewOrchestrator(
	features []domain.FeatureDefinition,
	creatures []domain.CreatureDefinition,
	effects map[domain.RewardRarity][]string,
	rng RNG,
) *Orchestrator {
	return &Orchestrator{features: features, creatures: creatures, effects: effects, rng: rng}
}

// Apply runs the full sequence for one event: award XP, recompute level,
// advance the streak, evaluate feature unlocks, then best-effort cosmetic
// rolls. The input snapshot is never mutated; Apply returns the new
// snapshot alongside the result. Core steps fail fast before any part of
// the new state is produced; cosmetic steps never fail the event.
func (o *Orchestrator) Apply(state domain.PlayerGameState, evt Event) (domain.PlayerGameState, Result, error) {
	if !evt.Type.Valid() {
		return state, Result{}, domain.ErrValidation("unknown event type: " + string(evt.Type))
	}
	if err := domain.ValidateXPAmount(evt.XP); err != nil {
		return state, Result{}, domain.ErrValidation(err.Error())
	}
	if evt.OccurredAt.IsZero() {
		return state, Result{}, domain.ErrValidation("event timestamp is required")
	}

	next := state.Clone()
	res := Result{XPAwarded: evt.XP}

	// XP and level.
	oldLevel := LevelForXP(state.XP)
	next.XP += evt.XP
	next.Level = LevelForXP(next.XP)
	if next.Level > oldLevel {
		res.LeveledUp = true
		res.NewLevel = next.Level
	}
	if evt.Type == domain.EventTaskComplete {
		next.TasksCompleted++
	}

	// Streak. Every qualifying event counts as daily activity.
	streak := AdvanceStreak(StreakState{
		CurrentStreak:  next.CurrentStreak,
		LongestStreak:  next.LongestStreak,
		StreakShields:  next.StreakShields,
		LastActiveDate: next.LastActiveDate,
	}, evt.OccurredAt)
	next.CurrentStreak = streak.CurrentStreak
	next.LongestStreak = streak.LongestStreak
	next.StreakShields = streak.StreakShields
	activeDate := civilDate(evt.OccurredAt)
	next.LastActiveDate = &activeDate
	res.Streak = &streak

	// Feature unlocks at the new level.
	all, newly := EvaluateUnlocks(next.Level, next.TasksCompleted, evt.Achievements, next.Features, o.features)
	next.Features = all
	res.NewlyUnlocked = newly

	// Cosmetic extras. A failed roll is dropped, never propagated.
	if res.LeveledUp || evt.RewardTrigger {
		if reward, err := RollReward(o.rng, o.effects); err == nil {
			res.Reward = &reward
			if reward.Rarity.RarerThan(next.RarestReward) {
				next.RarestReward = reward.Rarity
			}
		}
	}
	if evt.Type == domain.EventTaskComplete && len(o.creatures) > 0 {
		outcome := RollSpawn(domain.SpawnContext{
			OnTaskComplete: true,
			QuickTask:      evt.QuickTask,
			StreakDays:     next.CurrentStreak,
			Level:          next.Level,
			Hour:           evt.OccurredAt.Hour(),
		}, o.creatures, o.rng)
		res.Spawn = &outcome
	}

	return next, res, nil
}
