package engine

import (
	"time"

	"github.com/focusquest/platform/internal/domain"
)

// ShieldMilestone is the streak length multiple at which a shield is earned.
const ShieldMilestone = 7

// StreakState is the slice of player state the streak machine reads.
type StreakState struct {
	CurrentStreak  int
	LongestStreak  int
	StreakShields  int
	LastActiveDate *time.Time
}

// StreakResult is the new streak state plus flags for event reporting.
type StreakResult struct {
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
	StreakShields int  `json:"streak_shields"`
	ShieldUsed    bool `json:"shield_used"`
	ShieldEarned  bool `json:"shield_earned"`
	StreakBroken  bool `json:"streak_broken"`
}

// AdvanceStreak applies the first qualifying activity of a calendar day.
//
// Transition rules, given the whole-day gap since the last active date:
//   - same day (or no gap): no-op, identical state back, all flags false
//   - gap of 1: consecutive, streak increments
//   - gap of 2 with a shield held: one missed day forgiven, shield consumed,
//     streak increments
//   - anything else: streak breaks and restarts at 1. A shield covers
//     exactly one missed day; a longer gap breaks the streak regardless of
//     shields held.
//
// After the transition, reaching a multiple of ShieldMilestone awards one
// shield up to the cap of domain.ShieldCap.
func AdvanceStreak(st StreakState, today time.Time) StreakResult {
	res := StreakResult{
		CurrentStreak: st.CurrentStreak,
		LongestStreak: st.LongestStreak,
		StreakShields: st.StreakShields,
	}

	if st.LastActiveDate == nil {
		res.CurrentStreak = 1
	} else {
		diff := daysBetween(*st.LastActiveDate, today)
		switch {
		case diff <= 0:
			// Already counted today. Idempotent.
			return res
		case diff == 1:
			res.CurrentStreak++
		case diff == 2 && st.StreakShields > 0:
			res.StreakShields--
			res.CurrentStreak++
			res.ShieldUsed = true
		default:
			res.StreakBroken = st.CurrentStreak > 0
			res.CurrentStreak = 1
		}
	}

	if res.CurrentStreak > 0 && res.CurrentStreak%ShieldMilestone == 0 && res.StreakShields < domain.ShieldCap {
		res.StreakShields++
		res.ShieldEarned = true
	}

	if res.CurrentStreak > res.LongestStreak {
		res.LongestStreak = res.CurrentStreak
	}
	return res
}

// daysBetween returns the whole calendar days from a to b, comparing civil
// dates in UTC so the hour of day never affects the gap.
func daysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
}

// CivilDate truncates t to its UTC calendar date. Streaks and daily quests
// both key on this date, so callers share one definition of "today".
func CivilDate(t time.Time) time.Time { return civilDate(t) }

func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
