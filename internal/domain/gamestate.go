package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShieldCap is the maximum number of streak shields a player can hold.
const ShieldCap = 3

// PlayerGameState is a player's persisted gamification snapshot. The engine
// receives a copy and returns a new copy; only the persistence layer mutates
// the stored row.
type PlayerGameState struct {
	PlayerID        uuid.UUID     `json:"player_id"`
	XP              int           `json:"xp"`
	Level           int           `json:"level"`
	CurrentStreak   int           `json:"current_streak"`
	LongestStreak   int           `json:"longest_streak"`
	StreakShields   int           `json:"streak_shields"`
	LastActiveDate  *time.Time    `json:"last_active_date,omitempty"`
	TasksCompleted  int           `json:"tasks_completed"`
	CreaturesCaught int           `json:"creatures_caught"`
	RarestReward    RewardRarity  `json:"rarest_reward,omitempty"`
	Features        []FeatureCode `json:"features"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NewPlayerGameState returns the canonical fresh state for a new account:
// zero XP at level 1, no streak, no shields, inbox unlocked.
func NewPlayerGameState(playerID uuid.UUID) PlayerGameState {
	return PlayerGameState{
		PlayerID: playerID,
		XP:       0,
		Level:    1,
		Features: []FeatureCode{FeatureInbox},
	}
}

// HasFeature reports whether the feature is in the unlocked set.
func (s PlayerGameState) HasFeature(code FeatureCode) bool {
	for _, f := range s.Features {
		if f == code {
			return true
		}
	}
	return false
}

// Clone returns a copy with an independent feature slice, so engine runs
// never alias the caller's snapshot.
func (s PlayerGameState) Clone() PlayerGameState {
	cp := s
	cp.Features = make([]FeatureCode, len(s.Features))
	copy(cp.Features, s.Features)
	if s.LastActiveDate != nil {
		d := *s.LastActiveDate
		cp.LastActiveDate = &d
	}
	return cp
}

// Validate checks the structural invariants of a game state snapshot.
func (s PlayerGameState) Validate() error {
	if s.XP < 0 {
		return fmt.Errorf("xp must be non-negative, got %d", s.XP)
	}
	if s.Level != s.XP/100+1 {
		return fmt.Errorf("level %d inconsistent with xp %d", s.Level, s.XP)
	}
	if s.LongestStreak < s.CurrentStreak {
		return fmt.Errorf("longest streak %d below current streak %d", s.LongestStreak, s.CurrentStreak)
	}
	if s.StreakShields < 0 || s.StreakShields > ShieldCap {
		return fmt.Errorf("streak shields %d outside [0,%d]", s.StreakShields, ShieldCap)
	}
	if s.RarestReward != "" && !s.RarestReward.Valid() {
		return fmt.Errorf("unknown reward rarity %q", s.RarestReward)
	}
	for _, f := range s.Features {
		if !f.Valid() {
			return fmt.Errorf("unknown feature code %q", f)
		}
	}
	return nil
}

// PlayerCreature is an ownership row for a caught creature.
type PlayerCreature struct {
	PlayerID   uuid.UUID  `json:"player_id"`
	CreatureID CreatureID `json:"creature_id"`
	Count      int        `json:"count"`
	FirstSeen  time.Time  `json:"first_seen"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RewardEntry is a logged cosmetic reward roll.
type RewardEntry struct {
	ID        uuid.UUID    `json:"id"`
	PlayerID  uuid.UUID    `json:"player_id"`
	Rarity    RewardRarity `json:"rarity"`
	Effect    string       `json:"effect"`
	CreatedAt time.Time    `json:"created_at"`
}
