package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

func newDraft(playerID uuid.UUID, agg AggregateType, evtType OutboxEventType, payload interface{}) OutboxDraft {
	body, _ := json.Marshal(payload)
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: agg,
		AggregateID:   playerID.String(),
		EventType:     evtType,
		PartitionKey:  playerID.String(),
		Payload:       body,
		OccurredAt:    time.Now(),
	}
}

// NewPlayerCreatedEvent creates a player lifecycle event.
func NewPlayerCreatedEvent(playerID uuid.UUID, email string) OutboxDraft {
	return newDraft(playerID, AggregatePlayer, OutboxPlayerCreated, map[string]string{
		"player_id": playerID.String(),
		"email":     email,
	})
}

// NewLevelUpEvent creates a level-up event with the new level and xp total.
func NewLevelUpEvent(playerID uuid.UUID, newLevel, xp int) OutboxDraft {
	return newDraft(playerID, AggregateGame, OutboxLevelUp, map[string]interface{}{
		"player_id": playerID.String(),
		"new_level": newLevel,
		"xp":        xp,
	})
}

// NewStreakEvent creates a streak event; broken selects the broken variant.
func NewStreakEvent(playerID uuid.UUID, streak, shields int, shieldUsed, broken bool) OutboxDraft {
	evtType := OutboxStreakAdvanced
	if broken {
		evtType = OutboxStreakBroken
	}
	return newDraft(playerID, AggregateGame, evtType, map[string]interface{}{
		"player_id":   playerID.String(),
		"streak":      streak,
		"shields":     shields,
		"shield_used": shieldUsed,
	})
}

// NewFeatureUnlockedEvent creates an event for one newly-unlocked feature.
func NewFeatureUnlockedEvent(playerID uuid.UUID, code FeatureCode) OutboxDraft {
	return newDraft(playerID, AggregateGame, OutboxFeatureUnlocked, map[string]string{
		"player_id": playerID.String(),
		"feature":   string(code),
	})
}

// NewRewardRolledEvent creates an event for a cosmetic reward roll.
func NewRewardRolledEvent(playerID uuid.UUID, rarity RewardRarity, effect string) OutboxDraft {
	return newDraft(playerID, AggregateGame, OutboxRewardRolled, map[string]string{
		"player_id": playerID.String(),
		"rarity":    string(rarity),
		"effect":    effect,
	})
}

// NewCreatureCaughtEvent creates an event for a creature spawn.
func NewCreatureCaughtEvent(playerID uuid.UUID, creatureID CreatureID, isNew bool, count int) OutboxDraft {
	return newDraft(playerID, AggregateGame, OutboxCreatureCaught, map[string]interface{}{
		"player_id":   playerID.String(),
		"creature_id": string(creatureID),
		"is_new":      isNew,
		"count":       count,
	})
}

// NewQuestCompletedEvent creates an event for a completed daily quest.
func NewQuestCompletedEvent(playerID uuid.UUID, questID uuid.UUID, templateID string, xpReward int) OutboxDraft {
	return newDraft(playerID, AggregateQuest, OutboxQuestCompleted, map[string]interface{}{
		"player_id":   playerID.String(),
		"quest_id":    questID.String(),
		"template_id": templateID,
		"xp_reward":   xpReward,
	})
}
