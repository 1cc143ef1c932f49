package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GameEventType enumerates the triggering events the orchestrator accepts.
type GameEventType string

const (
	EventTaskComplete     GameEventType = "task_complete"
	EventHabitComplete    GameEventType = "habit_complete"
	EventPomodoroComplete GameEventType = "pomodoro_complete"
	EventQuestComplete    GameEventType = "quest_complete"
)

// Valid reports whether the event type is known.
func (t GameEventType) Valid() bool {
	switch t {
	case EventTaskComplete, EventHabitComplete, EventPomodoroComplete, EventQuestComplete:
		return true
	default:
		return false
	}
}

// OutboxEventType enumerates all published domain event types.
type OutboxEventType string

const (
	OutboxPlayerCreated   OutboxEventType = "fq.player.created"
	OutboxLevelUp         OutboxEventType = "fq.game.level_up"
	OutboxStreakAdvanced  OutboxEventType = "fq.game.streak_advanced"
	OutboxStreakBroken    OutboxEventType = "fq.game.streak_broken"
	OutboxFeatureUnlocked OutboxEventType = "fq.game.feature_unlocked"
	OutboxRewardRolled    OutboxEventType = "fq.game.reward_rolled"
	OutboxCreatureCaught  OutboxEventType = "fq.game.creature_caught"
	OutboxQuestCompleted  OutboxEventType = "fq.quest.completed"
)

// AggregateType enumerates the aggregate root types for outbox events.
type AggregateType string

const (
	AggregatePlayer AggregateType = "player"
	AggregateGame   AggregateType = "game"
	AggregateQuest  AggregateType = "quest"
)

// OutboxDraft is the payload written to the event_outbox table.
// SeqID is assigned by the database; it is zero until the draft is read back.
type OutboxDraft struct {
	SeqID         int64           `json:"-"`
	EventID       uuid.UUID       `json:"event_id"`
	AggregateType AggregateType   `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     OutboxEventType `json:"event_type"`
	PartitionKey  string          `json:"partition_key"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
