package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuestType classifies what a daily quest asks the player to do.
type QuestType string

const (
	QuestCompleteTasks QuestType = "complete_tasks"
	QuestQuickWins     QuestType = "quick_wins"
	QuestFocusMinutes  QuestType = "focus_minutes"
	QuestCheckHabits   QuestType = "check_habits"
	QuestClearInbox    QuestType = "clear_inbox"
)

// QuestTemplate is a static catalog entry a daily quest is stamped from.
type QuestTemplate struct {
	ID       string    `json:"id"`
	Type     QuestType `json:"type"`
	Title    string    `json:"title"`
	Target   int       `json:"target"`
	XPReward int       `json:"xp_reward"`
	MinLevel int       `json:"min_level"`
}

// DailyQuest is one player's instance of a template for a calendar date.
// Template fields are frozen at creation; only Progress and Completed move.
type DailyQuest struct {
	ID         uuid.UUID `json:"id"`
	PlayerID   uuid.UUID `json:"player_id"`
	TemplateID string    `json:"template_id"`
	QuestDate  time.Time `json:"quest_date"`
	Type       QuestType `json:"type"`
	Title      string    `json:"title"`
	Target     int       `json:"target"`
	Progress   int       `json:"progress"`
	Completed  bool      `json:"completed"`
	XPReward   int       `json:"xp_reward"`
	CreatedAt  time.Time `json:"created_at"`
}
