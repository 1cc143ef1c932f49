package catalog

import "github.com/focusquest/platform/internal/domain"

// QuestTemplates returns the daily quest pool. Three are drawn per player
// per day from the templates at or below the player's level.
func QuestTemplates() []domain.QuestTemplate {
	return []domain.QuestTemplate{
		{ID: "three-tasks", Type: domain.QuestCompleteTasks, Title: "Complete 3 tasks", Target: 3, XPReward: 30, MinLevel: 1},
		{ID: "quick-wins", Type: domain.QuestQuickWins, Title: "Knock out 2 quick wins", Target: 2, XPReward: 20, MinLevel: 1},
		{ID: "inbox-zero", Type: domain.QuestClearInbox, Title: "Clear your inbox", Target: 1, XPReward: 25, MinLevel: 1},
		{ID: "five-tasks", Type: domain.QuestCompleteTasks, Title: "Complete 5 tasks", Target: 5, XPReward: 50, MinLevel: 3},
		{ID: "habit-check", Type: domain.QuestCheckHabits, Title: "Check off 2 habits", Target: 2, XPReward: 30, MinLevel: 4},
		{ID: "focus-25", Type: domain.QuestFocusMinutes, Title: "Focus for 25 minutes", Target: 25, XPReward: 35, MinLevel: 5},
		{ID: "focus-50", Type: domain.QuestFocusMinutes, Title: "Focus for 50 minutes", Target: 50, XPReward: 60, MinLevel: 8},
		{ID: "deep-day", Type: domain.QuestCompleteTasks, Title: "Complete 8 tasks", Target: 8, XPReward: 80, MinLevel: 10},
	}
}
