package catalog

import "github.com/focusquest/platform/internal/domain"

// Features returns the feature unlock ladder. Inbox is the level-0 floor;
// everything else opens up gradually so new players see a minimal surface.
func Features() []domain.FeatureDefinition {
	return []domain.FeatureDefinition{
		{Code: domain.FeatureInbox, UnlockLevel: 0},
		{Code: domain.FeatureTodayView, UnlockLevel: 2},
		{Code: domain.FeatureProjects, UnlockLevel: 3},
		{Code: domain.FeatureHabits, UnlockLevel: 4},
		{Code: domain.FeaturePomodoro, UnlockLevel: 5},
		{Code: domain.FeatureCreaturedex, UnlockLevel: 6, UnlockTaskCount: 25},
		{Code: domain.FeatureSubtasks, UnlockLevel: 7, UnlockTaskCount: 50},
		{Code: domain.FeatureCalendar, UnlockLevel: 8},
		{Code: domain.FeatureAnalytics, UnlockLevel: 10, UnlockTaskCount: 100},
		{Code: domain.FeatureThemes, UnlockLevel: 12, UnlockAchievement: "streak_master"},
	}
}
