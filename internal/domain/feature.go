package domain

// FeatureCode identifies a progressively-unlocked app capability.
// The closed set below is validated once at catalog load; raw strings from
// storage that do not match a known code are rejected there.
type FeatureCode string

const (
	FeatureInbox       FeatureCode = "inbox"
	FeatureTodayView   FeatureCode = "today_view"
	FeatureProjects    FeatureCode = "projects"
	FeatureHabits      FeatureCode = "habits"
	FeaturePomodoro    FeatureCode = "pomodoro"
	FeatureCalendar    FeatureCode = "calendar"
	FeatureSubtasks    FeatureCode = "subtasks"
	FeatureAnalytics   FeatureCode = "analytics"
	FeatureCreaturedex FeatureCode = "creaturedex"
	FeatureThemes      FeatureCode = "themes"
)

// KnownFeatureCodes lists every valid feature code.
var KnownFeatureCodes = []FeatureCode{
	FeatureInbox,
	FeatureTodayView,
	FeatureProjects,
	FeatureHabits,
	FeaturePomodoro,
	FeatureCalendar,
	FeatureSubtasks,
	FeatureAnalytics,
	FeatureCreaturedex,
	FeatureThemes,
}

// Valid reports whether the code is in the closed feature set.
func (c FeatureCode) Valid() bool {
	for _, known := range KnownFeatureCodes {
		if c == known {
			return true
		}
	}
	return false
}

// FeatureDefinition is a static catalog entry mapping a feature to its
// unlock criteria. Criteria are OR-combined: the feature unlocks when the
// player's level reaches UnlockLevel, or when UnlockTaskCount (if non-zero)
// tasks have been completed, or when UnlockAchievement (if set) is held.
type FeatureDefinition struct {
	Code              FeatureCode `json:"code"`
	UnlockLevel       int         `json:"unlock_level"`
	UnlockTaskCount   int         `json:"unlock_task_count,omitempty"`
	UnlockAchievement string      `json:"unlock_achievement,omitempty"`
}
