package domain

// CreatureID identifies a collectible creature in the static catalog.
type CreatureID string

// TimeRange is an hour-of-day window [StartHour, EndHour).
type TimeRange struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Contains reports whether hour falls inside the window.
func (t TimeRange) Contains(hour int) bool {
	return t.StartHour <= hour && hour < t.EndHour
}

// SpawnConditions gates a creature to a context. Each defined condition is
// an independent AND-gate; a creature with nil conditions is always eligible.
type SpawnConditions struct {
	OnTaskComplete bool       `json:"on_task_complete,omitempty"`
	OnQuickTask    bool       `json:"on_quick_task,omitempty"`
	OnStreakDay    int        `json:"on_streak_day,omitempty"`
	OnLevel        int        `json:"on_level,omitempty"`
	OnTimeRange    *TimeRange `json:"on_time_range,omitempty"`
}

// CreatureDefinition is a static catalog entry for a collectible creature.
// SpawnChance is a relative weight for the cumulative-weight pick; zero
// means the default weight.
type CreatureDefinition struct {
	ID          CreatureID       `json:"id"`
	Name        string           `json:"name"`
	SpawnChance int              `json:"spawn_chance,omitempty"`
	Conditions  *SpawnConditions `json:"conditions,omitempty"`
	Rarity      CreatureRarity   `json:"rarity"`
}

// SpawnContext carries the event context evaluated against SpawnConditions.
type SpawnContext struct {
	OnTaskComplete bool `json:"on_task_complete"`
	QuickTask      bool `json:"quick_task"`
	StreakDays     int  `json:"streak_days"`
	Level          int  `json:"level"`
	Hour           int  `json:"hour"`
}
