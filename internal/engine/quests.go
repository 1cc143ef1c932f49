package engine

import (
	"time"

	"github.com/focusquest/platform/internal/domain"
	"github.com/google/uuid"
)

// DailyQuestCount is how many quests each player receives per day.
const DailyQuestCount = 3

// SelectDailyQuests deterministically chooses the player's quests for a
// calendar date. The same (date, player) pair always yields the same ordered
// selection, across processes and restarts, with no persisted seed.
//
// Templates above the player's level are filtered out first; if three or
// fewer remain they are all returned. Otherwise a seed derived from
// "{date}-{playerID}" drives a seeded shuffle and the first three win.
func SelectDailyQuests(templates []domain.QuestTemplate, level int, date time.Time, playerID uuid.UUID) []domain.QuestTemplate {
	eligible := make([]domain.QuestTemplate, 0, len(templates))
	for _, t := range templates {
		if t.MinLevel <= level {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) <= DailyQuestCount {
		return eligible
	}

	seed := questSeed(date, playerID)
	seededShuffle(eligible, seed)
	return eligible[:DailyQuestCount]
}

// questSeed hashes "{date}-{playerID}" with a polynomial rolling hash,
// wrapping to a 32-bit signed integer at every step.
func questSeed(date time.Time, playerID uuid.UUID) int32 {
	s := date.UTC().Format("2006-01-02") + "-" + playerID.String()
	var h int32
	for _, c := range []byte(s) {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// seededShuffle permutes items in place; the swap index at position i is
// abs(seed * (i+1)) % (i+1), which is fully determined by the seed.
func seededShuffle(items []domain.QuestTemplate, seed int32) {
	for i := len(items) - 1; i > 0; i-- {
		v := int64(seed) * int64(i+1)
		if v < 0 {
			v = -v
		}
		j := int(v % int64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}
