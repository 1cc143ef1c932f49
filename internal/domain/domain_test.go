package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Validator Tests ---

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{"valid email", "user@example.com", false, ""},
		{"valid email with dots", "first.last@example.co.uk", false, ""},
		{"valid email with plus", "user+tag@example.com", false, ""},
		{"valid email with dash", "user-name@exam-ple.com", false, ""},
		{"empty string", "", true, "email is required"},
		{"no at sign", "userexample.com", true, "invalid email format"},
		{"no domain", "user@", true, "invalid email format"},
		{"no user", "@example.com", true, "invalid email format"},
		{"double at", "user@@example.com", true, "invalid email format"},
		{"no tld", "user@example", true, "invalid email format"},
		{"single char tld", "user@example.c", true, "invalid email format"},
		{"spaces", "user @example.com", true, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateXPAmount(t *testing.T) {
	tests := []struct {
		name    string
		xp      int
		wantErr bool
	}{
		{"positive", 10, false},
		{"zero", 0, false},
		{"large award", 10_000, false},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateXPAmount(tt.xp)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be non-negative")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// --- AppError Tests ---

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := ErrNotFound("player", "abc-123")
		assert.Equal(t, "NOT_FOUND: player abc-123 not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrInternal("database error", cause)
		assert.Contains(t, err.Error(), "INTERNAL_ERROR")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ErrInternal("wrapped", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"ErrNotFound", ErrNotFound("player", "123"), "NOT_FOUND", 404},
		{"ErrConflict", ErrConflict("already exists"), "CONFLICT", 409},
		{"ErrValidation", ErrValidation("bad input"), "VALIDATION_ERROR", 400},
		{"ErrUnauthorized", ErrUnauthorized("no token"), "UNAUTHORIZED", 401},
		{"ErrForbidden", ErrForbidden("not allowed"), "FORBIDDEN", 403},
		{"ErrRateLimited", ErrRateLimited("slow down"), "RATE_LIMITED", 429},
		{"ErrAccountLocked", ErrAccountLocked("too many attempts"), "ACCOUNT_LOCKED", 429},
		{"ErrInternal", ErrInternal("oops", nil), "INTERNAL_ERROR", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

// --- Rarity Tests ---

func TestRewardRarity_Ordering(t *testing.T) {
	assert.True(t, RarityMythic.RarerThan(RarityLegendary))
	assert.True(t, RarityLegendary.RarerThan(RarityRare))
	assert.True(t, RarityRare.RarerThan(RarityUncommon))
	assert.True(t, RarityUncommon.RarerThan(RarityCommon))
	assert.False(t, RarityCommon.RarerThan(RarityCommon))
	assert.False(t, RarityCommon.RarerThan(RarityMythic))
}

func TestRewardRarity_UnsetIsNeverRarer(t *testing.T) {
	// Everything beats the empty "no reward yet" value.
	assert.True(t, RarityCommon.RarerThan(""))
	assert.False(t, RewardRarity("").RarerThan(RarityCommon))
	assert.False(t, RewardRarity("shiny").RarerThan(RarityCommon))
}

func TestCreatureRarity_Valid(t *testing.T) {
	assert.True(t, CreatureSecret.Valid())
	assert.True(t, CreatureCommon.Valid())
	assert.False(t, CreatureRarity("shiny").Valid())
}

// --- Game State Tests ---

func TestNewPlayerGameState(t *testing.T) {
	playerID := uuid.New()
	state := NewPlayerGameState(playerID)

	assert.Equal(t, playerID, state.PlayerID)
	assert.Equal(t, 0, state.XP)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, []FeatureCode{FeatureInbox}, state.Features)
	assert.Nil(t, state.LastActiveDate)
	require.NoError(t, state.Validate())
}

func TestPlayerGameState_HasFeature(t *testing.T) {
	state := NewPlayerGameState(uuid.New())
	assert.True(t, state.HasFeature(FeatureInbox))
	assert.False(t, state.HasFeature(FeatureThemes))
}

func TestPlayerGameState_CloneIsIndependent(t *testing.T) {
	state := NewPlayerGameState(uuid.New())
	d := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	state.LastActiveDate = &d

	cp := state.Clone()
	cp.Features = append(cp.Features, FeatureTodayView)
	*cp.LastActiveDate = cp.LastActiveDate.AddDate(0, 0, 1)

	assert.Equal(t, []FeatureCode{FeatureInbox}, state.Features)
	assert.Equal(t, d, *state.LastActiveDate)
}

func TestPlayerGameState_Validate(t *testing.T) {
	t.Run("level must match xp", func(t *testing.T) {
		state := NewPlayerGameState(uuid.New())
		state.XP = 250
		state.Level = 1
		assert.Error(t, state.Validate())
		state.Level = 3
		assert.NoError(t, state.Validate())
	})

	t.Run("longest below current rejected", func(t *testing.T) {
		state := NewPlayerGameState(uuid.New())
		state.CurrentStreak = 5
		state.LongestStreak = 3
		assert.Error(t, state.Validate())
	})

	t.Run("shields outside cap rejected", func(t *testing.T) {
		state := NewPlayerGameState(uuid.New())
		state.StreakShields = ShieldCap + 1
		assert.Error(t, state.Validate())
	})

	t.Run("unknown feature rejected", func(t *testing.T) {
		state := NewPlayerGameState(uuid.New())
		state.Features = append(state.Features, FeatureCode("time_travel"))
		assert.Error(t, state.Validate())
	})
}

// --- Event Factory Tests ---

func TestNewPlayerCreatedEvent(t *testing.T) {
	playerID := uuid.New()
	event := NewPlayerCreatedEvent(playerID, "test@example.com")

	assert.NotEqual(t, uuid.Nil, event.EventID)
	assert.Equal(t, AggregatePlayer, event.AggregateType)
	assert.Equal(t, playerID.String(), event.AggregateID)
	assert.Equal(t, OutboxPlayerCreated, event.EventType)
	assert.Equal(t, playerID.String(), event.PartitionKey)
	assert.False(t, event.OccurredAt.IsZero())

	var payload map[string]string
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "test@example.com", payload["email"])
}

func TestNewLevelUpEvent(t *testing.T) {
	playerID := uuid.New()
	event := NewLevelUpEvent(playerID, 4, 310)

	assert.Equal(t, AggregateGame, event.AggregateType)
	assert.Equal(t, OutboxLevelUp, event.EventType)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, float64(4), payload["new_level"])
	assert.Equal(t, float64(310), payload["xp"])
}

func TestNewStreakEvent(t *testing.T) {
	playerID := uuid.New()

	t.Run("advanced", func(t *testing.T) {
		event := NewStreakEvent(playerID, 7, 1, false, false)
		assert.Equal(t, OutboxStreakAdvanced, event.EventType)
	})

	t.Run("broken", func(t *testing.T) {
		event := NewStreakEvent(playerID, 1, 0, false, true)
		assert.Equal(t, OutboxStreakBroken, event.EventType)
	})
}

func TestNewCreatureCaughtEvent(t *testing.T) {
	playerID := uuid.New()
	event := NewCreatureCaughtEvent(playerID, "spark-fox", true, 1)

	assert.Equal(t, OutboxCreatureCaught, event.EventType)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "spark-fox", payload["creature_id"])
	assert.Equal(t, true, payload["is_new"])
}

func TestGameEventType_Valid(t *testing.T) {
	assert.True(t, EventTaskComplete.Valid())
	assert.True(t, EventHabitComplete.Valid())
	assert.True(t, EventPomodoroComplete.Valid())
	assert.True(t, EventQuestComplete.Valid())
	assert.False(t, GameEventType("coffee_break").Valid())
}
