package repository

import (
	"context"
	"time"

	"github.com/focusquest/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// GameStateRepository provides access to player_game_state.
// The Features slice is NOT loaded here; callers attach it from
// FeatureRepository before handing a snapshot to the engine.
type GameStateRepository interface {
	// FindByID returns a player's game state, or nil if absent.
	FindByID(ctx context.Context, db DBTX, playerID uuid.UUID) (*domain.PlayerGameState, error)

	// LockForUpdate acquires a row-level lock (SELECT FOR UPDATE) so
	// concurrent events for the same player serialize.
	LockForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.PlayerGameState, error)

	// Create inserts the fresh state for a new player.
	Create(ctx context.Context, db DBTX, state *domain.PlayerGameState) error

	// Update persists all mutable columns of the snapshot.
	Update(ctx context.Context, tx pgx.Tx, state *domain.PlayerGameState) error

	// TopByXP returns the highest-XP players for the admin leaderboard.
	TopByXP(ctx context.Context, db DBTX, limit int) ([]domain.PlayerGameState, error)

	// Stats returns the aggregate dashboard numbers.
	Stats(ctx context.Context, db DBTX) (*domain.GameStats, error)
}

// FeatureRepository provides access to player_features.
type FeatureRepository interface {
	// ListByPlayer returns the player's unlocked feature codes.
	ListByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID) ([]domain.FeatureCode, error)

	// Add records newly unlocked features. Already-present codes are ignored.
	Add(ctx context.Context, db DBTX, playerID uuid.UUID, codes []domain.FeatureCode) error
}

// CreatureRepository provides access to player_creatures.
type CreatureRepository interface {
	// Upsert records a catch and returns the post-increment count for the
	// creature. A returned count of 1 means this is the first catch.
	Upsert(ctx context.Context, db DBTX, playerID uuid.UUID, creatureID domain.CreatureID) (int, error)

	// ListByPlayer returns the player's collection ordered by first catch.
	ListByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID) ([]domain.PlayerCreature, error)
}

// RewardRepository provides access to reward_log.
type RewardRepository interface {
	// Insert appends a reward roll to the log.
	Insert(ctx context.Context, db DBTX, entry *domain.RewardEntry) error

	// ListByPlayer returns recent rewards, newest first.
	ListByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID, limit int) ([]domain.RewardEntry, error)
}

// QuestRepository provides access to daily_quests.
type QuestRepository interface {
	// ListForDate returns the player's quests for a calendar date.
	ListForDate(ctx context.Context, db DBTX, playerID uuid.UUID, date time.Time) ([]domain.DailyQuest, error)

	// CreateBatch inserts a day's quest set in one round trip.
	CreateBatch(ctx context.Context, db DBTX, quests []domain.DailyQuest) error

	// UpdateProgress persists a quest's progress counter and completion flag.
	UpdateProgress(ctx context.Context, db DBTX, questID uuid.UUID, progress int, completed bool) error

	// LockForUpdate loads a quest with SELECT ... FOR UPDATE, or nil if
	// absent, so concurrent progress updates serialize. Must be called
	// within a transaction.
	LockForUpdate(ctx context.Context, db DBTX, questID uuid.UUID) (*domain.DailyQuest, error)
}

// OutboxRepository provides access to the event_outbox table.
type OutboxRepository interface {
	// Insert writes an outbox event within the caller's transaction.
	Insert(ctx context.Context, db DBTX, draft domain.OutboxDraft) error

	// FetchUnpublished returns unpublished events for the outbox poller.
	FetchUnpublished(ctx context.Context, db DBTX, limit int) ([]domain.OutboxDraft, error)

	// MarkPublished removes events that have been handed to the broker.
	MarkPublished(ctx context.Context, db DBTX, ids []int64) error
}

// AuthUserRepository provides access to auth_users.
type AuthUserRepository interface {
	// FindByEmail returns an auth user by email, or nil if not found.
	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.AuthUser, error)

	// Create inserts a new auth user.
	Create(ctx context.Context, db DBTX, user *domain.AuthUser) error
}
