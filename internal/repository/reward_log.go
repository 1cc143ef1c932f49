package repository

import (
	"context"
	"fmt"

	"github.com/focusquest/platform/internal/domain"
	"github.com/google/uuid"
)

type rewardRepo struct{}

// NewRewardRepository returns a pgx-backed RewardRepository.
func NewRewardRepository() RewardRepository {
	return &rewardRepo{}
}

func (r *rewardRepo) Insert(ctx context.Context, db DBTX, entry *domain.RewardEntry) error {
	_, err := db.Exec(ctx, `
		INSERT INTO reward_log (id, player_id, rarity, effect)
		VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.PlayerID, string(entry.Rarity), entry.Effect)
	if err != nil {
		return fmt.Errorf("insert reward entry: %w", err)
	}
	return nil
}

func (r *rewardRepo) ListByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID, limit int) ([]domain.RewardEntry, error) {
	rows, err := db.Query(ctx, `
		SELECT id, player_id, rarity, effect, created_at
		FROM reward_log
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("query reward log: %w", err)
	}
	defer rows.Close()

	var entries []domain.RewardEntry
	for rows.Next() {
		var e domain.RewardEntry
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.Rarity, &e.Effect, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reward row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
