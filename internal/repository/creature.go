package repository

import (
	"context"
	"fmt"

	"github.com/focusquest/platform/internal/domain"
	"github.com/google/uuid"
)

type creatureRepo struct{}

// NewCreatureRepository returns a pgx-backed CreatureRepository.
func NewCreatureRepository() CreatureRepository {
	return &creatureRepo{}
}

// Upsert bumps the catch counter server-side so concurrent catches of the
// same creature never lose an increment.
func (r *creatureRepo) Upsert(ctx context.Context, db DBTX, playerID uuid.UUID, creatureID domain.CreatureID) (int, error) {
	var count int
	err := db.QueryRow(ctx, `
		INSERT INTO player_creatures (player_id, creature_id, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (player_id, creature_id)
		DO UPDATE SET count = player_creatures.count + 1, updated_at = now()
		RETURNING count`, playerID, string(creatureID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("upsert player creature: %w", err)
	}
	return count, nil
}

func (r *creatureRepo) ListByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID) ([]domain.PlayerCreature, error) {
	rows, err := db.Query(ctx, `
		SELECT player_id, creature_id, count, first_seen, updated_at
		FROM player_creatures
		WHERE player_id = $1
		ORDER BY first_seen ASC`, playerID)
	if err != nil {
		return nil, fmt.Errorf("query player creatures: %w", err)
	}
	defer rows.Close()

	var creatures []domain.PlayerCreature
	for rows.Next() {
		var c domain.PlayerCreature
		if err := rows.Scan(&c.PlayerID, &c.CreatureID, &c.Count, &c.FirstSeen, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan creature row: %w", err)
		}
		creatures = append(creatures, c)
	}
	return creatures, rows.Err()
}
