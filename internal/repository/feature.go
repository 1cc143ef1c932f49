package repository

import (
	"context"
	"fmt"

	"github.com/focusquest/platform/internal/domain"
	"github.com/google/uuid"
)

type featureRepo struct{}

// NewFeatureRepository returns a pgx-backed FeatureRepository.
func NewFeatureRepository() FeatureRepository {
	return &featureRepo{}
}

func (r *featureRepo) ListByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID) ([]domain.FeatureCode, error) {
	rows, err := db.Query(ctx, `
		SELECT feature_code FROM player_features
		WHERE player_id = $1
		ORDER BY unlocked_at ASC, feature_code ASC`, playerID)
	if err != nil {
		return nil, fmt.Errorf("query player features: %w", err)
	}
	defer rows.Close()

	var codes []domain.FeatureCode
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan feature row: %w", err)
		}
		codes = append(codes, domain.FeatureCode(code))
	}
	return codes, rows.Err()
}

func (r *featureRepo) Add(ctx context.Context, db DBTX, playerID uuid.UUID, codes []domain.FeatureCode) error {
	if len(codes) == 0 {
		return nil
	}
	raw := make([]string, len(codes))
	for i, code := range codes {
		raw[i] = string(code)
	}
	_, err := db.Exec(ctx, `
		INSERT INTO player_features (player_id, feature_code)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (player_id, feature_code) DO NOTHING`, playerID, raw)
	if err != nil {
		return fmt.Errorf("insert player features: %w", err)
	}
	return nil
}
