package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/focusquest/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type questRepo struct{}

// NewQuestRepository returns a pgx-backed QuestRepository.
func NewQuestRepository() QuestRepository {
	return &questRepo{}
}

const questColumns = `id, player_id, template_id, quest_date, quest_type,
	title, target, progress, completed, xp_reward, created_at`

func (r *questRepo) ListForDate(ctx context.Context, db DBTX, playerID uuid.UUID, date time.Time) ([]domain.DailyQuest, error) {
	rows, err := db.Query(ctx, `
		SELECT `+questColumns+`
		FROM daily_quests
		WHERE player_id = $1 AND quest_date = $2
		ORDER BY created_at ASC, id ASC`, playerID, date)
	if err != nil {
		return nil, fmt.Errorf("query daily quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.DailyQuest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, *q)
	}
	return quests, rows.Err()
}

func (r *questRepo) CreateBatch(ctx context.Context, db DBTX, quests []domain.DailyQuest) error {
	for _, q := range quests {
		_, err := db.Exec(ctx, `
			INSERT INTO daily_quests
			  (id, player_id, template_id, quest_date, quest_type, title, target, progress, completed, xp_reward)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (player_id, quest_date, template_id) DO NOTHING`,
			q.ID, q.PlayerID, q.TemplateID, q.QuestDate, string(q.Type),
			q.Title, q.Target, q.Progress, q.Completed, q.XPReward)
		if err != nil {
			return fmt.Errorf("insert daily quest %s: %w", q.TemplateID, err)
		}
	}
	return nil
}

func (r *questRepo) UpdateProgress(ctx context.Context, db DBTX, questID uuid.UUID, progress int, completed bool) error {
	tag, err := db.Exec(ctx, `
		UPDATE daily_quests SET progress = $2, completed = $3
		WHERE id = $1`, questID, progress, completed)
	if err != nil {
		return fmt.Errorf("update quest progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("quest", questID.String())
	}
	return nil
}

func (r *questRepo) LockForUpdate(ctx context.Context, db DBTX, questID uuid.UUID) (*domain.DailyQuest, error) {
	row := db.QueryRow(ctx, `
		SELECT `+questColumns+`
		FROM daily_quests WHERE id = $1
		FOR UPDATE`, questID)
	q, err := scanQuest(row)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func scanQuest(row pgx.Row) (*domain.DailyQuest, error) {
	var q domain.DailyQuest
	err := row.Scan(&q.ID, &q.PlayerID, &q.TemplateID, &q.QuestDate, &q.Type,
		&q.Title, &q.Target, &q.Progress, &q.Completed, &q.XPReward, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan quest row: %w", err)
	}
	return &q, nil
}
