package repository

import (
	"context"
	"fmt"

	"github.com/focusquest/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type gameStateRepo struct{}

// NewGameStateRepository returns a pgx-backed GameStateRepository.
func NewGameStateRepository() GameStateRepository {
	return &gameStateRepo{}
}

const gameStateColumns = `player_id, xp, level, current_streak, longest_streak,
	streak_shields, last_active_date, tasks_completed, creatures_caught,
	rarest_reward, created_at, updated_at`

func (r *gameStateRepo) FindByID(ctx context.Context, db DBTX, playerID uuid.UUID) (*domain.PlayerGameState, error) {
	row := db.QueryRow(ctx, `
		SELECT `+gameStateColumns+`
		FROM player_game_state WHERE player_id = $1`, playerID)
	return scanGameState(row)
}

func (r *gameStateRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.PlayerGameState, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+gameStateColumns+`
		FROM player_game_state WHERE player_id = $1 FOR UPDATE`, playerID)
	return scanGameState(row)
}

func (r *gameStateRepo) Create(ctx context.Context, db DBTX, state *domain.PlayerGameState) error {
	_, err := db.Exec(ctx, `
		INSERT INTO player_game_state
		  (player_id, xp, level, current_streak, longest_streak, streak_shields,
		   last_active_date, tasks_completed, creatures_caught, rarest_reward)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		state.PlayerID,
		state.XP,
		state.Level,
		state.CurrentStreak,
		state.LongestStreak,
		state.StreakShields,
		state.LastActiveDate,
		state.TasksCompleted,
		state.CreaturesCaught,
		nullableRarity(state.RarestReward),
	)
	if err != nil {
		return fmt.Errorf("insert game state: %w", err)
	}
	return nil
}

func (r *gameStateRepo) Update(ctx context.Context, tx pgx.Tx, state *domain.PlayerGameState) error {
	tag, err := tx.Exec(ctx, `
		UPDATE player_game_state SET
		  xp = $2, level = $3, current_streak = $4, longest_streak = $5,
		  streak_shields = $6, last_active_date = $7, tasks_completed = $8,
		  creatures_caught = $9, rarest_reward = $10, updated_at = now()
		WHERE player_id = $1`,
		state.PlayerID,
		state.XP,
		state.Level,
		state.CurrentStreak,
		state.LongestStreak,
		state.StreakShields,
		state.LastActiveDate,
		state.TasksCompleted,
		state.CreaturesCaught,
		nullableRarity(state.RarestReward),
	)
	if err != nil {
		return fmt.Errorf("update game state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("game state", state.PlayerID.String())
	}
	return nil
}

func (r *gameStateRepo) TopByXP(ctx context.Context, db DBTX, limit int) ([]domain.PlayerGameState, error) {
	rows, err := db.Query(ctx, `
		SELECT `+gameStateColumns+`
		FROM player_game_state
		ORDER BY xp DESC, player_id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var states []domain.PlayerGameState
	for rows.Next() {
		state, err := scanGameState(rows)
		if err != nil {
			return nil, err
		}
		states = append(states, *state)
	}
	return states, rows.Err()
}

func (r *gameStateRepo) Stats(ctx context.Context, db DBTX) (*domain.GameStats, error) {
	var stats domain.GameStats
	err := db.QueryRow(ctx, `
		SELECT
		  count(*),
		  coalesce(avg(level), 0),
		  count(*) FILTER (WHERE current_streak > 0),
		  coalesce(sum(creatures_caught), 0),
		  (SELECT count(*) FROM reward_log)
		FROM player_game_state`).Scan(
		&stats.TotalPlayers,
		&stats.AverageLevel,
		&stats.ActiveStreaks,
		&stats.CreaturesCaught,
		&stats.RewardsRolled,
	)
	if err != nil {
		return nil, fmt.Errorf("query game stats: %w", err)
	}
	return &stats, nil
}

func scanGameState(row pgx.Row) (*domain.PlayerGameState, error) {
	var s domain.PlayerGameState
	var rarest *string
	err := row.Scan(
		&s.PlayerID, &s.XP, &s.Level, &s.CurrentStreak, &s.LongestStreak,
		&s.StreakShields, &s.LastActiveDate, &s.TasksCompleted,
		&s.CreaturesCaught, &rarest, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan game state: %w", err)
	}
	if rarest != nil {
		s.RarestReward = domain.RewardRarity(*rarest)
	}
	return &s, nil
}

func nullableRarity(r domain.RewardRarity) *string {
	if r == "" {
		return nil
	}
	s := string(r)
	return &s
}
