package service

import (
	"context"
	"time"

	"github.com/focusquest/platform/internal/domain"
	"github.com/focusquest/platform/internal/engine"
	"github.com/focusquest/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GamificationService processes triggering events against a player's game
// state. Each event runs in one transaction with the state row locked, so
// concurrent events for the same player serialize and each sees the
// previous event's outcome.
type GamificationService struct {
	pool      *pgxpool.Pool
	orch      *engine.Orchestrator
	states    repository.GameStateRepository
	features  repository.FeatureRepository
	creatures repository.CreatureRepository
	rewards   repository.RewardRepository
	outbox    repository.OutboxRepository
	catalog   map[domain.CreatureID]domain.CreatureDefinition
}

// NewGamificationService creates a GamificationService.
func NewGamificationService(
	pool *pgxpool.Pool,
	orch *engine.Orchestrator,
	creatureCatalog []domain.CreatureDefinition,
	states repository.GameStateRepository,
	features repository.FeatureRepository,
	creatures repository.CreatureRepository,
	rewards repository.RewardRepository,
	outbox repository.OutboxRepository,
) *GamificationService {
	byID := make(map[domain.CreatureID]domain.CreatureDefinition, len(creatureCatalog))
	for _, def := range creatureCatalog {
		byID[def.ID] = def
	}
	return &GamificationService{
		pool:      pool,
		orch:      orch,
		states:    states,
		features:  features,
		creatures: creatures,
		rewards:   rewards,
		outbox:    outbox,
		catalog:   byID,
	}
}

// EventInput holds one triggering event from the task manager.
type EventInput struct {
	Type          domain.GameEventType `json:"type"`
	XP            int                  `json:"xp"`
	QuickTask     bool                 `json:"quick_task"`
	RewardTrigger bool                 `json:"reward_trigger"`
	Achievements  []string             `json:"achievements"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// CreatureCatch enriches a spawn with catalog data and ownership counts.
type CreatureCatch struct {
	ID     domain.CreatureID     `json:"id"`
	Name   string                `json:"name"`
	Rarity domain.CreatureRarity `json:"rarity"`
	IsNew  bool                  `json:"is_new"`
	Count  int                   `json:"count"`
}

// EventOutcome is the API-facing result of one processed event.
type EventOutcome struct {
	XPAwarded     int                  `json:"xp_awarded"`
	XP            int                  `json:"xp"`
	Level         int                  `json:"level"`
	LeveledUp     bool                 `json:"leveled_up"`
	NewLevel      int                  `json:"new_level,omitempty"`
	NewlyUnlocked []domain.FeatureCode `json:"newly_unlocked,omitempty"`
	Streak        *engine.StreakResult `json:"streak,omitempty"`
	Reward        *engine.Reward       `json:"reward,omitempty"`
	Creature      *CreatureCatch       `json:"creature,omitempty"`
}

// ProcessEvent applies one event atomically: lock the state row, run the
// engine, persist every output and queue outbox events, then commit.
func (s *GamificationService) ProcessEvent(ctx context.Context, playerID uuid.UUID, input EventInput) (*EventOutcome, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	outcome, err := s.processEventTx(ctx, tx, playerID, input)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return outcome, nil
}

// processEventTx is ProcessEvent's body running on the caller's
// transaction, so quest completion can award XP and flip the quest row
// in one atomic unit.
func (s *GamificationService) processEventTx(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, input EventInput) (*EventOutcome, error) {
	if input.OccurredAt.IsZero() {
		input.OccurredAt = time.Now()
	}

	state, err := s.states.LockForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, domain.ErrInternal("lock game state", err)
	}
	if state == nil {
		return nil, domain.ErrNotFound("game state", playerID.String())
	}
	state.Features, err = s.features.ListByPlayer(ctx, tx, playerID)
	if err != nil {
		return nil, domain.ErrInternal("load features", err)
	}

	next, res, err := s.orch.Apply(*state, engine.Event{
		Type:          input.Type,
		XP:            input.XP,
		QuickTask:     input.QuickTask,
		RewardTrigger: input.RewardTrigger,
		Achievements:  input.Achievements,
		OccurredAt:    input.OccurredAt,
	})
	if err != nil {
		return nil, err
	}

	var catch *CreatureCatch
	if res.Spawn != nil && res.Spawn.Creature != nil {
		count, err := s.creatures.Upsert(ctx, tx, playerID, res.Spawn.Creature.ID)
		if err != nil {
			return nil, domain.ErrInternal("record creature catch", err)
		}
		catch = &CreatureCatch{
			ID:     res.Spawn.Creature.ID,
			Name:   res.Spawn.Creature.Name,
			Rarity: res.Spawn.Creature.Rarity,
			IsNew:  count == 1,
			Count:  count,
		}
		if catch.IsNew {
			next.CreaturesCaught++
		}
	}

	if err := s.states.Update(ctx, tx, &next); err != nil {
		return nil, err
	}
	if err := s.features.Add(ctx, tx, playerID, res.NewlyUnlocked); err != nil {
		return nil, domain.ErrInternal("persist unlocked features", err)
	}
	if res.Reward != nil {
		entry := &domain.RewardEntry{
			ID:       uuid.New(),
			PlayerID: playerID,
			Rarity:   res.Reward.Rarity,
			Effect:   res.Reward.Effect,
		}
		if err := s.rewards.Insert(ctx, tx, entry); err != nil {
			return nil, domain.ErrInternal("log reward", err)
		}
	}

	if err := s.queueOutbox(ctx, tx, playerID, *state, next, res, catch); err != nil {
		return nil, err
	}

	return &EventOutcome{
		XPAwarded:     res.XPAwarded,
		XP:            next.XP,
		Level:         next.Level,
		LeveledUp:     res.LeveledUp,
		NewLevel:      res.NewLevel,
		NewlyUnlocked: res.NewlyUnlocked,
		Streak:        res.Streak,
		Reward:        res.Reward,
		Creature:      catch,
	}, nil
}

func (s *GamificationService) queueOutbox(
	ctx context.Context,
	db repository.DBTX,
	playerID uuid.UUID,
	prev, next domain.PlayerGameState,
	res engine.Result,
	catch *CreatureCatch,
) error {
	var drafts []domain.OutboxDraft

	if res.LeveledUp {
		drafts = append(drafts, domain.NewLevelUpEvent(playerID, res.NewLevel, next.XP))
	}
	if st := res.Streak; st != nil {
		if st.StreakBroken {
			drafts = append(drafts, domain.NewStreakEvent(playerID, st.CurrentStreak, st.StreakShields, st.ShieldUsed, true))
		} else if st.CurrentStreak != prev.CurrentStreak {
			drafts = append(drafts, domain.NewStreakEvent(playerID, st.CurrentStreak, st.StreakShields, st.ShieldUsed, false))
		}
	}
	for _, code := range res.NewlyUnlocked {
		drafts = append(drafts, domain.NewFeatureUnlockedEvent(playerID, code))
	}
	if res.Reward != nil {
		drafts = append(drafts, domain.NewRewardRolledEvent(playerID, res.Reward.Rarity, res.Reward.Effect))
	}
	if catch != nil {
		drafts = append(drafts, domain.NewCreatureCaughtEvent(playerID, catch.ID, catch.IsNew, catch.Count))
	}

	for _, draft := range drafts {
		if err := s.outbox.Insert(ctx, db, draft); err != nil {
			return domain.ErrInternal("queue outbox event", err)
		}
	}
	return nil
}

// GetState returns the player's game state with features attached.
func (s *GamificationService) GetState(ctx context.Context, playerID uuid.UUID) (*domain.PlayerGameState, error) {
	state, err := s.states.FindByID(ctx, s.pool, playerID)
	if err != nil {
		return nil, domain.ErrInternal("find game state", err)
	}
	if state == nil {
		return nil, domain.ErrNotFound("game state", playerID.String())
	}
	state.Features, err = s.features.ListByPlayer(ctx, s.pool, playerID)
	if err != nil {
		return nil, domain.ErrInternal("load features", err)
	}
	return state, nil
}

// OwnedCreature is a collection entry joined with catalog data.
type OwnedCreature struct {
	ID        domain.CreatureID     `json:"id"`
	Name      string                `json:"name"`
	Rarity    domain.CreatureRarity `json:"rarity"`
	Count     int                   `json:"count"`
	FirstSeen time.Time             `json:"first_seen"`
}

// ListCreatures returns the player's collection, enriched from the catalog.
// Rows whose creature has left the catalog are kept with just the ID.
func (s *GamificationService) ListCreatures(ctx context.Context, playerID uuid.UUID) ([]OwnedCreature, error) {
	rows, err := s.creatures.ListByPlayer(ctx, s.pool, playerID)
	if err != nil {
		return nil, domain.ErrInternal("list creatures", err)
	}
	owned := make([]OwnedCreature, 0, len(rows))
	for _, row := range rows {
		entry := OwnedCreature{
			ID:        row.CreatureID,
			Count:     row.Count,
			FirstSeen: row.FirstSeen,
		}
		if def, ok := s.catalog[row.CreatureID]; ok {
			entry.Name = def.Name
			entry.Rarity = def.Rarity
		}
		owned = append(owned, entry)
	}
	return owned, nil
}

// ListRewards returns the player's recent reward rolls, newest first.
func (s *GamificationService) ListRewards(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RewardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	entries, err := s.rewards.ListByPlayer(ctx, s.pool, playerID, limit)
	if err != nil {
		return nil, domain.ErrInternal("list rewards", err)
	}
	return entries, nil
}

// Leaderboard returns the top players by XP.
func (s *GamificationService) Leaderboard(ctx context.Context, limit int) ([]domain.PlayerGameState, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	states, err := s.states.TopByXP(ctx, s.pool, limit)
	if err != nil {
		return nil, domain.ErrInternal("query leaderboard", err)
	}
	return states, nil
}

// Stats returns the aggregate dashboard numbers.
func (s *GamificationService) Stats(ctx context.Context) (*domain.GameStats, error) {
	stats, err := s.states.Stats(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("query stats", err)
	}
	return stats, nil
}

// GrantShields adds shields to a player's stock, clamped to the cap.
// Admin-only escape hatch for support cases.
func (s *GamificationService) GrantShields(ctx context.Context, playerID uuid.UUID, amount int) (*domain.PlayerGameState, error) {
	if amount <= 0 {
		return nil, domain.ErrValidation("shield amount must be positive")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	state, err := s.states.LockForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, domain.ErrInternal("lock game state", err)
	}
	if state == nil {
		return nil, domain.ErrNotFound("game state", playerID.String())
	}

	state.StreakShields += amount
	if state.StreakShields > domain.ShieldCap {
		state.StreakShields = domain.ShieldCap
	}
	if err := s.states.Update(ctx, tx, state); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return state, nil
}
