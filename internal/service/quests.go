package service

import (
	"context"
	"time"

	"github.com/focusquest/platform/internal/domain"
	"github.com/focusquest/platform/internal/engine"
	"github.com/focusquest/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestService manages each player's daily quest board. The board for a
// date is created lazily on first read; selection is deterministic per
// player and date, so concurrent first reads stamp the same set.
type QuestService struct {
	pool      *pgxpool.Pool
	templates []domain.QuestTemplate
	quests    repository.QuestRepository
	states    repository.GameStateRepository
	outbox    repository.OutboxRepository
	game      *GamificationService
}

// NewQuestService creates a QuestService.
func NewQuestService(
	pool *pgxpool.Pool,
	templates []domain.QuestTemplate,
	quests repository.QuestRepository,
	states repository.GameStateRepository,
	outbox repository.OutboxRepository,
	game *GamificationService,
) *QuestService {
	return &QuestService{
		pool:      pool,
		templates: templates,
		quests:    quests,
		states:    states,
		outbox:    outbox,
		game:      game,
	}
}

// DailyQuests returns the player's board for today, creating it on first
// access.
func (s *QuestService) DailyQuests(ctx context.Context, playerID uuid.UUID, now time.Time) ([]domain.DailyQuest, error) {
	date := engine.CivilDate(now)

	existing, err := s.quests.ListForDate(ctx, s.pool, playerID, date)
	if err != nil {
		return nil, domain.ErrInternal("list daily quests", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	state, err := s.states.FindByID(ctx, s.pool, playerID)
	if err != nil {
		return nil, domain.ErrInternal("find game state", err)
	}
	if state == nil {
		return nil, domain.ErrNotFound("game state", playerID.String())
	}

	selected := engine.SelectDailyQuests(s.templates, state.Level, date, playerID)
	quests := make([]domain.DailyQuest, len(selected))
	for i, tpl := range selected {
		quests[i] = domain.DailyQuest{
			ID:         uuid.New(),
			PlayerID:   playerID,
			TemplateID: tpl.ID,
			QuestDate:  date,
			Type:       tpl.Type,
			Title:      tpl.Title,
			Target:     tpl.Target,
			XPReward:   tpl.XPReward,
		}
	}
	if err := s.quests.CreateBatch(ctx, s.pool, quests); err != nil {
		return nil, domain.ErrInternal("create daily quests", err)
	}

	// Re-read so a concurrent creator's rows win over ours consistently.
	created, err := s.quests.ListForDate(ctx, s.pool, playerID, date)
	if err != nil {
		return nil, domain.ErrInternal("list daily quests", err)
	}
	return created, nil
}

// ProgressResult reports a progress update and, on completion, the XP
// outcome of the quest_complete event.
type ProgressResult struct {
	Quest   domain.DailyQuest `json:"quest"`
	Outcome *EventOutcome     `json:"outcome,omitempty"`
}

// RecordProgress advances a quest's counter. Progress never exceeds the
// target and a completed quest stays completed. The quest row is locked
// for the whole update, and crossing the target awards the quest's XP in
// the same transaction, so concurrent posts serialize: exactly one of
// them completes the quest and fires the quest_complete event, and the
// completion flag never commits without its XP.
func (s *QuestService) RecordProgress(ctx context.Context, playerID, questID uuid.UUID, increment int, now time.Time) (*ProgressResult, error) {
	if increment <= 0 {
		return nil, domain.ErrValidation("increment must be positive")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	quest, err := s.quests.LockForUpdate(ctx, tx, questID)
	if err != nil {
		return nil, domain.ErrInternal("lock quest", err)
	}
	if quest == nil || quest.PlayerID != playerID {
		return nil, domain.ErrNotFound("quest", questID.String())
	}
	if !quest.QuestDate.Equal(engine.CivilDate(now)) {
		return nil, domain.ErrValidation("quest is not on today's board")
	}
	if quest.Completed {
		return &ProgressResult{Quest: *quest}, nil
	}

	quest.Progress += increment
	if quest.Progress >= quest.Target {
		quest.Progress = quest.Target
		quest.Completed = true
	}
	if err := s.quests.UpdateProgress(ctx, tx, quest.ID, quest.Progress, quest.Completed); err != nil {
		return nil, err
	}

	result := &ProgressResult{Quest: *quest}
	if quest.Completed {
		outcome, err := s.game.processEventTx(ctx, tx, playerID, EventInput{
			Type:       domain.EventQuestComplete,
			XP:         quest.XPReward,
			OccurredAt: now,
		})
		if err != nil {
			return nil, err
		}
		result.Outcome = outcome

		draft := domain.NewQuestCompletedEvent(playerID, quest.ID, quest.TemplateID, quest.XPReward)
		if err := s.outbox.Insert(ctx, tx, draft); err != nil {
			return nil, domain.ErrInternal("queue outbox event", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return result, nil
}
