package handler

import (
	"net/http"

	"github.com/focusquest/platform/internal/auth"
	"github.com/focusquest/platform/internal/domain"
	"github.com/focusquest/platform/internal/guard"
	"github.com/focusquest/platform/internal/infra"
	"github.com/focusquest/platform/internal/service"
	"github.com/google/uuid"
)

// EventsHandler accepts triggering events from the task manager frontend.
type EventsHandler struct {
	game    *service.GamificationService
	idem    *guard.IdempotencyGuard
	limiter *guard.RateLimiter
	metrics *infra.Metrics
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(
	game *service.GamificationService,
	idem *guard.IdempotencyGuard,
	limiter *guard.RateLimiter,
	metrics *infra.Metrics,
) *EventsHandler {
	return &EventsHandler{game: game, idem: idem, limiter: limiter, metrics: metrics}
}

// playerIDFromContext resolves the authenticated player from JWT claims.
func playerIDFromContext(r *http.Request) (uuid.UUID, error) {
	sub := auth.SubjectFromContext(r.Context())
	if sub == "" {
		return uuid.Nil, domain.ErrUnauthorized("no subject in context")
	}
	playerID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized("invalid subject")
	}
	return playerID, nil
}

// Post handles POST /game/events.
func (h *EventsHandler) Post(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	if res := h.limiter.Check(r.Context(), playerID.String()); !res.Allowed {
		RespondError(w, domain.ErrRateLimited(res.Reason))
		return
	}
	idemKey := r.Header.Get("Idempotency-Key")
	if res := h.idem.Check(r.Context(), idemKey); !res.Allowed {
		RespondError(w, domain.ErrConflict(res.Reason))
		return
	}

	var input service.EventInput
	if err := DecodeJSON(r, &input); err != nil {
		h.idem.Remove(idemKey)
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	outcome, err := h.game.ProcessEvent(r.Context(), playerID, input)
	if err != nil {
		h.idem.Remove(idemKey)
		RespondError(w, err)
		return
	}

	h.metrics.CountEvent(string(input.Type))
	if outcome.LeveledUp {
		h.metrics.CountLevelUp()
	}
	if outcome.Reward != nil {
		h.metrics.CountReward(string(outcome.Reward.Rarity))
	}
	if outcome.Creature != nil {
		h.metrics.CountCatch(string(outcome.Creature.ID))
	}

	RespondJSON(w, http.StatusOK, outcome)
}
