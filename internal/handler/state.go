package handler

import (
	"net/http"
	"strconv"

	"github.com/focusquest/platform/internal/service"
)

// StateHandler serves read-only views of a player's gamification state.
type StateHandler struct {
	game *service.GamificationService
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(game *service.GamificationService) *StateHandler {
	return &StateHandler{game: game}
}

// GetState handles GET /game/state.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	state, err := h.game.GetState(r.Context(), playerID)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, state)
}

// GetCreatures handles GET /game/creatures.
func (h *StateHandler) GetCreatures(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	creatures, err := h.game.ListCreatures(r.Context(), playerID)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"creatures": creatures})
}

// GetRewards handles GET /game/rewards.
func (h *StateHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rewards, err := h.game.ListRewards(r.Context(), playerID, limit)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"rewards": rewards})
}
