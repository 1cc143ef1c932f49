package handler

import (
	"net/http"
	"strconv"

	"github.com/focusquest/platform/internal/domain"
	"github.com/focusquest/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler serves the operations dashboard and support tooling.
type AdminHandler struct {
	game *service.GamificationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(game *service.GamificationService) *AdminHandler {
	return &AdminHandler{game: game}
}

// GetStats handles GET /admin/stats.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.game.Stats(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, stats)
}

// GetLeaderboard handles GET /admin/leaderboard.
func (h *AdminHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	states, err := h.game.Leaderboard(r.Context(), limit)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"players": states})
}

// GetPlayerState handles GET /admin/players/{playerID}/state.
func (h *AdminHandler) GetPlayerState(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid player id"))
		return
	}

	state, err := h.game.GetState(r.Context(), playerID)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, state)
}

type grantShieldsRequest struct {
	Amount int `json:"amount"`
}

// PostGrantShields handles POST /admin/players/{playerID}/shields.
func (h *AdminHandler) PostGrantShields(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid player id"))
		return
	}

	var req grantShieldsRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	state, err := h.game.GrantShields(r.Context(), playerID, req.Amount)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, state)
}
