package handler

import (
	"net/http"
	"time"

	"github.com/focusquest/platform/internal/domain"
	"github.com/focusquest/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// QuestHandler serves the daily quest board.
type QuestHandler struct {
	quests *service.QuestService
}

// NewQuestHandler creates a new QuestHandler.
func NewQuestHandler(quests *service.QuestService) *QuestHandler {
	return &QuestHandler{quests: quests}
}

// GetToday handles GET /quests/today.
func (h *QuestHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	quests, err := h.quests.DailyQuests(r.Context(), playerID, time.Now())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"quests": quests})
}

type progressRequest struct {
	Increment int `json:"increment"`
}

// PostProgress handles POST /quests/{questID}/progress.
func (h *QuestHandler) PostProgress(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	questID, err := uuid.Parse(chi.URLParam(r, "questID"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid quest id"))
		return
	}

	var req progressRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}
	if req.Increment == 0 {
		req.Increment = 1
	}

	result, err := h.quests.RecordProgress(r.Context(), playerID, questID, req.Increment, time.Now())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, result)
}
