package handlers

import (
	"fmt"
	"net/http"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/dto"
	Iservices "github.com/Kmkishore05/CarePulsebot/internal/domain/interfaces/services"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
)

type HistoryHandlers struct {
	Logger         *logger.Logger
	HistoryService Iservices.IHistoryService
}

func NewHistoryHandlers(logger *logger.Logger, historyService Iservices.IHistoryService) *HistoryHandlers {
	return &HistoryHandlers{Logger: logger, HistoryService: historyService}
}

// Get lists the session's entries newest-first.
func (hh *HistoryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	entries, err := hh.HistoryService.List(r.Context(), sessionID)
	if err != nil {
		hh.Logger.Error(fmt.Sprintf("Failed to list history for session %s: %s", sessionID, err.Error()))
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryResponse{SessionID: sessionID, Entries: entries})
}

// Clear drops the session's history. Clearing an already-empty session
// succeeds the same way.
func (hh *HistoryHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	if err := hh.HistoryService.Clear(r.Context(), sessionID); err != nil {
		hh.Logger.Error(fmt.Sprintf("Failed to clear history for session %s: %s", sessionID, err.Error()))
		http.Error(w, "Failed to clear history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": statusSuccess})
}
