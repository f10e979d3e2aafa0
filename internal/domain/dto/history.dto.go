package dto

import "github.com/Kmkishore05/CarePulsebot/internal/domain/entities"

// HistoryResponse lists a session's entries newest-first.
type HistoryResponse struct {
	SessionID string               `json:"session_id"`
	Entries   []entities.ChatEntry `json:"entries"`
}
