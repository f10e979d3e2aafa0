package Iservices

import (
	"context"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/entities"
)

// IHistoryService keeps the per-session, append-only chat history. List
// returns entries in reverse-chronological order; Clear is idempotent.
type IHistoryService interface {
	Append(ctx context.Context, sessionID string, entry entities.ChatEntry) error
	List(ctx context.Context, sessionID string) ([]entities.ChatEntry, error)
	Clear(ctx context.Context, sessionID string) error
}
