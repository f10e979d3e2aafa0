package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/entities"
	Irepository "github.com/Kmkishore05/CarePulsebot/internal/domain/interfaces/repository"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
)

// HistoryService keeps the per-session chat history behind the generic
// repository. Entries are append-only and never rewritten after creation.
type HistoryService struct {
	Repository Irepository.Repository[entities.ChatSession]
	Logger     *logger.Logger

	// mu serializes Append's load-modify-store pair. The repository guards
	// individual calls only, so without it concurrent turns on the same
	// session would overwrite each other's entries.
	mu sync.Mutex
}

func NewHistoryService(repository Irepository.Repository[entities.ChatSession], logger *logger.Logger) *HistoryService {
	return &HistoryService{Repository: repository, Logger: logger}
}

// Append records one completed turn under the session, creating the session
// on first use.
func (hs *HistoryService) Append(ctx context.Context, sessionID string, entry entities.ChatEntry) error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	session, err := hs.Repository.FindByID(ctx, Irepository.ChatSessionCollection, sessionID)
	if err != nil {
		if !errors.Is(err, Irepository.ErrNotFound) {
			hs.Logger.Error(fmt.Sprintf("Failed to load session '%s': %v", sessionID, err))
			return err
		}
		session = entities.ChatSession{SessionID: sessionID}
	}

	session.Entries = append(session.Entries, entry)
	session.UpdatedAt = time.Now()

	if _, err := hs.Repository.Update(ctx, Irepository.ChatSessionCollection, sessionID, session); err != nil {
		hs.Logger.Error(fmt.Sprintf("Failed to store session '%s': %v", sessionID, err))
		return err
	}
	return nil
}

// List returns the session's entries newest-first. An unknown session yields
// an empty list, not an error.
func (hs *HistoryService) List(ctx context.Context, sessionID string) ([]entities.ChatEntry, error) {
	session, err := hs.Repository.FindByID(ctx, Irepository.ChatSessionCollection, sessionID)
	if err != nil {
		if errors.Is(err, Irepository.ErrNotFound) {
			return []entities.ChatEntry{}, nil
		}
		return nil, err
	}

	reversed := make([]entities.ChatEntry, 0, len(session.Entries))
	for i := len(session.Entries) - 1; i >= 0; i-- {
		reversed = append(reversed, session.Entries[i])
	}
	return reversed, nil
}

// Clear drops the session's history. Clearing a session that does not exist
// is a no-op, so repeated clears stay idempotent.
func (hs *HistoryService) Clear(ctx context.Context, sessionID string) error {
	return hs.Repository.Delete(ctx, Irepository.ChatSessionCollection, sessionID)
}
