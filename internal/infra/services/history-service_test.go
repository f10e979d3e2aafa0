package services

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/entities"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory() *HistoryService {
	repo := repository.NewMemoryRepository[entities.ChatSession]()
	return NewHistoryService(repo, logger.NewLogger(context.Background(), "error", false))
}

func entry(id string) entities.ChatEntry {
	return entities.ChatEntry{
		ID:        id,
		Type:      entities.EntryQA,
		Input:     "question " + id,
		Response:  "answer " + id,
		Language:  "English",
		Timestamp: time.Now(),
	}
}

func TestHistoryListIsReverseChronological(t *testing.T) {
	svc := newTestHistory()
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, "s1", entry("a")))
	require.NoError(t, svc.Append(ctx, "s1", entry("b")))
	require.NoError(t, svc.Append(ctx, "s1", entry("c")))

	entries, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "a", entries[2].ID)
}

func TestHistorySessionsAreIsolated(t *testing.T) {
	svc := newTestHistory()
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, "s1", entry("a")))
	require.NoError(t, svc.Append(ctx, "s2", entry("b")))

	entries, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
}

func TestHistoryClearIsIdempotent(t *testing.T) {
	svc := newTestHistory()
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, "s1", entry("a")))

	require.NoError(t, svc.Clear(ctx, "s1"))
	entries, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing again must behave the same, with no error.
	require.NoError(t, svc.Clear(ctx, "s1"))
	entries, err = svc.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryConcurrentAppendsKeepEveryEntry(t *testing.T) {
	svc := newTestHistory()
	ctx := context.Background()

	const turns = 50
	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, turns)

	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = svc.Append(ctx, "s1", entry(strconv.Itoa(i)))
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "append %d", i)
	}

	entries, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, entries, turns)

	seen := make(map[string]bool, turns)
	for _, e := range entries {
		seen[e.ID] = true
	}
	assert.Len(t, seen, turns)
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	svc := newTestHistory()

	entries, err := svc.List(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
