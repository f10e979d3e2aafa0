package repository

import (
	"context"
	"sync"

	Irepository "github.com/Kmkishore05/CarePulsebot/internal/domain/interfaces/repository"
)

// MemoryRepository is an in-process Repository implementation. Session
// history must not outlive the process, so there is no backing store; a
// mutex guards the maps because HTTP turns arrive concurrently.
type MemoryRepository[T any] struct {
	mu          sync.RWMutex
	collections map[string]map[string]T
}

func NewMemoryRepository[T any]() *MemoryRepository[T] {
	return &MemoryRepository[T]{collections: make(map[string]map[string]T)}
}

func (r *MemoryRepository[T]) Create(ctx context.Context, collectionName string, id string, entity T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection, ok := r.collections[collectionName]
	if !ok {
		collection = make(map[string]T)
		r.collections[collectionName] = collection
	}
	collection[id] = entity
	return entity, nil
}

func (r *MemoryRepository[T]) Update(ctx context.Context, collectionName string, id string, entity T) (T, error) {
	// Upsert, matching the behavior the history service relies on.
	return r.Create(ctx, collectionName, id, entity)
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, collectionName string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if collection, ok := r.collections[collectionName]; ok {
		delete(collection, id)
	}
	return nil
}

func (r *MemoryRepository[T]) FindByID(ctx context.Context, collectionName string, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	collection, ok := r.collections[collectionName]
	if !ok {
		return zero, Irepository.ErrNotFound
	}
	entity, ok := collection[id]
	if !ok {
		return zero, Irepository.ErrNotFound
	}
	return entity, nil
}

func (r *MemoryRepository[T]) FindAll(ctx context.Context, collectionName string) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collection := r.collections[collectionName]
	entities := make([]T, 0, len(collection))
	for _, entity := range collection {
		entities = append(entities, entity)
	}
	return entities, nil
}
