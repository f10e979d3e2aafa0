package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no entity exists under the given id.
var ErrNotFound = errors.New("entity not found")

const ChatSessionCollection = "chat_sessions"

type Repository[T any] interface {
	Create(ctx context.Context, collectionName string, id string, entity T) (T, error)
	Update(ctx context.Context, collectionName string, id string, entity T) (T, error)
	Delete(ctx context.Context, collectionName string, id string) error
	FindByID(ctx context.Context, collectionName string, id string) (T, error)
	FindAll(ctx context.Context, collectionName string) ([]T, error)
}
