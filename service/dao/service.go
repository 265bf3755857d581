// Package dao defines the generic storage contract shared by the engine's
// persistence layers, e.g. the term-result stores.
package dao

import (
	"context"
)

// Service abstracts CRUD access to entities of type T keyed by K.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
