// Package repository is the persistence contract the core requires from
// a storage backend. Every operation is scoped to the owning artist; the
// core never issues an unscoped query.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the id does not exist or belongs to a
// different artist. Callers cannot tell the two apart.
var ErrNotFound = errors.New("not found")

// Repository is the per-entity storage contract. Create assigns the
// identifier and timestamps (and, for invoices, the next sequential
// number); Update and Delete report ErrNotFound for foreign or missing
// ids.
type Repository[E any] interface {
	List(ctx context.Context, artistID string) ([]E, error)
	Get(ctx context.Context, artistID, id string) (E, error)
	Create(ctx context.Context, artistID string, entity E) (E, error)
	Update(ctx context.Context, artistID, id string, entity E) (E, error)
	Delete(ctx context.Context, artistID, id string) error
}
