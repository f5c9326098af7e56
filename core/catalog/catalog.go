// Package catalog holds an ordered, durable collection of catalog entities
// (courses or products) and guards its mutations with the catalog policy.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/irsalhamdi/harmoni-music/blob"
	"github.com/irsalhamdi/harmoni-music/core/claims"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound  = errors.New("entity not found")
	ErrForbidden = errors.New("role is not allowed to change the catalog")
	ErrStorage   = errors.New("catalog storage failure")
)

type Entity[T any] interface {
	EntityID() int
	WithID(id int) T
	Validate() error
}

type Config[T any] struct {
	Log      logrus.FieldLogger
	Blobs    blob.Store
	Key      string
	Defaults []T

	// Strict makes Edit and Delete fail with ErrNotFound on unknown ids.
	// Otherwise they are no-ops.
	Strict bool
}

// Store is safe for concurrent use. Mutations are serialized and the last
// writer wins.
type Store[T Entity[T]] struct {
	log    logrus.FieldLogger
	blobs  blob.Store
	key    string
	strict bool

	mu    sync.RWMutex
	items []T

	// stale is set while items are defaults standing in for a stored
	// collection that could not be read.
	stale bool
}

// New loads the collection stored under cfg.Key. A missing or unreadable blob
// falls back to cfg.Defaults and never fails. Defaults replace the stored blob
// only when it is missing or corrupt: after a read failure they are served
// without being written, and the stored collection is read again before the
// next mutation.
func New[T Entity[T]](ctx context.Context, cfg Config[T]) *Store[T] {
	s := &Store[T]{
		log:    cfg.Log.WithField("collection", cfg.Key),
		blobs:  cfg.Blobs,
		key:    cfg.Key,
		strict: cfg.Strict,
	}

	var items []T
	err := blob.Load(ctx, cfg.Blobs, cfg.Key, &items)
	switch {
	case err == nil:
		s.items = items
		s.log.WithField("count", len(items)).Info("catalog loaded")
		return s

	case errors.Is(err, blob.ErrNotFound):
		s.log.Info("no stored catalog, using defaults")

	case errors.Is(err, blob.ErrCorrupt):
		s.log.WithError(err).Warn("stored catalog unusable, using defaults")

	default:
		s.log.WithError(err).Error("reading stored catalog, serving defaults until storage recovers")
		s.items = append([]T(nil), cfg.Defaults...)
		s.stale = true
		return s
	}

	s.items = append([]T(nil), cfg.Defaults...)
	if err := blob.Save(ctx, s.blobs, s.key, s.items); err != nil {
		s.log.WithError(err).Warn("persisting default catalog")
	}
	return s
}

// refresh rereads the stored collection when the current items are stale
// defaults. Callers hold s.mu.
func (s *Store[T]) refresh(ctx context.Context) error {
	if !s.stale {
		return nil
	}

	var items []T
	err := blob.Load(ctx, s.blobs, s.key, &items)
	switch {
	case err == nil:
		s.items = items
		s.log.WithField("count", len(items)).Info("stored catalog recovered")
	case errors.Is(err, blob.ErrNotFound), errors.Is(err, blob.ErrCorrupt):
		s.log.WithError(err).Warn("stored catalog unusable, keeping defaults")
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.stale = false
	return nil
}

func (s *Store[T]) Strict() bool { return s.strict }

// List returns a copy of the collection in insertion order.
func (s *Store[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Get(ctx context.Context, id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.items[i], nil
	}

	var zero T
	return zero, fmt.Errorf("%w: id[%d]", ErrNotFound, id)
}

// Add assigns the next id (highest id plus one, or 1) and appends item.
func (s *Store[T]) Add(ctx context.Context, item T) (T, error) {
	var zero T
	if err := authorize(ctx); err != nil {
		return zero, err
	}
	if err := item.Validate(); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return zero, err
	}

	item = item.WithID(nextID(s.items))

	next := make([]T, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, item)

	if err := s.commit(ctx, next); err != nil {
		return zero, err
	}
	return item, nil
}

// Edit replaces the stored entity carrying the same id, keeping its position.
func (s *Store[T]) Edit(ctx context.Context, item T) error {
	if err := authorize(ctx); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return err
	}

	i := s.index(item.EntityID())
	if i < 0 {
		return s.missing(item.EntityID())
	}

	next := append([]T(nil), s.items...)
	next[i] = item

	return s.commit(ctx, next)
}

func (s *Store[T]) Delete(ctx context.Context, id int) error {
	if err := authorize(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return err
	}

	i := s.index(id)
	if i < 0 {
		return s.missing(id)
	}

	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)

	return s.commit(ctx, next)
}

// commit persists next and only then makes it the current state.
func (s *Store[T]) commit(ctx context.Context, next []T) error {
	if err := blob.Save(ctx, s.blobs, s.key, next); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	s.items = next
	return nil
}

func (s *Store[T]) missing(id int) error {
	if !s.strict {
		s.log.WithField("id", id).Debug("ignoring mutation of unknown id")
		return nil
	}
	return fmt.Errorf("%w: id[%d]", ErrNotFound, id)
}

func (s *Store[T]) index(id int) int {
	for i, it := range s.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

func nextID[T Entity[T]](items []T) int {
	top := 0
	for _, it := range items {
		if id := it.EntityID(); id > top {
			top = id
		}
	}
	return top + 1
}

func authorize(ctx context.Context) error {
	c := claims.Current(ctx)
	if !claims.CanMutateCatalog(c.Role) {
		return fmt.Errorf("%w: role[%s]", ErrForbidden, c.Role)
	}
	return nil
}
