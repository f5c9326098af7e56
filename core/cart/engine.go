package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/irsalhamdi/harmoni-music/blob"
	"github.com/irsalhamdi/harmoni-music/core/product"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound = errors.New("cart item not found")
	ErrStorage  = errors.New("cart storage failure")
)

// Engine keeps one cart per owner, each stored as its own blob. Any role,
// guests included, may use it.
type Engine struct {
	log    logrus.FieldLogger
	blobs  blob.Store
	strict bool

	mu sync.Mutex
}

// NewEngine builds an engine. With strict set, quantity updates and removals
// of products absent from the cart fail with ErrNotFound instead of being
// ignored.
func NewEngine(log logrus.FieldLogger, blobs blob.Store, strict bool) *Engine {
	return &Engine{log: log, blobs: blobs, strict: strict}
}

func key(owner string) string {
	return "cartItems:" + owner
}

// Items returns the owner's cart. A missing or unreadable cart is empty.
func (e *Engine) Items(ctx context.Context, owner string) ([]Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.load(ctx, owner)
}

// Add puts one unit of p in the cart. A product already present gets its
// quantity incremented; otherwise a snapshot of p is appended.
func (e *Engine) Add(ctx context.Context, owner string, p product.Product) ([]Item, error) {
	return e.mutate(ctx, owner, func(items []Item) ([]Item, error) {
		if i := index(items, p.ID); i >= 0 {
			items[i].Quantity++
			return items, nil
		}
		return append(items, Item{Product: p.Snapshot(), Quantity: 1}), nil
	})
}

// UpdateQuantity adds delta to the quantity of product id, never going below 1.
func (e *Engine) UpdateQuantity(ctx context.Context, owner string, id, delta int) ([]Item, error) {
	return e.mutate(ctx, owner, func(items []Item) ([]Item, error) {
		i := index(items, id)
		if i < 0 {
			return nil, e.missing(id)
		}
		items[i].Quantity = max(1, items[i].Quantity+delta)
		return items, nil
	})
}

func (e *Engine) Remove(ctx context.Context, owner string, id int) ([]Item, error) {
	return e.mutate(ctx, owner, func(items []Item) ([]Item, error) {
		i := index(items, id)
		if i < 0 {
			return nil, e.missing(id)
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

func (e *Engine) Clear(ctx context.Context, owner string) error {
	_, err := e.mutate(ctx, owner, func(items []Item) ([]Item, error) {
		return []Item{}, nil
	})
	return err
}

// Subtract takes the ordered quantities out of the cart. Lines left without
// units are dropped; anything added after ordered was read stays.
func (e *Engine) Subtract(ctx context.Context, owner string, ordered []Item) ([]Item, error) {
	return e.mutate(ctx, owner, func(items []Item) ([]Item, error) {
		taken := make(map[int]int, len(ordered))
		for _, it := range ordered {
			taken[it.ID] += it.Quantity
		}

		next := make([]Item, 0, len(items))
		for _, it := range items {
			it.Quantity -= taken[it.ID]
			if it.Quantity > 0 {
				next = append(next, it)
			}
		}
		return next, nil
	})
}

// mutate applies fn to a private copy of the cart and persists the result.
// fn returning nil items with a nil error leaves the cart untouched.
func (e *Engine) mutate(ctx context.Context, owner string, fn func([]Item) ([]Item, error)) ([]Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	items, err := e.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	next, err := fn(items)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return items, nil
	}

	if err := blob.Save(ctx, e.blobs, key(owner), next); err != nil {
		return nil, fmt.Errorf("%w: owner[%s]: %w", ErrStorage, owner, err)
	}
	return next, nil
}

func (e *Engine) load(ctx context.Context, owner string) ([]Item, error) {
	var items []Item
	err := blob.Load(ctx, e.blobs, key(owner), &items)
	switch {
	case err == nil:
	case errors.Is(err, blob.ErrNotFound):
	case errors.Is(err, blob.ErrCorrupt):
		e.log.WithError(err).WithField("owner", owner).Warn("discarding unreadable cart")
		items = nil
	default:
		return nil, fmt.Errorf("%w: owner[%s]: %w", ErrStorage, owner, err)
	}

	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// missing yields the error for an unknown product id: ErrNotFound when strict,
// otherwise nil so the caller leaves the cart as it is.
func (e *Engine) missing(id int) error {
	if e.strict {
		return fmt.Errorf("%w: product[%d]", ErrNotFound, id)
	}
	return nil
}

func index(items []Item, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
