// Package blob keeps independently keyed JSON documents, such as the course
// list or a shopper's cart, in durable storage.
package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("blob not found")
	ErrCorrupt  = errors.New("blob corrupt")
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Load decodes the blob stored under key into dst.
func Load(ctx context.Context, s Store, key string, dst any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: key[%s]: %v", ErrCorrupt, key, err)
	}
	return nil
}

// Save encodes v and writes it under key, replacing any previous value.
func Save(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding key[%s]: %w", key, err)
	}
	return s.Put(ctx, key, data)
}
