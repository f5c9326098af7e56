package blob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/irsalhamdi/harmoni-music/database"
	"github.com/jmoiron/sqlx"
)

type DB struct {
	db sqlx.ExtContext
}

func NewDB(db sqlx.ExtContext) *DB {
	return &DB{db: db}
}

func (b *DB) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT data FROM blobs WHERE key = $1`

	var data []byte
	if err := database.GetContext(ctx, b.db, &data, q, key); err != nil {
		if errors.Is(err, database.ErrDBNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting key[%s]: %w", key, err)
	}
	return data, nil
}

func (b *DB) Put(ctx context.Context, key string, data []byte) error {
	const q = `
	INSERT INTO blobs (key, data, updated_at)
	VALUES (:key, :data, :updated_at)
	ON CONFLICT (key) DO UPDATE
	SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	row := struct {
		Key       string    `db:"key"`
		Data      []byte    `db:"data"`
		UpdatedAt time.Time `db:"updated_at"`
	}{key, data, time.Now().UTC()}

	if err := database.NamedExecContext(ctx, b.db, q, row); err != nil {
		return fmt.Errorf("upserting key[%s]: %w", key, err)
	}
	return nil
}
