package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/irsalhamdi/harmoni-music/database"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func Create(ctx context.Context, db sqlx.ExtContext, ord Order) error {
	const q = `
	INSERT INTO orders
		(order_id, owner, status, name, email, phone, address, city, postal_code,
		payment_method, subtotal, shipping, total, created_at)
	VALUES
		(:order_id, :owner, :status, :name, :email, :phone, :address, :city, :postal_code,
		:payment_method, :subtotal, :shipping, :total, :created_at)`

	if err := database.NamedExecContext(ctx, db, q, ord); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func CreateItem(ctx context.Context, db sqlx.ExtContext, it Item) error {
	const q = `
	INSERT INTO order_items
		(order_id, product_id, position, name, price, quantity)
	VALUES
		(:order_id, :product_id, :position, :name, :price, :quantity)`

	if err := database.NamedExecContext(ctx, db, q, it); err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}

	return nil
}

var ErrNotFound = errors.New("order not found")

func Fetch(ctx context.Context, db sqlx.ExtContext, id string) (Order, error) {
	const q = `
	SELECT
		*
	FROM
		orders
	WHERE
		order_id = $1`

	var ord Order
	if err := database.GetContext(ctx, db, &ord, q, id); err != nil {
		if errors.Is(err, database.ErrDBNotFound) {
			return Order{}, fmt.Errorf("order[%s]: %w", id, ErrNotFound)
		}
		return Order{}, fmt.Errorf("selecting order[%s]: %w", id, err)
	}

	items, err := fetchItems(ctx, db, []string{id})
	if err != nil {
		return Order{}, err
	}
	ord.Items = items[id]
	if ord.Items == nil {
		ord.Items = []Item{}
	}

	return ord, nil
}

// FetchByOwner returns the orders of owner, newest first, with their items.
func FetchByOwner(ctx context.Context, db sqlx.ExtContext, owner string) ([]Order, error) {
	const q = `
	SELECT
		*
	FROM
		orders
	WHERE
		owner = $1
	ORDER BY
		created_at DESC`

	var ords []Order
	if err := database.SelectContext(ctx, db, &ords, q, owner); err != nil {
		return nil, fmt.Errorf("selecting orders of owner[%s]: %w", owner, err)
	}
	if len(ords) == 0 {
		return []Order{}, nil
	}

	ids := make([]string, len(ords))
	for i, o := range ords {
		ids[i] = o.ID
	}

	items, err := fetchItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	for i := range ords {
		ords[i].Items = items[ords[i].ID]
		if ords[i].Items == nil {
			ords[i].Items = []Item{}
		}
	}

	return ords, nil
}

func fetchItems(ctx context.Context, db sqlx.ExtContext, orderIDs []string) (map[string][]Item, error) {
	const q = `
	SELECT
		*
	FROM
		order_items
	WHERE
		order_id = ANY($1::uuid[])
	ORDER BY
		position`

	var items []Item
	if err := database.SelectContext(ctx, db, &items, q, pq.Array(orderIDs)); err != nil {
		return nil, fmt.Errorf("selecting order items: %w", err)
	}

	byOrder := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}
