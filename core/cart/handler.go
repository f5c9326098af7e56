package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/irsalhamdi/harmoni-music/api/web"
	"github.com/irsalhamdi/harmoni-music/api/weberr"
	"github.com/irsalhamdi/harmoni-music/core/catalog"
	"github.com/irsalhamdi/harmoni-music/core/product"
	"github.com/irsalhamdi/harmoni-music/validate"
)

func requestError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return weberr.NotFound(err)
	case errors.Is(err, validate.ErrInvalid):
		return weberr.Invalid(err)
	}
	return err
}

func respond(ctx context.Context, w http.ResponseWriter, items []Item, status int) error {
	return web.Respond(ctx, w, New(items), status)
}

func HandleShow(carts *Engine, sess *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		owner, err := Owner(ctx, sess)
		if err != nil {
			return err
		}

		items, err := carts.Items(ctx, owner)
		if err != nil {
			return fmt.Errorf("fetching cart: %w", err)
		}

		return respond(ctx, w, items, http.StatusOK)
	}
}

func HandleDelete(carts *Engine, sess *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		owner, err := Owner(ctx, sess)
		if err != nil {
			return err
		}

		if err := carts.Clear(ctx, owner); err != nil {
			return fmt.Errorf("clearing cart: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

// HandleCreateItem snapshots the current catalog entry of the product.
func HandleCreateItem(carts *Engine, products *product.Store, sess *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Invalid(err)
		}

		p, err := products.Get(ctx, in.ProductID)
		if err != nil {
			return catalog.RequestError(err)
		}

		owner, err := Owner(ctx, sess)
		if err != nil {
			return err
		}

		items, err := carts.Add(ctx, owner, p)
		if err != nil {
			return fmt.Errorf("adding product[%d] to cart: %w", p.ID, err)
		}

		return respond(ctx, w, items, http.StatusOK)
	}
}

func HandleUpdateItem(carts *Engine, sess *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamInt(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var up ItemUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(up); err != nil {
			return weberr.Invalid(err)
		}

		owner, err := Owner(ctx, sess)
		if err != nil {
			return err
		}

		items, err := carts.UpdateQuantity(ctx, owner, id, *up.Delta)
		if err != nil {
			return requestError(fmt.Errorf("updating quantity of product[%d]: %w", id, err))
		}

		return respond(ctx, w, items, http.StatusOK)
	}
}

func HandleDeleteItem(carts *Engine, sess *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamInt(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		owner, err := Owner(ctx, sess)
		if err != nil {
			return err
		}

		items, err := carts.Remove(ctx, owner, id)
		if err != nil {
			return requestError(fmt.Errorf("removing product[%d]: %w", id, err))
		}

		return respond(ctx, w, items, http.StatusOK)
	}
}
