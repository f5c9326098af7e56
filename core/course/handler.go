package course

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/irsalhamdi/harmoni-music/api/web"
	"github.com/irsalhamdi/harmoni-music/api/weberr"
	"github.com/irsalhamdi/harmoni-music/core/catalog"
	"github.com/irsalhamdi/harmoni-music/validate"
)

type Store = catalog.Store[Course]

func HandleList(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f := FilterFromQuery(r.URL.Query())
		return web.Respond(ctx, w, f.Apply(store.List(ctx)), http.StatusOK)
	}
}

func HandleShow(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamInt(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		c, err := store.Get(ctx, id)
		if err != nil {
			return catalog.RequestError(err)
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleCreate(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var cn CourseNew
		if err := web.Decode(w, r, &cn); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(cn); err != nil {
			return weberr.Invalid(err)
		}

		c, err := store.Add(ctx, cn.Course())
		if err != nil {
			return catalog.RequestError(fmt.Errorf("adding course: %w", err))
		}

		return web.Respond(ctx, w, c, http.StatusCreated)
	}
}

func HandleUpdate(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamInt(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var up CourseUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		c, err := store.Get(ctx, id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) && !store.Strict() {
				return web.Respond(ctx, w, nil, http.StatusNoContent)
			}
			return catalog.RequestError(err)
		}

		c = up.Apply(c)
		if err := store.Edit(ctx, c); err != nil {
			return catalog.RequestError(fmt.Errorf("editing course[%d]: %w", id, err))
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleDelete(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamInt(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		if err := store.Delete(ctx, id); err != nil {
			return catalog.RequestError(fmt.Errorf("deleting course[%d]: %w", id, err))
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
