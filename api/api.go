package api

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/irsalhamdi/harmoni-music/api/middleware"
	"github.com/irsalhamdi/harmoni-music/api/web"
	"github.com/irsalhamdi/harmoni-music/api/weberr"
	"github.com/irsalhamdi/harmoni-music/core/auth"
	"github.com/irsalhamdi/harmoni-music/core/cart"
	"github.com/irsalhamdi/harmoni-music/core/course"
	"github.com/irsalhamdi/harmoni-music/core/order"
	"github.com/irsalhamdi/harmoni-music/core/product"
	"github.com/irsalhamdi/harmoni-music/database"
	"github.com/irsalhamdi/harmoni-music/rate"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	DB         *sqlx.DB
	Session    *scs.SessionManager
	Tokens     *auth.Tokens
	Limiter    *rate.Limiter
	Courses    *course.Store
	Products   *product.Store
	Carts      *cart.Engine
	ClearCart  bool
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	a.mw = append(a.mw, auth.Identify(cfg.Tokens))

	authen := auth.Authenticate()
	admin := auth.Admin()

	a.Handle(http.MethodGet, "/health", handleHealth(cfg.DB))

	a.Handle(http.MethodPost, "/auth/register", auth.HandleRegister(cfg.DB))
	a.Handle(http.MethodPost, "/auth/login", auth.HandleLogin(cfg.DB, cfg.Tokens, cfg.Limiter))
	a.Handle(http.MethodGet, "/auth/me", auth.HandleProfile(cfg.DB), authen)

	a.Handle(http.MethodGet, "/courses/{id}", course.HandleShow(cfg.Courses))
	a.Handle(http.MethodGet, "/courses", course.HandleList(cfg.Courses))
	a.Handle(http.MethodPost, "/courses", course.HandleCreate(cfg.Courses), admin)
	a.Handle(http.MethodPut, "/courses/{id}", course.HandleUpdate(cfg.Courses), admin)
	a.Handle(http.MethodDelete, "/courses/{id}", course.HandleDelete(cfg.Courses), admin)

	a.Handle(http.MethodGet, "/products/{id}", product.HandleShow(cfg.Products))
	a.Handle(http.MethodGet, "/products", product.HandleList(cfg.Products))
	a.Handle(http.MethodPost, "/products", product.HandleCreate(cfg.Products), admin)
	a.Handle(http.MethodPut, "/products/{id}", product.HandleUpdate(cfg.Products), admin)
	a.Handle(http.MethodDelete, "/products/{id}", product.HandleDelete(cfg.Products), admin)

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.Carts, cfg.Session))
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(cfg.Carts, cfg.Session))
	a.Handle(http.MethodPost, "/cart/items", cart.HandleCreateItem(cfg.Carts, cfg.Products, cfg.Session))
	a.Handle(http.MethodPatch, "/cart/items/{id}", cart.HandleUpdateItem(cfg.Carts, cfg.Session))
	a.Handle(http.MethodDelete, "/cart/items/{id}", cart.HandleDeleteItem(cfg.Carts, cfg.Session))

	a.Handle(http.MethodPost, "/checkout", order.HandleCheckout(order.CheckoutConfig{
		Log:       cfg.Log,
		DB:        cfg.DB,
		Session:   cfg.Session,
		Carts:     cfg.Carts,
		Products:  cfg.Products,
		ClearCart: cfg.ClearCart,
	}))
	a.Handle(http.MethodGet, "/orders", order.HandleList(cfg.DB), authen)
	a.Handle(http.MethodGet, "/orders/{id}", order.HandleShow(cfg.DB), authen)

	return a.Router
}

func handleHealth(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()

		if err := database.StatusCheck(ctx, db); err != nil {
			return weberr.NewError(err, "database not ready", http.StatusServiceUnavailable)
		}

		return web.Respond(ctx, w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
