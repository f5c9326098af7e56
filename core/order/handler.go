package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/irsalhamdi/harmoni-music/api/web"
	"github.com/irsalhamdi/harmoni-music/api/weberr"
	"github.com/irsalhamdi/harmoni-music/core/cart"
	"github.com/irsalhamdi/harmoni-music/core/catalog"
	"github.com/irsalhamdi/harmoni-music/core/claims"
	"github.com/irsalhamdi/harmoni-music/core/product"
	"github.com/irsalhamdi/harmoni-music/database"
	"github.com/irsalhamdi/harmoni-music/validate"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart  = errors.New("no items to checkout")
	ErrOutOfStock = errors.New("not enough stock")
	ErrGone       = errors.New("product is no longer sold")
)

type CheckoutConfig struct {
	Log      logrus.FieldLogger
	DB       *sqlx.DB
	Session  *scs.SessionManager
	Carts    *cart.Engine
	Products *product.Store

	// ClearCart takes the ordered items out of the cart once the order is
	// recorded.
	ClearCart bool
}

// checkStock verifies every cart line against the current catalog.
func checkStock(ctx context.Context, products *product.Store, items []cart.Item) error {
	for _, it := range items {
		p, err := products.Get(ctx, it.ID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrGone, it.Name)
			}
			return err
		}

		if it.Quantity > p.Stock {
			return fmt.Errorf("%w: %s has %d left", ErrOutOfStock, p.Name, p.Stock)
		}
	}
	return nil
}

func place(ctx context.Context, db *sqlx.DB, ord Order) error {
	err := database.Transaction(db, func(tx sqlx.ExtContext) error {
		if err := Create(ctx, tx, ord); err != nil {
			return err
		}

		for _, it := range ord.Items {
			if err := CreateItem(ctx, tx, it); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("recording order[%s] of owner[%s]: %w", ord.ID, ord.Owner, err)
	}
	return nil
}

// HandleCheckout turns the caller cart into a pending order priced with the
// cart totals. No payment is collected.
func HandleCheckout(cfg CheckoutConfig) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var on OrderNew
		if err := web.Decode(w, r, &on); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(on); err != nil {
			return weberr.Invalid(err)
		}

		owner, err := cart.Owner(ctx, cfg.Session)
		if err != nil {
			return err
		}

		items, err := cfg.Carts.Items(ctx, owner)
		if err != nil {
			return fmt.Errorf("fetching cart: %w", err)
		}

		if len(items) == 0 {
			return weberr.Unprocessable(ErrEmptyCart)
		}

		if err := checkStock(ctx, cfg.Products, items); err != nil {
			if errors.Is(err, ErrGone) || errors.Is(err, ErrOutOfStock) {
				return weberr.Unprocessable(err)
			}
			return fmt.Errorf("checking stock: %w", err)
		}

		tot := cart.ComputeTotals(items)
		ord := Order{
			ID:            validate.GenerateID(),
			Owner:         owner,
			Status:        Pending,
			Name:          on.name(),
			Email:         on.Email,
			Phone:         on.Phone,
			Address:       on.Address,
			City:          on.City,
			PostalCode:    on.PostalCode,
			PaymentMethod: on.paymentMethod(),
			Subtotal:      tot.Subtotal,
			Shipping:      tot.Shipping,
			Total:         tot.Total,
			CreatedAt:     time.Now().UTC(),
			Items:         make([]Item, 0, len(items)),
		}

		for i, it := range items {
			ord.Items = append(ord.Items, Item{
				OrderID:   ord.ID,
				ProductID: it.ID,
				Position:  i,
				Name:      it.Name,
				Price:     it.Price,
				Quantity:  it.Quantity,
			})
		}

		if err := place(ctx, cfg.DB, ord); err != nil {
			return err
		}

		if cfg.ClearCart {
			if _, err := cfg.Carts.Subtract(ctx, owner, items); err != nil {
				cfg.Log.WithError(err).WithFields(logrus.Fields{
					"order_id": ord.ID,
					"owner":    owner,
				}).Error("order placed but cart not cleared")
			}
		}

		return web.Respond(ctx, w, ord, http.StatusCreated)
	}
}

func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		ords, err := FetchByOwner(ctx, db, cart.UserOwner(clm.UserID))
		if err != nil {
			return fmt.Errorf("listing orders: %w", err)
		}

		return web.Respond(ctx, w, ords, http.StatusOK)
	}
}

// visible reports whether the caller may read ord: its owner or an admin.
func visible(ctx context.Context, ord Order) bool {
	if claims.IsAdmin(ctx) {
		return true
	}
	c := claims.Current(ctx)
	return c.Authenticated() && ord.Owner == cart.UserOwner(c.UserID)
}

func HandleShow(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.Invalid(err)
		}

		ord, err := Fetch(ctx, db, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching order: %w", err)
		}

		if !visible(ctx, ord) {
			return weberr.NotFound(fmt.Errorf("order[%s] belongs to another owner", id))
		}

		return web.Respond(ctx, w, ord, http.StatusOK)
	}
}
