package order

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/irsalhamdi/harmoni-music/blob"
	"github.com/irsalhamdi/harmoni-music/core/cart"
	"github.com/irsalhamdi/harmoni-music/core/catalog"
	"github.com/irsalhamdi/harmoni-music/core/claims"
	"github.com/irsalhamdi/harmoni-music/core/product"
	"github.com/irsalhamdi/harmoni-music/validate"
	"github.com/sirupsen/logrus"
)

func TestOrderNew(t *testing.T) {
	on := OrderNew{
		FirstName:  "Rina",
		LastName:   "Wijaya",
		Email:      "rina@example.com",
		Phone:      "081234567890",
		Address:    "Jl. Merdeka 1",
		City:       "Bandung",
		PostalCode: "40111",
	}
	if err := validate.Check(on); err != nil {
		t.Fatal(err)
	}
	if on.name() != "Rina Wijaya" {
		t.Fatalf("unexpected name %q", on.name())
	}
	if on.paymentMethod() != PaymentTransfer {
		t.Fatalf("expected transfer by default, got %q", on.paymentMethod())
	}

	on.PaymentMethod = "cash"
	if err := validate.Check(on); !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("expected an invalid payment method, got %v", err)
	}

	on.PaymentMethod = PaymentEwallet
	on.PostalCode = "4011"
	if err := validate.Check(on); !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("expected an invalid postal code, got %v", err)
	}
}

func TestCheckStock(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx := context.Background()
	products := catalog.New(ctx, catalog.Config[product.Product]{
		Log:      log,
		Blobs:    blob.NewMemory(),
		Key:      "products",
		Defaults: product.Defaults(),
		Strict:   true,
	})

	p, err := products.Get(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}

	line := func(p product.Product, qty int) []cart.Item {
		return []cart.Item{{Product: p, Quantity: qty}}
	}

	if err := checkStock(ctx, products, line(p, p.Stock)); err != nil {
		t.Fatalf("whole stock should be orderable: %v", err)
	}
	if err := checkStock(ctx, products, line(p, p.Stock+1)); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}

	gone := p
	gone.ID = 99
	if err := checkStock(ctx, products, line(gone, 1)); !errors.Is(err, ErrGone) {
		t.Fatalf("expected ErrGone, got %v", err)
	}
}

func TestVisible(t *testing.T) {
	ord := Order{ID: validate.GenerateID(), Owner: cart.UserOwner(4)}

	tests := map[string]struct {
		claims claims.Claims
		want   bool
	}{
		"owner":      {claims.Claims{UserID: 4, Role: claims.RoleMember}, true},
		"other user": {claims.Claims{UserID: 5, Role: claims.RoleMember}, false},
		"admin":      {claims.Claims{UserID: 1, Role: claims.RoleAdmin}, true},
		"guest":      {claims.Guest, false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := claims.Set(context.Background(), tc.claims)
			if got := visible(ctx, ord); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	guestOrder := Order{Owner: "guest:abc"}
	if visible(claims.Set(context.Background(), claims.Guest), guestOrder) {
		t.Fatal("guest orders are not readable by id")
	}
}
