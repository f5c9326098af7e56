package order

import (
	"strings"
	"time"
)

type Status string

const Pending Status = "pending"

const (
	PaymentTransfer = "transfer"
	PaymentEwallet  = "ewallet"
	PaymentCard     = "card"
)

type Order struct {
	ID            string    `json:"id" db:"order_id"`
	Owner         string    `json:"-" db:"owner"`
	Status        Status    `json:"status" db:"status"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	Address       string    `json:"address" db:"address"`
	City          string    `json:"city" db:"city"`
	PostalCode    string    `json:"postalCode" db:"postal_code"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
	Subtotal      int       `json:"subtotal" db:"subtotal"`
	Shipping      int       `json:"shipping" db:"shipping"`
	Total         int       `json:"total" db:"total"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	Items         []Item    `json:"items" db:"-"`
}

type Item struct {
	OrderID   string `json:"-" db:"order_id"`
	ProductID int    `json:"productId" db:"product_id"`
	Position  int    `json:"-" db:"position"`
	Name      string `json:"name" db:"name"`
	Price     int    `json:"price" db:"price"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// OrderNew is the shipping and payment form filled in at checkout.
type OrderNew struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=8,max=20"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	PostalCode    string `json:"postalCode" validate:"required,numeric,len=5"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=transfer ewallet card"`
}

func (on OrderNew) name() string {
	return strings.TrimSpace(on.FirstName + " " + on.LastName)
}

func (on OrderNew) paymentMethod() string {
	if on.PaymentMethod == "" {
		return PaymentTransfer
	}
	return on.PaymentMethod
}
