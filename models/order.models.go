package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Order status values. An order moves AWAITING_PAYMENT -> PAID exactly
// once and is never deleted.
const (
	StatusAwaitingPayment = "AWAITING_PAYMENT"
	StatusPaid            = "PAID"
)

// TimeLayout is the persisted timestamp format. Timestamps in this form
// order lexicographically, which the payment matcher relies on.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Shipping represents the delivery details collected from the order form
type Shipping struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Address1 string `bson:"address1" json:"address1"`
	Address2 string `bson:"address2,omitempty" json:"address2,omitempty"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	Zip      string `bson:"zip" json:"zip"`
	Country  string `bson:"country" json:"country"`
}

// ErrMissingFields is returned when a submission lacks required shipping fields.
var ErrMissingFields = errors.New("missing required shipping fields")

// Validate checks that every required shipping field is present. Email
// and the second address line are optional.
func (s Shipping) Validate() error {
	if s.Name == "" || s.Address1 == "" || s.City == "" || s.State == "" || s.Zip == "" || s.Country == "" {
		return ErrMissingFields
	}
	return nil
}

// Order represents a shipping request awaiting or having received payment
type Order struct {
	ID        string   `bson:"_id" json:"id"`
	Status    string   `bson:"status" json:"status"`
	CreatedAt string   `bson:"createdAt" json:"createdAt"`
	Price     float64  `bson:"price" json:"price"`
	Receiver  string   `bson:"receiver" json:"receiver"`
	Shipping  Shipping `bson:"shipping" json:"shipping"`
	Note      string   `bson:"confetti_note" json:"confetti_note"`
	Payment   *Payment `bson:"payment" json:"payment"`
}

// NewOrder builds a pending order from validated shipping input.
func NewOrder(price float64, receiver string, shipping Shipping, note string) Order {
	return Order{
		ID:        uuid.NewString(),
		Status:    StatusAwaitingPayment,
		CreatedAt: time.Now().UTC().Format(TimeLayout),
		Price:     price,
		Receiver:  receiver,
		Shipping:  shipping,
		Note:      note,
	}
}
