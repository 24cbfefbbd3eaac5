// payments/match.go
package payments

import (
	"math"
	"strings"
	"time"

	"confetti-orders/models"
)

// tolerance absorbs floating-point rounding when comparing a transfer
// amount against the configured price.
const tolerance = 1e-9

// Rules holds the filter configuration a transfer must clear before it
// can settle an order.
type Rules struct {
	Receiver string  // expected recipient address
	Token    string  // expected token contract address
	Price    float64 // required minimum amount
}

// Qualifies reports whether a transfer passes every payment filter.
// Address comparisons are case-insensitive.
func (r Rules) Qualifies(t models.Transfer) bool {
	if t.To == "" || t.Token == "" {
		return false
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return false
	}
	if !strings.EqualFold(t.To, r.Receiver) {
		return false
	}
	if !strings.EqualFold(t.Token, r.Token) {
		return false
	}
	if t.Amount+tolerance < r.Price {
		return false
	}
	return true
}

// Match applies each qualifying transfer to the most recently created
// pending order, marking it PAID with the payment attached. The orders
// map is mutated in place, so the pending set shrinks as transfers in
// the same delivery settle orders. Settled orders are returned in
// processing order; persisting them is the caller's responsibility.
//
// Selection is by recency only. A transfer carries no order id or memo,
// so when several orders are pending the newest one wins regardless of
// any price difference above the minimum.
func Match(transfers []models.Transfer, orders map[string]models.Order, rules Rules) []models.Order {
	var settled []models.Order
	for _, t := range transfers {
		if !rules.Qualifies(t) {
			continue
		}

		id, ok := latestPending(orders)
		if !ok {
			continue
		}

		order := orders[id]
		order.Status = models.StatusPaid
		order.Payment = &models.Payment{
			Amount:     t.Amount,
			From:       t.From,
			To:         t.To,
			Token:      t.Token,
			TxHash:     t.TxHash,
			ReceivedAt: time.Now().UTC().Format(models.TimeLayout),
		}
		orders[id] = order
		settled = append(settled, order)
	}
	return settled
}

// latestPending returns the id of the awaiting-payment order with the
// lexicographically greatest creation timestamp, or false when no order
// is pending.
func latestPending(orders map[string]models.Order) (string, bool) {
	var id, latest string
	for oid, o := range orders {
		if o.Status != models.StatusAwaitingPayment {
			continue
		}
		if id == "" || o.CreatedAt > latest {
			id, latest = oid, o.CreatedAt
		}
	}
	return id, id != ""
}
