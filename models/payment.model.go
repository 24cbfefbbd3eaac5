package models

// Payment records the on-chain transfer that settled an order. It is
// attached exactly once and immutable afterwards; an order's payment is
// non-nil iff its status is PAID.
type Payment struct {
	Amount     float64 `bson:"amount" json:"amount"`
	From       string  `bson:"from" json:"from"`
	To         string  `bson:"to" json:"to"`
	Token      string  `bson:"token" json:"token"`
	TxHash     string  `bson:"txHash" json:"txHash"`
	ReceivedAt string  `bson:"receivedAt" json:"receivedAt"`
}
