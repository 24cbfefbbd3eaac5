package models

// Transfer is a candidate token movement normalized from a webhook
// payload. Addresses are lowercased; Amount is NaN when the payload
// carried no usable numeric value.
type Transfer struct {
	To     string
	From   string
	Token  string
	Amount float64
	TxHash string
}
