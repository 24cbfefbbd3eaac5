// notify/openclaw.go
package notify

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"confetti-orders/models"
)

// Notifier dispatches a fulfillment message for a settled order.
type Notifier interface {
	Notify(ctx context.Context, order models.Order) error
}

// agentTimeout bounds a single agent invocation. There is no retry; a
// timed-out or failed invocation is logged by the caller and the order
// stays PAID.
const agentTimeout = 60 * time.Second

// OpenClaw invokes the external openclaw agent binary.
type OpenClaw struct {
	Bin string
}

// NewOpenClaw creates a notifier around the given agent executable.
func NewOpenClaw(bin string) *OpenClaw {
	return &OpenClaw{Bin: bin}
}

// Notify renders the fulfillment message and runs the agent with it.
func (c *OpenClaw) Notify(ctx context.Context, order models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, agentTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Bin, "agent", "--message", Message(order))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("openclaw agent: %s", msg)
		}
		return fmt.Errorf("openclaw agent: %w", err)
	}
	return nil
}

// Message renders the fixed-format fulfillment text for a settled
// order. The order must carry its payment record.
func Message(order models.Order) string {
	address := order.Shipping.Address1
	if order.Shipping.Address2 != "" {
		address += " " + order.Shipping.Address2
	}
	note := order.Note
	if note == "" {
		note = "(none)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CONFETTI ORDER PAID ✅\n")
	fmt.Fprintf(&b, "Order: %s\n", order.ID)
	fmt.Fprintf(&b, "Chain: Base\n")
	fmt.Fprintf(&b, "Amount: %s USDC\n", strconv.FormatFloat(order.Payment.Amount, 'f', -1, 64))
	fmt.Fprintf(&b, "Tx: %s\n\n", order.Payment.TxHash)
	fmt.Fprintf(&b, "Ship To:\n")
	fmt.Fprintf(&b, "%s\n", order.Shipping.Name)
	fmt.Fprintf(&b, "%s\n", address)
	fmt.Fprintf(&b, "%s, %s %s\n", order.Shipping.City, order.Shipping.State, order.Shipping.Zip)
	fmt.Fprintf(&b, "%s\n\n", order.Shipping.Country)
	fmt.Fprintf(&b, "Order notes: %s\n\n", note)
	b.WriteString("Please: (1) create packing slip/checklist (2) draft customer confirmation message (3) mark Ready to Ship.")
	return b.String()
}
