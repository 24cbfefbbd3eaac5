// controllers/webhook.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"confetti-orders/notify"
	"confetti-orders/payments"
	"confetti-orders/store"
)

// WebhookController handles inbound payment notifications
type WebhookController struct {
	Store    store.Store
	Notifier notify.Notifier
	Rules    payments.Rules
}

// NewWebhookController creates a new WebhookController
func NewWebhookController(orders store.Store, notifier notify.Notifier, rules payments.Rules) *WebhookController {
	return &WebhookController{
		Store:    orders,
		Notifier: notifier,
		Rules:    rules,
	}
}

// HandleAlchemy acks the webhook immediately, then matches payments in
// the background. The sender never sees a matching failure; those go to
// the log only.
func (wc *WebhookController) HandleAlchemy(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// Malformed or oversized bodies degrade to "no candidate transfers"
		payload = nil
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})

	go func() {
		if err := wc.Process(context.Background(), payload); err != nil {
			log.Printf("webhook error: %v", err)
		}
	}()
}

// Ping answers the existence check webhook providers send on registration
func (wc *WebhookController) Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

// Process extracts candidate transfers from a payload, settles matching
// orders, and dispatches fulfillment for each. Every settled order is
// persisted before its notification is attempted; a failed dispatch is
// logged and does not revert the order.
func (wc *WebhookController) Process(ctx context.Context, payload map[string]interface{}) error {
	transfers := payments.Extract(payload)
	if len(transfers) == 0 {
		return nil
	}

	orders, err := wc.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	for _, order := range payments.Match(transfers, orders, wc.Rules) {
		if err := wc.Store.Put(ctx, order); err != nil {
			return fmt.Errorf("save order %s: %w", order.ID, err)
		}
		if err := wc.Notifier.Notify(ctx, order); err != nil {
			log.Printf("openclaw dispatch failed for order %s: %v", order.ID, err)
			continue
		}
		log.Printf("PAID + openclaw triggered: %s %s", order.ID, order.Payment.TxHash)
	}
	return nil
}
