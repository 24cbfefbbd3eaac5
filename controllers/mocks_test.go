package controllers

import (
	"context"
	"sync"

	"confetti-orders/models"
)

// mockStore is an in-memory store.Store with injectable failures. It
// records the order of Put calls so tests can assert that persistence
// precedes notification.
type mockStore struct {
	mu      sync.Mutex
	orders  map[string]models.Order
	puts    []string
	loadErr error
	putErr  error
}

func newMockStore(orders ...models.Order) *mockStore {
	m := &mockStore{orders: map[string]models.Order{}}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *mockStore) Load(ctx context.Context) (map[string]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	orders := make(map[string]models.Order, len(m.orders))
	for id, o := range m.orders {
		orders[id] = o
	}
	return orders, nil
}

func (m *mockStore) Put(ctx context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.orders[order.ID] = order
	m.puts = append(m.puts, order.ID)
	return nil
}

func (m *mockStore) get(id string) (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	return o, ok
}

// mockEmailSender records confirmation sends. The send runs on a
// goroutine, so tests expecting one wait on the done channel.
type mockEmailSender struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newMockEmailSender() *mockEmailSender {
	return &mockEmailSender{done: make(chan struct{}, 1)}
}

func (m *mockEmailSender) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	m.mu.Lock()
	m.sent = append(m.sent, toEmail)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *mockEmailSender) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

// mockNotifier records dispatched orders and the store state observed at
// dispatch time.
type mockNotifier struct {
	mu       sync.Mutex
	notified []models.Order
	err      error
	onNotify func(models.Order)
}

func (m *mockNotifier) Notify(ctx context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.onNotify != nil {
		m.onNotify(order)
	}
	if m.err != nil {
		return m.err
	}
	m.notified = append(m.notified, order)
	return nil
}

func (m *mockNotifier) calls() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.notified...)
}
