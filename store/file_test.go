package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confetti-orders/models"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	s := tempStore(t)

	orders, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFileStorePutAndLoad(t *testing.T) {
	s := tempStore(t)
	order := models.NewOrder(19.99, "0xreceiver", models.Shipping{
		Name:     "Ada",
		Address1: "1 Main St",
		City:     "Springfield",
		State:    "IL",
		Zip:      "62701",
		Country:  "US",
	}, "extra sparkles")

	require.NoError(t, s.Put(context.Background(), order))

	orders, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order, orders[order.ID])
}

func TestFileStorePutPreservesOtherOrders(t *testing.T) {
	s := tempStore(t)
	first := models.NewOrder(19.99, "0xreceiver", models.Shipping{Name: "A", Address1: "1", City: "C", State: "S", Zip: "Z", Country: "US"}, "")
	second := models.NewOrder(19.99, "0xreceiver", models.Shipping{Name: "B", Address1: "2", City: "C", State: "S", Zip: "Z", Country: "US"}, "")

	require.NoError(t, s.Put(context.Background(), first))
	require.NoError(t, s.Put(context.Background(), second))

	orders, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestFileStoreUpdatesExistingOrder(t *testing.T) {
	s := tempStore(t)
	order := models.NewOrder(19.99, "0xreceiver", models.Shipping{Name: "A", Address1: "1", City: "C", State: "S", Zip: "Z", Country: "US"}, "")
	require.NoError(t, s.Put(context.Background(), order))

	order.Status = models.StatusPaid
	order.Payment = &models.Payment{Amount: 20, TxHash: "0xTX", ReceivedAt: order.CreatedAt}
	require.NoError(t, s.Put(context.Background(), order))

	orders, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusPaid, orders[order.ID].Status)
	require.NotNil(t, orders[order.ID].Payment)
	assert.Equal(t, "0xTX", orders[order.ID].Payment.TxHash)
}

func TestFileStoreWritesPrettyPrintedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	s := NewFileStore(path)
	order := models.NewOrder(19.99, "0xreceiver", models.Shipping{Name: "A", Address1: "1", City: "C", State: "S", Zip: "Z", Country: "US"}, "")
	require.NoError(t, s.Put(context.Background(), order))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "\n  \"")
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewFileStore(path)
	_, err := s.Load(context.Background())
	assert.Error(t, err)
}
