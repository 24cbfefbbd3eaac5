package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENCLAW_BIN", "")
	t.Setenv("PRICE", "")
	t.Setenv("ORDERS_FILE", "")

	cfg := Load()
	assert.Equal(t, "8787", cfg.Port)
	assert.Equal(t, "openclaw", cfg.OpenClawBin)
	assert.Equal(t, 19.99, cfg.Price)
	assert.Equal(t, "orders.json", cfg.OrdersFile)
}

func TestLoadNormalizesAddresses(t *testing.T) {
	t.Setenv("RECEIVER", "0xAbCdEf")
	t.Setenv("USDC_CONTRACT_BASE", "0xUSDC")

	cfg := Load()
	assert.Equal(t, "0xabcdef", cfg.Receiver)
	assert.Equal(t, "0xusdc", cfg.TokenContract)
}

func TestLoadInvalidPriceFallsBack(t *testing.T) {
	t.Setenv("PRICE", "not-a-price")

	cfg := Load()
	assert.Equal(t, 19.99, cfg.Price)
}
