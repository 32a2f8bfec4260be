package config

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraise-ledger/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.NotNil(t, cfg.Log.NewLogger(io.Discard))
	assert.Equal(t, configs.StoreMemory, cfg.Store.DriverName())
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, int64(1), cfg.Chain.ChainID)
	assert.Equal(t, time.Hour, cfg.Chain.PriceMaxAge)
	assert.Equal(t, 2*time.Minute, cfg.Chain.ReceiptTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("STORE_DRIVER", " Postgres ")
	t.Setenv("PSQL_ADDRESS", "postgres://ledger:secret@db:5432/ledger?sslmode=disable")
	t.Setenv("CHAIN_RPC_URL", "wss://node.example:8546")
	t.Setenv("CHAIN_ID", "11155111")
	t.Setenv("CHAIN_CUSTODY_KEY", "0xabc")
	t.Setenv("CHAIN_PRICE_MAX_AGE", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.StorePostgres, cfg.Store.DriverName())
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, "wss", cfg.Chain.RPCURL.Scheme)
	assert.Equal(t, int64(11155111), cfg.Chain.ChainID)
	assert.Equal(t, "0xabc", cfg.Chain.CustodyKey)
	assert.Equal(t, 90*time.Second, cfg.Chain.PriceMaxAge)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("CHAIN_PRICE_MAX_AGE", "soon")
	_, err := Load()
	assert.Error(t, err)
}
