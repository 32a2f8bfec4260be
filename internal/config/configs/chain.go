package configs

import (
	"net/url"
	"time"
)

// Chain configures the EVM network the ledger settles on. The custody key
// signs stable token pulls and payouts; it must hold gas for them.
type Chain struct {
	// RPCURL is a JSON-RPC endpoint (http, https, ws or wss).
	RPCURL url.URL `env:"RPC_URL" envDefault:"http://localhost:8545"`
	ChainID int64 `env:"ID" envDefault:"1"`

	// CustodyKey is the hex encoded secp256k1 private key of the custody
	// account.
	CustodyKey string `env:"CUSTODY_KEY,unset"`

	// PriceFeed is the Chainlink ETH/USD aggregator. The default is the
	// mainnet feed.
	PriceFeed string `env:"PRICE_FEED" envDefault:"0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"`
	// StableToken is the ERC20 stable token. The default is mainnet USDC.
	StableToken string `env:"STABLE_TOKEN" envDefault:"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"`

	// PriceMaxAge is the oldest feed update still treated as fresh.
	PriceMaxAge time.Duration `env:"PRICE_MAX_AGE" envDefault:"1h"`
	// ReceiptTimeout bounds the wait for a sent transaction to be mined. A
	// transaction still unmined after it is reported as pending, not failed.
	ReceiptTimeout time.Duration `env:"RECEIPT_TIMEOUT" envDefault:"2m"`
}
