package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"

	"fundraise-ledger/internal/adapter/chain"
	"fundraise-ledger/internal/adapter/http"
	"fundraise-ledger/internal/adapter/memory"
	"fundraise-ledger/internal/adapter/postgres"
	"fundraise-ledger/internal/adapter/price"
	"fundraise-ledger/internal/adapter/usecase"
	"fundraise-ledger/internal/config"
	"fundraise-ledger/internal/config/configs"
	"fundraise-ledger/internal/core/port"
	"fundraise-ledger/internal/db"
	"fundraise-ledger/internal/metrics"
)

// main is the entry point of the fundraise ledger. It loads configuration,
// opens the ledger store, connects to the chain, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("ledger store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	client, err := ethclient.DialContext(ctx, cfg.Chain.RPCURL.String())
	if err != nil {
		logger.Error("chain connection error", slog.Any("error", err))
		return
	}
	defer client.Close()

	svc, err := newService(cfg.Chain, client, store, logger)
	if err != nil {
		logger.Error("chain setup error", slog.Any("error", err))
		return
	}

	if err = metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("metrics registration error", slog.Any("error", err))
		return
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore builds the configured ledger store and returns its cleanup.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.LedgerStore, func(), error) {
	switch cfg.Store.DriverName() {
	case configs.StoreMemory:
		logger.Warn("using the in-memory ledger store, state is lost on restart and requests are served one at a time")
		return memory.NewLedgerStore(), func() {}, nil
	case configs.StorePostgres:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully", slog.Uint64("from_version", uint64(from)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewLedgerStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// newService wires the chain adapters into the fundraise use case.
func newService(cfg configs.Chain, client *ethclient.Client, store port.LedgerStore, logger *slog.Logger) (*usecase.FundraiseUseCase, error) {
	if cfg.CustodyKey == "" {
		return nil, errors.New("CHAIN_CUSTODY_KEY is required")
	}
	for name, addr := range map[string]string{"CHAIN_PRICE_FEED": cfg.PriceFeed, "CHAIN_STABLE_TOKEN": cfg.StableToken} {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("%s: invalid address %q", name, addr)
		}
	}

	custody, err := chain.NewCustody(client, cfg.CustodyKey, cfg.ChainID, cfg.ReceiptTimeout)
	if err != nil {
		return nil, err
	}
	feed, err := chain.NewPriceFeed(client, common.HexToAddress(cfg.PriceFeed), cfg.PriceMaxAge)
	if err != nil {
		return nil, err
	}
	stable, err := chain.NewERC20(custody, common.HexToAddress(cfg.StableToken))
	if err != nil {
		return nil, err
	}
	logger.Info("custody account", slog.String("address", custody.Address().Hex()))

	return usecase.NewFundraiseUseCase(
		store,
		price.NewConverter(feed),
		stable,
		chain.NewNative(custody),
		custody.Address(),
		logger,
	), nil
}
