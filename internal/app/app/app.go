package app

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"ledger/internal/app/config"
	"ledger/internal/app/logger"
	"ledger/internal/app/metrics"
	"ledger/internal/app/service/ledger"
	"ledger/internal/app/storage/postgres"
)

type App struct {
	config   config.Config
	logger   logger.Logger
	db       *sql.DB
	ledger   *ledger.Service
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	stopCh   chan struct{}
}

func New(cfg config.Config, logger logger.Logger, e embed.FS) (*App, error) {
	floor, err := cfg.Ledger.Floor()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := applyMigrations(e, db); err != nil {
		return nil, fmt.Errorf("db migrate: %w", err)
	}

	repos, err := newRepositories(db)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "ledger"),
	)
	m := metrics.New(registry)

	a := &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: registry,
		metrics:  m,
		ledger: ledger.New(postgres.NewTransactor(db), repos,
			ledger.WithFloor(floor),
			ledger.WithMetrics(m),
		),
		stopCh: make(chan struct{}),
	}

	go func() {
		<-a.stopCh
		a.logger.Info().Msg("Shutting down application")
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Database close failed")
		}
	}()

	return a, nil
}

func newRepositories(db *sql.DB) (ledger.Repositories, error) {
	users, err := postgres.NewUserRepository(db)
	if err != nil {
		return ledger.Repositories{}, fmt.Errorf("user repository init: %w", err)
	}

	balances, err := postgres.NewBalanceRepository()
	if err != nil {
		return ledger.Repositories{}, fmt.Errorf("balance repository init: %w", err)
	}

	transactions, err := postgres.NewTransactionRepository(db)
	if err != nil {
		return ledger.Repositories{}, fmt.Errorf("transaction repository init: %w", err)
	}

	resolutions, err := postgres.NewResolutionRepository(db)
	if err != nil {
		return ledger.Repositories{}, fmt.Errorf("resolution repository init: %w", err)
	}

	refunds, err := postgres.NewRefundRepository(db)
	if err != nil {
		return ledger.Repositories{}, fmt.Errorf("refund repository init: %w", err)
	}

	return ledger.Repositories{
		Users:        users,
		Balances:     balances,
		Transactions: transactions,
		Resolutions:  resolutions,
		Refunds:      refunds,
	}, nil
}

// Ping reports whether the database is reachable
func (a *App) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *App) Stop() {
	close(a.stopCh)
}
