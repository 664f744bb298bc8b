package config

import (
	"errors"
	"fmt"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"io/fs"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Ledger   LedgerConfig

	LogVerbose bool `env:"APP_VERBOSE,default=0"`
	LogPretty  bool `env:"APP_PRETTY,default=0"`
}

type ServerConfig struct {
	Listen       string        `env:"RUN_ADDRESS,default=localhost:8088"`
	TimeoutRead  time.Duration `env:"SERVER_TIMEOUT_READ,default=5s"`
	TimeoutWrite time.Duration `env:"SERVER_TIMEOUT_WRITE,default=10s"`
	TimeoutIdle  time.Duration `env:"SERVER_TIMEOUT_IDLE,default=1m"`

	// comma separated list
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS,default=*"`
}

type DatabaseConfig struct {
	DSN string `env:"DATABASE_URI,required"`
}

type LedgerConfig struct {
	// lowest balance a debit may leave behind
	BalanceFloor string `env:"BALANCE_FLOOR,default=0"`
}

// New config constructor
func New() Config {
	return Config{}
}

// Load config from environment and from .env file (if exists) and from flags
func (cfg *Config) Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(".env load: %w", err)
	}

	if err := envdecode.StrictDecode(cfg); err != nil {
		return fmt.Errorf("env decode: %w", err)
	}

	pflag.StringVarP(&cfg.Server.Listen, "listen-addr", "a", cfg.Server.Listen, "Server address to listen on")
	pflag.StringVarP(&cfg.Database.DSN, "database-uri", "d", cfg.Database.DSN, "Database URI")
	pflag.StringVarP(&cfg.Ledger.BalanceFloor, "balance-floor", "f", cfg.Ledger.BalanceFloor, "Lowest balance allowed after a debit")
	pflag.BoolVarP(&cfg.LogVerbose, "verbose", "v", cfg.LogVerbose, "Verbose output")
	pflag.BoolVarP(&cfg.LogPretty, "pretty", "p", cfg.LogPretty, "Pretty output")
	pflag.Parse()

	if _, err := cfg.Ledger.Floor(); err != nil {
		return err
	}

	return nil
}

// Floor parses BalanceFloor
func (c LedgerConfig) Floor() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.BalanceFloor)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance floor %q: %w", c.BalanceFloor, err)
	}
	return d, nil
}

// AllowedOrigins splits CORSAllowedOrigins
func (c ServerConfig) AllowedOrigins() []string {
	var res []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}
