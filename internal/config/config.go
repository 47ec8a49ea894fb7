package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level teller.yaml configuration. It is loaded
// once at startup and treated as read-only afterwards.
type Config struct {
	Currency        string       `yaml:"currency"`
	LogTransactions bool         `yaml:"log_transactions"`
	DataDir         string       `yaml:"data_dir"`
	Limits          LimitsConfig `yaml:"limits"`
}

// LimitsConfig holds the teller's policy values, all in cents.
type LimitsConfig struct {
	MinDepositCents    int64 `yaml:"min_deposit_cents"`
	MaxDepositCents    int64 `yaml:"max_deposit_cents"`
	MinWithdrawCents   int64 `yaml:"min_withdraw_cents"`
	MaxWithdrawCents   int64 `yaml:"max_withdraw_cents"`
	DailyWithdrawCents int64 `yaml:"daily_withdraw_limit_cents"`
	WithdrawalFeeCents int64 `yaml:"withdrawal_fee_cents"`
}

// Load reads a teller.yaml file from disk and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new teller data dir.
func Default() *Config {
	return &Config{
		Currency:        "EUR",
		LogTransactions: true,
		DataDir:         "data",
		Limits: LimitsConfig{
			MinDepositCents:    100,     // 1.00
			MaxDepositCents:    1000000, // 10,000.00
			MinWithdrawCents:   100,
			MaxWithdrawCents:   100000, // 1,000.00
			DailyWithdrawCents: 200000, // 2,000.00
			WithdrawalFeeCents: 50,
		},
	}
}

// Validate rejects policies that cannot be enforced consistently.
func (c *Config) Validate() error {
	l := c.Limits
	switch {
	case c.Currency == "":
		return fmt.Errorf("config: currency must not be empty")
	case l.MinDepositCents < 0 || l.MaxDepositCents < 0 ||
		l.MinWithdrawCents < 0 || l.MaxWithdrawCents < 0 ||
		l.DailyWithdrawCents < 0 || l.WithdrawalFeeCents < 0:
		return fmt.Errorf("config: limits must not be negative")
	case l.MinDepositCents > l.MaxDepositCents:
		return fmt.Errorf("config: min_deposit_cents %d exceeds max_deposit_cents %d",
			l.MinDepositCents, l.MaxDepositCents)
	case l.MinWithdrawCents > l.MaxWithdrawCents:
		return fmt.Errorf("config: min_withdraw_cents %d exceeds max_withdraw_cents %d",
			l.MinWithdrawCents, l.MaxWithdrawCents)
	case l.MaxWithdrawCents > l.DailyWithdrawCents:
		return fmt.Errorf("config: max_withdraw_cents %d exceeds daily_withdraw_limit_cents %d",
			l.MaxWithdrawCents, l.DailyWithdrawCents)
	}
	return nil
}

// applyEnv overrides file values from the environment. The variable names
// match the original .env convention for this data format.
func (c *Config) applyEnv() {
	c.Currency = getEnv("CURRENCY", c.Currency)
	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	c.LogTransactions = getEnvBool("LOG_TRANSACTIONS", c.LogTransactions)

	c.Limits.MinDepositCents = getEnvInt64("MIN_DEPOSIT_CENTS", c.Limits.MinDepositCents)
	c.Limits.MaxDepositCents = getEnvInt64("MAX_DEPOSIT_CENTS", c.Limits.MaxDepositCents)
	c.Limits.MinWithdrawCents = getEnvInt64("MIN_WITHDRAW_CENTS", c.Limits.MinWithdrawCents)
	c.Limits.MaxWithdrawCents = getEnvInt64("MAX_WITHDRAW_CENTS", c.Limits.MaxWithdrawCents)
	c.Limits.DailyWithdrawCents = getEnvInt64("DAILY_WITHDRAW_LIMIT_CENTS", c.Limits.DailyWithdrawCents)
	c.Limits.WithdrawalFeeCents = getEnvInt64("WITHDRAWAL_FEE_CENTS", c.Limits.WithdrawalFeeCents)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true") || v == "1"
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
