package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/config"
	"github.com/tellerhq/teller/internal/customers"
	"github.com/tellerhq/teller/internal/id"
	"github.com/tellerhq/teller/internal/ledger"
	"github.com/tellerhq/teller/internal/teller"
)

const (
	customersFile    = "customers.csv"
	transactionsFile = "transactions.csv"
)

// buildTeller assembles the service from the config file referenced by the
// persistent --config flag.
func buildTeller(cmd *cobra.Command) (*teller.Service, *config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", cfgPath, err)
	}

	repo, err := customers.Open(filepath.Join(cfg.DataDir, customersFile))
	if err != nil {
		return nil, nil, err
	}
	led, err := ledger.Open(filepath.Join(cfg.DataDir, transactionsFile), cfg.LogTransactions)
	if err != nil {
		return nil, nil, err
	}

	svc := teller.NewService(repo, led, id.UUIDGenerator{}, cfg, newLogger(cmd))
	return svc, cfg, nil
}
