package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/config"
	"github.com/tellerhq/teller/internal/customers"
	"github.com/tellerhq/teller/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a teller config and empty data files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "EUR", "display currency code")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency string) error {
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	cfg := config.Default()
	cfg.Currency = currency
	cfg.DataDir = dataDir
	if err := config.Save(filepath.Join(dir, "teller.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Creating the stores writes the CSV headers.
	if _, err := customers.Open(filepath.Join(dataDir, customersFile)); err != nil {
		return fmt.Errorf("creating customers file: %w", err)
	}
	if _, err := ledger.Open(filepath.Join(dataDir, transactionsFile), cfg.LogTransactions); err != nil {
		return fmt.Errorf("creating transactions file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized teller data dir at %s\n", dir)
	return nil
}
