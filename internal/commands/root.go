// Package commands wires the teller CLI: one file per subcommand, all
// registered on the root command.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Bank teller over a CSV-persisted ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional .env next to the working directory, matching the
			// original deployment convention.
			_ = godotenv.Load()
		},
	}

	rootCmd.PersistentFlags().String("config", "teller.yaml", "path to the teller config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newCustomersCommand(),
		newBalanceCommand(),
		newDepositCommand(),
		newWithdrawCommand(),
		newTransferCommand(),
		newStatementCommand(),
	)

	return rootCmd
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
