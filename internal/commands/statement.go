package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/statement"
)

func newStatementCommand() *cobra.Command {
	var n int
	var pdfPath string

	cmd := &cobra.Command{
		Use:   "statement <customer-id>",
		Short: "Show a customer's most recent transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}

			svc, cfg, err := buildTeller(cmd)
			if err != nil {
				return err
			}

			c, err := svc.GetCustomer(customerID)
			if err != nil {
				return err
			}
			txs, err := svc.Statement(customerID, n)
			if err != nil {
				return err
			}

			if pdfPath != "" {
				f, err := os.Create(pdfPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", pdfPath, err)
				}
				defer f.Close()
				if err := statement.WritePDF(f, c, txs, cfg.Currency); err != nil {
					return fmt.Errorf("writing PDF: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote statement to %s\n", pdfPath)
				return nil
			}

			return statement.WriteText(cmd.OutOrStdout(), c, txs, cfg.Currency)
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of transactions to show")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the statement to a PDF file instead of stdout")

	return cmd
}
