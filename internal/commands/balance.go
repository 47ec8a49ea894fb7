package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <customer-id>",
		Short: "Show a customer's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}

			svc, _, err := buildTeller(cmd)
			if err != nil {
				return err
			}

			c, err := svc.GetCustomer(customerID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Name, svc.FormatMoney(c.Account.Balance()))
			return nil
		},
	}
}
