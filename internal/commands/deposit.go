package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/model"
)

func newDepositCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <customer-id> <amount>",
		Short: "Deposit an amount, e.g. teller deposit 1 10.50",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}
			amount, err := model.ParseMoney(args[1])
			if err != nil {
				return err
			}

			svc, _, err := buildTeller(cmd)
			if err != nil {
				return err
			}

			balance, err := svc.Deposit(customerID, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deposited %s. New balance: %s\n",
				svc.FormatMoney(amount), svc.FormatMoney(balance))
			return nil
		},
	}
}
