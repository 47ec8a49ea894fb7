package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/model"
)

func newTransferCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <sender-id> <receiver-id> <amount>",
		Short: "Transfer an amount between two customers",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			senderID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid sender id %q", args[0])
			}
			receiverID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid receiver id %q", args[1])
			}
			amount, err := model.ParseMoney(args[2])
			if err != nil {
				return err
			}

			svc, _, err := buildTeller(cmd)
			if err != nil {
				return err
			}

			balance, err := svc.Transfer(senderID, receiverID, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transferred %s from %d to %d. Sender balance: %s\n",
				svc.FormatMoney(amount), senderID, receiverID, svc.FormatMoney(balance))
			return nil
		},
	}
}
