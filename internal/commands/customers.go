package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/model"
)

func newCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
	}

	cmd.AddCommand(newCustomersListCommand(), newCustomersCreateCommand())
	return cmd
}

func newCustomersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers with their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildTeller(cmd)
			if err != nil {
				return err
			}

			all := svc.ListCustomers()
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No customers yet. Create one with: teller customers create")
				return nil
			}
			for _, c := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "ID %d | %s | %s\n",
					c.ID, c.Name, svc.FormatMoney(c.Account.Balance()))
			}
			return nil
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var name string
	var balance string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new customer with an opening balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildTeller(cmd)
			if err != nil {
				return err
			}

			opening, err := model.ParseMoney(balance)
			if err != nil {
				return err
			}

			c, err := svc.CreateCustomer(name, opening)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created customer %d (%s) with balance %s\n",
				c.ID, c.Name, svc.FormatMoney(c.Account.Balance()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "customer display name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&balance, "balance", "0", "opening balance, e.g. 10.50")

	return cmd
}
