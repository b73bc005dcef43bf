// Package accounts contains the accounts command, listing the account
// directory.
package accounts

import (
	"fmt"

	"tmarchand/bankbook/cmd/root"
	"tmarchand/bankbook/internal/store"

	"github.com/spf13/cobra"
)

// Cmd is the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts in the directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.New(root.DataDir)

		accounts, err := s.LoadAccounts()
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			fmt.Println("No accounts configured. Add them to accounts.yaml in the data directory.")
			return nil
		}

		for _, a := range accounts {
			balances, err := s.Balances(a.ID)
			if err != nil {
				return err
			}
			latest := "no balances"
			if len(balances) > 0 {
				last := balances[len(balances)-1]
				latest = fmt.Sprintf("%s as of %s", last.Amount.StringFixed(2), last.Date)
			}
			fmt.Printf("%-12s %-24s %-11s %s\n", a.ID, a.Name, a.Type, latest)
		}
		return nil
	},
}
