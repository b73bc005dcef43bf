// Package importcmd contains the import command: it runs the ingestion
// pipeline and hands the final entries to the balance store.
package importcmd

import (
	"fmt"

	"tmarchand/bankbook/cmd/common"
	"tmarchand/bankbook/cmd/root"
	"tmarchand/bankbook/internal/parsererror"
	"tmarchand/bankbook/internal/store"

	"github.com/spf13/cobra"
)

var replace bool

// Cmd is the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a bank statement into the balance store.",
	Long: `Import runs the ingestion pipeline on a statement file and writes the
resulting balance history to the store. Existing same-date records are kept
unless --replace is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.New(root.DataDir)

		opts, err := common.BuildOptions(root.SharedFlags)
		if err != nil {
			return err
		}

		result, err := common.ProcessFile(s, root.SharedFlags.Input, opts)
		if err != nil {
			return err
		}

		if !result.Ready() {
			return result.NotReady
		}
		if len(result.Entries) == 0 {
			return fmt.Errorf("no importable entries in %s", root.SharedFlags.Input)
		}

		if result.ConflictCount > 0 && !replace {
			root.Log.Warnf("%d entries collide with existing balances and will be held back (use --replace to overwrite)",
				result.ConflictCount)
		}

		imported, err := s.ImportBalances(result.Entries, replace)
		if err != nil {
			return &parsererror.ImportError{AccountID: opts.AccountID, Err: err}
		}

		fmt.Printf("Imported %d entries (%d replaced, %d held back, %d rows skipped)\n",
			imported.Written, imported.Replaced, imported.HeldBack, len(result.SkippedRows))
		return nil
	},
}

// Init registers the import command flags.
func Init() {
	Cmd.Flags().BoolVar(&replace, "replace", false, "Replace existing same-date balances")
}
