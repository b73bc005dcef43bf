// Package preview contains the preview command: a dry run of the import
// pipeline that prints the normalized candidate list without writing anything.
package preview

import (
	"fmt"

	"tmarchand/bankbook/cmd/common"
	"tmarchand/bankbook/cmd/root"
	"tmarchand/bankbook/internal/currencyutils"
	"tmarchand/bankbook/internal/store"

	"github.com/spf13/cobra"
)

// Cmd is the preview command
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a statement import without writing to the store.",
	Long: `Preview runs the full ingestion pipeline on a statement file and prints
the detected columns, the normalized entries, and the skip, duplicate and
conflict counts. Nothing is persisted.`,
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

		fmt.Printf("Detected columns: date=%d (%s), value=%d (%s)\n",
			result.Selection.Date, result.Labels[result.Selection.Date],
			result.Selection.Value, result.Labels[result.Selection.Value])

		for _, e := range result.Entries {
			fmt.Printf("  %s  %s\n", e.ISODate(), currencyutils.FormatAmount(e.Amount, root.SharedFlags.Currency))
		}

		fmt.Printf("%d entries, %d rows skipped, %d same-date duplicates, %d conflicts with existing balances\n",
			len(result.Entries), len(result.SkippedRows), result.DuplicateCount, result.ConflictCount)
		for _, rowNum := range result.SkippedRows {
			fmt.Printf("  skipped row %d\n", rowNum)
		}

		if !result.Ready() {
			return result.NotReady
		}
		return nil
	},
}
