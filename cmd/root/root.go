// Package root contains the root command for the application
package root

import (
	"tmarchand/bankbook/internal/config"
	"tmarchand/bankbook/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ImportFlags holds the flags shared by the preview and import commands.
type ImportFlags struct {
	Input           string
	Account         string
	StatementType   string
	DateFormat      string
	DateColumn      int
	ValueColumn     int
	StartingBalance string
	Currency        string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// DataDir is the directory holding accounts.yaml and balances.csv.
	DataDir string

	// SharedFlags are the statement-selection flags common to preview and import.
	SharedFlags = ImportFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bankbook",
		Short: "A personal-finance tracker with a bank-statement import engine.",
		Long: `bankbook tracks account balances over time. Its import engine ingests an
arbitrary bank CSV export, infers its structure, normalizes ambiguous dates
and currency amounts, deduplicates rows per calendar day, and reconstructs a
running balance history for transaction statements.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankbook!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			if cfg, err := config.InitializeConfig(); err == nil {
				Log = config.ConfigureLoggingFromConfig(cfg)
				if DataDir == "" {
					DataDir = cfg.Data.Directory
				}
			} else {
				Log = config.ConfigureLogging()
				Log.Warnf("Failed to load configuration: %v", err)
				if DataDir == "" {
					DataDir = "data"
				}
			}
			logging.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data-dir", "d", "", "Data directory (default from config)")

	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Account, "account", "a", "", "Target account id")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.StatementType, "type", "t", "", "Statement type: balance or transactions")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DateFormat, "date-format", "", "Date format policy: auto, mdy, dmy or ymd")
	Cmd.PersistentFlags().IntVar(&SharedFlags.DateColumn, "date-column", -1, "Override the detected date column (0-based)")
	Cmd.PersistentFlags().IntVar(&SharedFlags.ValueColumn, "value-column", -1, "Override the detected value column (0-based)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.StartingBalance, "starting-balance", "", "Starting balance (transactions mode)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Currency, "currency", "", "Currency code for preview display")
}
