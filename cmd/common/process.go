// Package common provides the shared statement-processing flow used by the
// preview and import commands.
package common

import (
	"fmt"

	"tmarchand/bankbook/cmd/root"
	"tmarchand/bankbook/internal/config"
	"tmarchand/bankbook/internal/currencyutils"
	"tmarchand/bankbook/internal/dateutils"
	"tmarchand/bankbook/internal/fileutils"
	"tmarchand/bankbook/internal/models"
	"tmarchand/bankbook/internal/parsererror"
	"tmarchand/bankbook/internal/statement"
	"tmarchand/bankbook/internal/store"
)

// BuildOptions converts command flags plus config defaults into pipeline
// options. Flags win over config; config wins over built-in defaults.
func BuildOptions(flags root.ImportFlags) (statement.Options, error) {
	if flags.Account == "" {
		return statement.Options{}, fmt.Errorf("an account id is required (--account)")
	}

	opts := statement.DefaultOptions(flags.Account)
	opts.DateColumn = flags.DateColumn
	opts.ValueColumn = flags.ValueColumn
	opts.StartingBalance = flags.StartingBalance

	typeStr := flags.StatementType
	policyStr := flags.DateFormat
	if typeStr == "" || policyStr == "" {
		if cfg, err := config.InitializeConfig(); err == nil {
			if typeStr == "" {
				typeStr = cfg.Import.StatementType
			}
			if policyStr == "" {
				policyStr = cfg.Import.DateFormat
			}
		}
	}

	if typeStr != "" {
		st, err := models.ParseStatementType(typeStr)
		if err != nil {
			return statement.Options{}, &parsererror.ParseError{
				Stage: "flags", Field: "type", Value: typeStr, Err: err,
			}
		}
		opts.StatementType = st
	}
	if policyStr != "" {
		policy, err := dateutils.ParsePolicy(policyStr)
		if err != nil {
			return statement.Options{}, &parsererror.ParseError{
				Stage: "flags", Field: "date-format", Value: policyStr, Err: err,
			}
		}
		opts.DatePolicy = policy
	}
	// An absent starting balance is handled downstream (the pipeline withholds
	// entries); a present but unreadable one is a flag error.
	if flags.StartingBalance != "" {
		if _, ok := currencyutils.ParseSignedAmount(flags.StartingBalance); !ok {
			return statement.Options{}, &parsererror.ParseError{
				Stage: "flags", Field: "starting-balance", Value: flags.StartingBalance,
				Err: fmt.Errorf("not a recognized amount"),
			}
		}
	}

	return opts, nil
}

// ProcessFile reads the statement file, loads the account's existing balances
// for conflict detection, and runs the full pipeline.
func ProcessFile(s *store.Store, inputFile string, opts statement.Options) (*statement.Result, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("an input file is required (--input)")
	}

	if _, err := s.FindAccount(opts.AccountID); err != nil {
		return nil, err
	}

	text, err := fileutils.ReadTextFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("error reading statement file: %w", err)
	}

	existing, err := s.Balances(opts.AccountID)
	if err != nil {
		return nil, fmt.Errorf("error loading existing balances: %w", err)
	}

	return statement.Run(text, opts, existing)
}
