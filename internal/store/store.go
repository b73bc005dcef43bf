// Package store provides the account directory and the persisted balance
// store. The ingestion engine is read-only up to the import handoff; this
// package owns all persistence.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"tmarchand/bankbook/internal/fileutils"
	"tmarchand/bankbook/internal/logging"
	"tmarchand/bankbook/internal/models"
)

const (
	accountsFile = "accounts.yaml"
	balancesFile = "balances.csv"
)

// Store persists accounts and balances under a data directory.
type Store struct {
	dataDir string
	log     logging.Logger
}

// New creates a store rooted at dataDir.
func New(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		log:     logging.GetLogger().WithField(logging.FieldFile, dataDir),
	}
}

// accountsConfig is the on-disk shape of the account directory.
type accountsConfig struct {
	Accounts []models.Account `yaml:"accounts"`
}

// LoadAccounts reads the account directory. A missing file yields an empty
// directory, not an error.
func (s *Store) LoadAccounts() ([]models.Account, error) {
	path := filepath.Join(s.dataDir, accountsFile)
	if !fileutils.FileExists(path) {
		s.log.Warn("Accounts file not found, directory is empty")
		return []models.Account{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading accounts file: %w", err)
	}

	var cfg accountsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing accounts file: %w", err)
	}

	s.log.Debug("Loaded accounts", logging.Field{Key: logging.FieldCount, Value: len(cfg.Accounts)})
	return cfg.Accounts, nil
}

// FindAccount returns the account with the given id.
func (s *Store) FindAccount(id string) (models.Account, error) {
	accounts, err := s.LoadAccounts()
	if err != nil {
		return models.Account{}, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Account{}, fmt.Errorf("unknown account: %s", id)
}

// loadBalances reads every persisted balance record. A missing file yields an
// empty store.
func (s *Store) loadBalances() ([]models.Balance, error) {
	path := filepath.Join(s.dataDir, balancesFile)
	if !fileutils.FileExists(path) {
		return []models.Balance{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading balances file: %w", err)
	}

	var balances []models.Balance
	if err := gocsv.UnmarshalBytes(data, &balances); err != nil {
		return nil, fmt.Errorf("error parsing balances file: %w", err)
	}
	return balances, nil
}

// Balances returns the persisted balances for one account, ordered by date.
func (s *Store) Balances(accountID string) ([]models.Balance, error) {
	all, err := s.loadBalances()
	if err != nil {
		return nil, err
	}

	var out []models.Balance
	for _, b := range all {
		if b.AccountID == accountID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// ImportResult summarizes one import operation.
type ImportResult struct {
	Written  int
	Replaced int
	// HeldBack counts incoming entries dropped because an existing record for
	// the same account and date won (replace flag not set).
	HeldBack int
}

// ImportBalances writes the ordered import entries into the store. When
// replace is set, incoming entries overwrite existing same-date records;
// otherwise existing records win and the incoming entry is held back. The
// balances file is rewritten whole on success.
func (s *Store) ImportBalances(entries []models.ImportEntry, replace bool) (ImportResult, error) {
	all, err := s.loadBalances()
	if err != nil {
		return ImportResult{}, err
	}

	index := make(map[string]int, len(all))
	for i, b := range all {
		index[b.AccountID+"\x00"+b.Date] = i
	}

	var result ImportResult
	for _, e := range entries {
		b := e.ToBalance()
		key := b.AccountID + "\x00" + b.Date
		if i, ok := index[key]; ok {
			if !replace {
				result.HeldBack++
				s.log.Debug("Existing balance kept",
					logging.Field{Key: logging.FieldAccount, Value: b.AccountID},
					logging.Field{Key: logging.FieldDate, Value: b.Date},
				)
				continue
			}
			all[i] = b
			result.Replaced++
			continue
		}
		index[key] = len(all)
		all = append(all, b)
		result.Written++
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].AccountID != all[j].AccountID {
			return all[i].AccountID < all[j].AccountID
		}
		return all[i].Date < all[j].Date
	})

	data, err := gocsv.MarshalString(&all)
	if err != nil {
		return ImportResult{}, fmt.Errorf("error marshaling balances: %w", err)
	}
	path := filepath.Join(s.dataDir, balancesFile)
	if err := fileutils.WriteFile(path, []byte(data), 0644); err != nil {
		return ImportResult{}, fmt.Errorf("error writing balances file: %w", err)
	}

	s.log.Info("Imported balances",
		logging.Field{Key: logging.FieldCount, Value: result.Written},
		logging.Field{Key: "replaced", Value: result.Replaced},
		logging.Field{Key: "held_back", Value: result.HeldBack},
	)
	return result, nil
}

// SaveAccounts writes the account directory back to disk.
func (s *Store) SaveAccounts(accounts []models.Account) error {
	data, err := yaml.Marshal(accountsConfig{Accounts: accounts})
	if err != nil {
		return fmt.Errorf("error marshaling accounts: %w", err)
	}
	path := filepath.Join(s.dataDir, accountsFile)
	if err := fileutils.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing accounts file: %w", err)
	}
	return nil
}
