// Package ledger is the append-only, chronologically ordered store of
// transaction records, persisted as one CSV file.
package ledger

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tellerhq/teller/internal/model"
	"github.com/tellerhq/teller/internal/store"
)

// ErrLoggingDisabled reports a historical query against a ledger that was
// configured with transaction logging off.
var ErrLoggingDisabled = errors.New("transaction logging is disabled")

// Store is the transaction ledger. Records are appended synchronously and
// never modified; ordering is insertion order. At this scale every query is
// a full scan of the file, which keeps the store trivially correct.
type Store struct {
	path       string
	logEnabled bool
}

// Open prepares a ledger at path, creating the file with a header if absent.
func Open(path string, logEnabled bool) (*Store, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &store.StorageError{Op: "append", Path: path, Err: err}
		}
		if err := os.WriteFile(path, []byte(Header+"\n"), 0o644); err != nil {
			return nil, &store.StorageError{Op: "append", Path: path, Err: err}
		}
	} else if err != nil {
		return nil, &store.StorageError{Op: "read", Path: path, Err: err}
	}
	return &Store{path: path, logEnabled: logEnabled}, nil
}

// LogEnabled reports whether appends are recorded.
func (s *Store) LogEnabled() bool {
	return s.logEnabled
}

// Append writes one record and syncs it to disk before returning, so a
// subsequent read in the same process observes it. When logging is disabled
// the record is dropped.
func (s *Store) Append(tx model.Transaction) error {
	if !s.logEnabled {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &store.StorageError{Op: "append", Path: s.path, Err: err}
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(MarshalTransaction(tx)); err != nil {
		return &store.StorageError{Op: "append", Path: s.path, Err: err}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &store.StorageError{Op: "append", Path: s.path, Err: err}
	}

	if err := f.Sync(); err != nil {
		return &store.StorageError{Op: "append", Path: s.path, Err: err}
	}
	return nil
}

// FindByCustomer returns all of a customer's transactions in ledger
// (chronological) order. Fails with ErrLoggingDisabled when logging is off.
func (s *Store) FindByCustomer(customerID int) ([]model.Transaction, error) {
	if !s.logEnabled {
		return nil, ErrLoggingDisabled
	}
	return s.scanCustomer(customerID)
}

// RecentN returns the customer's last n transactions, most recent first.
// n = 0 yields an empty slice; n beyond the available count yields all.
func (s *Store) RecentN(customerID, n int) ([]model.Transaction, error) {
	txs, err := s.FindByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		n = 0
	}
	if n > len(txs) {
		n = len(txs)
	}
	recent := make([]model.Transaction, 0, n)
	for i := len(txs) - 1; i >= len(txs)-n; i-- {
		recent = append(recent, txs[i])
	}
	return recent, nil
}

// SameDayWithdrawalTotal sums the cents of the customer's WITHDRAW records
// whose timestamp falls on the same local calendar date as day. The ledger
// is scanned even when logging is disabled, so limit enforcement still sees
// history written before logging was turned off.
func (s *Store) SameDayWithdrawalTotal(customerID int, day time.Time) (int64, error) {
	txs, err := s.scanCustomer(customerID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, tx := range txs {
		if tx.Type == model.TypeWithdraw && sameLocalDay(tx.At, day) {
			total += tx.Amount.Cents()
		}
	}
	return total, nil
}

func (s *Store) scanCustomer(customerID int) ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &store.StorageError{Op: "read", Path: s.path, Err: err}
	}
	defer f.Close()

	all, err := ReadTransactions(f)
	if err != nil {
		return nil, &store.StorageError{Op: "read", Path: s.path, Err: err}
	}

	var txs []model.Transaction
	for _, tx := range all {
		if tx.CustomerID == customerID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// sameLocalDay compares calendar dates in the process's local zone, matching
// how the daily withdrawal cap is defined.
func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
