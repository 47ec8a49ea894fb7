package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tellerhq/teller/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,customer_id,type,amount_cents,at_iso"

const (
	numFields   = 5
	colID       = 0
	colCustomer = 1
	colType     = 2
	colAmount   = 3
	colAt       = 4
)

// ReadTransactions reads all records from a transactions.csv reader, in
// file (chronological) order. Rows with an empty id are treated as corrupt
// or blank and silently dropped.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		if strings.TrimSpace(rec[colID]) == "" {
			continue
		}
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = tx.ID
	row[colCustomer] = strconv.Itoa(tx.CustomerID)
	row[colType] = string(tx.Type)
	row[colAmount] = strconv.FormatInt(tx.Amount.Cents(), 10)
	row[colAt] = tx.At.Format(time.RFC3339)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	customerID, err := strconv.Atoi(record[colCustomer])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing customer_id %q: %w", record[colCustomer], err)
	}

	cents, err := strconv.ParseInt(record[colAmount], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount_cents %q: %w", record[colAmount], err)
	}

	at, err := time.Parse(time.RFC3339, record[colAt])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing at_iso %q: %w", record[colAt], err)
	}

	return model.Transaction{
		ID:         record[colID],
		CustomerID: customerID,
		Type:       model.TransactionType(record[colType]),
		Amount:     model.FromCents(cents),
		At:         at,
	}, nil
}
