package customers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tellerhq/teller/internal/model"
)

// Header is the CSV header for customers.csv.
const Header = "id,name,balance_cents"

const (
	numFields  = 3
	colID      = 0
	colName    = 1
	colBalance = 2
)

// ReadCustomers reads all customers from a customers.csv reader.
func ReadCustomers(r io.Reader) ([]*model.Customer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading customers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var customers []*model.Customer
	for i, rec := range records[1:] {
		c, err := UnmarshalCustomer(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// WriteCustomers writes customers to a customers.csv writer (including header).
func WriteCustomers(w io.Writer, customers []*model.Customer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name", "balance_cents"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range customers {
		if err := cw.Write(MarshalCustomer(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCustomer converts a Customer to a CSV row.
func MarshalCustomer(c *model.Customer) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(c.ID)
	row[colName] = c.Name
	row[colBalance] = strconv.FormatInt(c.Account.Balance().Cents(), 10)
	return row
}

// UnmarshalCustomer converts a CSV row to a Customer.
func UnmarshalCustomer(record []string) (*model.Customer, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	cents, err := strconv.ParseInt(record[colBalance], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing balance_cents %q: %w", record[colBalance], err)
	}

	return model.NewCustomer(id, record[colName], model.FromCents(cents)), nil
}
