package customers

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tellerhq/teller/internal/model"
	"github.com/tellerhq/teller/internal/store"
)

// Repository persists customers in a single customers.csv file. The whole
// file is held in memory and rewritten atomically on save, so a multi-customer
// update commits or fails as one unit. It assumes a single writer process; no
// cross-process locking is attempted.
type Repository struct {
	path      string
	customers []*model.Customer
	byID      map[int]*model.Customer
}

// Open loads customers.csv from path, creating an empty file with a header
// if it does not exist yet.
func Open(path string) (*Repository, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &store.StorageError{Op: "save", Path: path, Err: err}
		}
		if err := store.WriteAtomic(path, []byte(Header+"\n")); err != nil {
			return nil, &store.StorageError{Op: "save", Path: path, Err: err}
		}
		return newRepository(path, nil), nil
	}
	if err != nil {
		return nil, &store.StorageError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	customers, err := ReadCustomers(f)
	if err != nil {
		return nil, &store.StorageError{Op: "read", Path: path, Err: err}
	}
	return newRepository(path, customers), nil
}

func newRepository(path string, customers []*model.Customer) *Repository {
	byID := make(map[int]*model.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	return &Repository{path: path, customers: customers, byID: byID}
}

// FindAll returns all customers in file order.
func (r *Repository) FindAll() []*model.Customer {
	return r.customers
}

// FindByID returns a customer by id; ok is false when absent.
func (r *Repository) FindByID(id int) (*model.Customer, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Save persists one customer's current state. The mutation and its durable
// write form the durability boundary: once Save returns nil the new balance
// is on disk.
func (r *Repository) Save(c *model.Customer) error {
	return r.SaveAll(c)
}

// SaveAll persists any number of customers in one atomic file rewrite. A
// transfer uses this so that the debit and the credit commit together.
func (r *Repository) SaveAll(cs ...*model.Customer) error {
	for _, c := range cs {
		if _, ok := r.byID[c.ID]; !ok {
			r.customers = append(r.customers, c)
			r.byID[c.ID] = c
		}
	}
	return r.flush()
}

// Create assigns the next free id and persists a new customer.
func (r *Repository) Create(name string, initialBalance model.Money) (*model.Customer, error) {
	maxID := 0
	for _, c := range r.customers {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	c := model.NewCustomer(maxID+1, name, initialBalance)
	r.customers = append(r.customers, c)
	r.byID[c.ID] = c

	if err := r.flush(); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) flush() error {
	var buf bytes.Buffer
	if err := WriteCustomers(&buf, r.customers); err != nil {
		return &store.StorageError{Op: "save", Path: r.path, Err: err}
	}
	if err := store.WriteAtomic(r.path, buf.Bytes()); err != nil {
		return &store.StorageError{Op: "save", Path: r.path, Err: err}
	}
	return nil
}

// Path returns the backing file path.
func (r *Repository) Path() string {
	return r.path
}
