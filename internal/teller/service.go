// Package teller implements the application service that coordinates
// customer lookup, policy checks, balance mutation, and ledger logging.
// Each operation is single-shot: it runs to completion or fails
// synchronously, and the process is the only writer of its data files.
package teller

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tellerhq/teller/internal/config"
	"github.com/tellerhq/teller/internal/id"
	"github.com/tellerhq/teller/internal/model"
)

// CustomerRepository is the durability boundary for customer balances.
type CustomerRepository interface {
	FindAll() []*model.Customer
	FindByID(id int) (*model.Customer, bool)
	Save(c *model.Customer) error
	SaveAll(cs ...*model.Customer) error
	Create(name string, initialBalance model.Money) (*model.Customer, error)
}

// TransactionLedger is the append-only record store the teller posts to and
// queries for limit enforcement.
type TransactionLedger interface {
	Append(tx model.Transaction) error
	FindByCustomer(customerID int) ([]model.Transaction, error)
	RecentN(customerID, n int) ([]model.Transaction, error)
	SameDayWithdrawalTotal(customerID int, day time.Time) (int64, error)
	LogEnabled() bool
}

// Service is the teller. Policy values are read from an immutable Config
// resolved once at startup.
type Service struct {
	customers CustomerRepository
	ledger    TransactionLedger
	ids       id.Generator
	cfg       *config.Config
	log       zerolog.Logger
	now       func() time.Time
}

// NewService creates a teller Service.
func NewService(customers CustomerRepository, ledger TransactionLedger, ids id.Generator, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		customers: customers,
		ledger:    ledger,
		ids:       ids,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// ListCustomers returns all known customers.
func (s *Service) ListCustomers() []*model.Customer {
	return s.customers.FindAll()
}

// GetCustomer returns one customer by id.
func (s *Service) GetCustomer(customerID int) (*model.Customer, error) {
	c, ok := s.customers.FindByID(customerID)
	if !ok {
		return nil, &CustomerNotFoundError{ID: customerID}
	}
	return c, nil
}

// CreateCustomer registers a new customer with an opening balance.
func (s *Service) CreateCustomer(name string, initialBalance model.Money) (*model.Customer, error) {
	c, err := s.customers.Create(name, initialBalance)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("customer_id", c.ID).Str("name", c.Name).
		Int64("balance_cents", initialBalance.Cents()).Msg("customer created")
	return c, nil
}

// Deposit credits amount to the customer's account and posts a DEPOSIT
// record for the raw amount (no fee on deposits). Returns the new balance.
func (s *Service) Deposit(customerID int, amount model.Money) (model.Money, error) {
	c, err := s.GetCustomer(customerID)
	if err != nil {
		return model.Money{}, err
	}

	if amount.Cents() > s.cfg.Limits.MaxDepositCents {
		return model.Money{}, ErrDepositLimitExceeded
	}
	if amount.Cents() < s.cfg.Limits.MinDepositCents {
		return model.Money{}, ErrDepositTooSmall
	}

	c.Account.Deposit(amount)
	if err := s.customers.Save(c); err != nil {
		c.Account.Withdraw(amount) // roll back the in-memory mutation
		return model.Money{}, err
	}

	tx := s.newTransaction(customerID, model.TypeDeposit, amount)
	if err := s.ledger.Append(tx); err != nil {
		// Balance is already durable; surface the gap instead of hiding it.
		return model.Money{}, err
	}

	s.log.Info().Int("customer_id", customerID).Str("tx_id", tx.ID).
		Int64("amount_cents", amount.Cents()).Msg("deposit posted")
	return c.Account.Balance(), nil
}

// Withdraw debits amount plus the flat fee from the customer's account and
// posts a WITHDRAW record for the debited total. The balance mutation always
// happens; only the ledger append is subject to the logging flag. Returns
// the new balance.
func (s *Service) Withdraw(customerID int, amount model.Money) (model.Money, error) {
	c, err := s.GetCustomer(customerID)
	if err != nil {
		return model.Money{}, err
	}

	today, err := s.ledger.SameDayWithdrawalTotal(customerID, s.now())
	if err != nil {
		return model.Money{}, err
	}

	if amount.Cents() > s.cfg.Limits.MaxWithdrawCents {
		return model.Money{}, ErrWithdrawLimitExceeded
	}
	if today+amount.Cents() > s.cfg.Limits.DailyWithdrawCents {
		return model.Money{}, ErrDailyLimitExceeded
	}
	if amount.Cents() < s.cfg.Limits.MinWithdrawCents {
		return model.Money{}, ErrWithdrawTooSmall
	}

	debited := amount.Add(s.fee())
	if c.Account.Balance().LessThan(debited) {
		return model.Money{}, ErrInsufficientFunds
	}

	c.Account.Withdraw(debited)
	if err := s.customers.Save(c); err != nil {
		c.Account.Deposit(debited)
		return model.Money{}, err
	}

	tx := s.newTransaction(customerID, model.TypeWithdraw, debited)
	if err := s.ledger.Append(tx); err != nil {
		return model.Money{}, err
	}

	s.log.Info().Int("customer_id", customerID).Str("tx_id", tx.ID).
		Int64("amount_cents", debited.Cents()).Int64("fee_cents", s.fee().Cents()).
		Msg("withdrawal posted")
	return c.Account.Balance(), nil
}

// Transfer debits amount plus the flat fee from the sender and credits the
// raw amount to the receiver; the fee is retained by the system. Both
// balances are persisted in one atomic write, and the two ledger records
// share one transaction token. Returns the sender's new balance.
func (s *Service) Transfer(senderID, receiverID int, amount model.Money) (model.Money, error) {
	sender, err := s.GetCustomer(senderID)
	if err != nil {
		return model.Money{}, err
	}
	receiver, err := s.GetCustomer(receiverID)
	if err != nil {
		return model.Money{}, err
	}

	if senderID == receiverID {
		return model.Money{}, ErrSelfTransfer
	}

	debited := amount.Add(s.fee())
	if sender.Account.Balance().LessThan(debited) {
		return model.Money{}, ErrInsufficientFunds
	}

	sender.Account.Withdraw(debited)
	receiver.Account.Deposit(amount)
	if err := s.customers.SaveAll(sender, receiver); err != nil {
		sender.Account.Deposit(debited)
		receiver.Account.Withdraw(amount)
		return model.Money{}, err
	}

	// One token correlates the pair.
	token := s.ids.NewToken()
	at := s.now()
	out := model.Transaction{ID: token, CustomerID: senderID, Type: model.TypeWithdraw, Amount: debited, At: at}
	in := model.Transaction{ID: token, CustomerID: receiverID, Type: model.TypeDeposit, Amount: amount, At: at}
	if err := s.ledger.Append(out); err != nil {
		return model.Money{}, err
	}
	if err := s.ledger.Append(in); err != nil {
		return model.Money{}, err
	}

	s.log.Info().Int("sender_id", senderID).Int("receiver_id", receiverID).
		Str("tx_id", token).Int64("amount_cents", amount.Cents()).
		Int64("fee_cents", s.fee().Cents()).Msg("transfer posted")
	return sender.Account.Balance(), nil
}

// Statement returns the customer's last n transactions, most recent first.
func (s *Service) Statement(customerID, n int) ([]model.Transaction, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}
	return s.ledger.RecentN(customerID, n)
}

// FormatMoney renders an amount in the configured display currency.
func (s *Service) FormatMoney(m model.Money) string {
	return m.Format(s.cfg.Currency)
}

func (s *Service) fee() model.Money {
	return model.FromCents(s.cfg.Limits.WithdrawalFeeCents)
}

func (s *Service) newTransaction(customerID int, typ model.TransactionType, amount model.Money) model.Transaction {
	return model.Transaction{
		ID:         s.ids.NewToken(),
		CustomerID: customerID,
		Type:       typ,
		Amount:     amount,
		At:         s.now(),
	}
}
