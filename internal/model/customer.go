package model

// Account holds a customer's current balance. It is a plain balance holder:
// limits, fees, and overdraft policy are enforced by the teller service, not
// here. A negative balance is representable.
type Account struct {
	balance Money
}

// NewAccount creates an account with an opening balance.
func NewAccount(balance Money) *Account {
	return &Account{balance: balance}
}

// Balance returns the current balance.
func (a *Account) Balance() Money {
	return a.balance
}

// Deposit increases the balance by amount.
func (a *Account) Deposit(amount Money) {
	a.balance = a.balance.Add(amount)
}

// Withdraw decreases the balance by amount.
func (a *Account) Withdraw(amount Money) {
	a.balance = a.balance.Sub(amount)
}

// Customer is an identified holder of exactly one account.
type Customer struct {
	ID      int
	Name    string
	Account *Account
}

// NewCustomer creates a customer with an opening balance.
func NewCustomer(id int, name string, balance Money) *Customer {
	return &Customer{ID: id, Name: name, Account: NewAccount(balance)}
}
