package model

import "time"

// TransactionType classifies ledger records.
type TransactionType string

const (
	TypeDeposit  TransactionType = "DEPOSIT"
	TypeWithdraw TransactionType = "WITHDRAW"
)

// Transaction is one immutable row in the transaction ledger. Amount is the
// posted amount, including any fee actually debited. Records are appended
// once and never modified; ledger order is insertion order.
type Transaction struct {
	ID         string // opaque unique token
	CustomerID int
	Type       TransactionType
	Amount     Money
	At         time.Time
}
