// Domain errors returned by the teller service. These are business-rule
// failures, not system errors; the CLI maps them to user-facing messages
// and keeps running.

package teller

import (
	"errors"
	"fmt"
)

var (
	// ErrDepositLimitExceeded means the amount is above the configured
	// maximum single deposit.
	ErrDepositLimitExceeded = errors.New("deposit exceeds the maximum allowed")

	// ErrDepositTooSmall means the amount is below the configured minimum
	// single deposit.
	ErrDepositTooSmall = errors.New("deposit is below the minimum allowed")

	// ErrWithdrawLimitExceeded means the amount is above the configured
	// maximum single withdrawal.
	ErrWithdrawLimitExceeded = errors.New("withdrawal exceeds the maximum allowed")

	// ErrDailyLimitExceeded means today's withdrawals plus this one would
	// pass the daily cap.
	ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")

	// ErrWithdrawTooSmall means the amount is below the configured minimum
	// single withdrawal.
	ErrWithdrawTooSmall = errors.New("withdrawal is below the minimum allowed")

	// ErrSelfTransfer means sender and receiver are the same customer.
	ErrSelfTransfer = errors.New("sender and receiver must differ")

	// ErrInsufficientFunds means the debit (amount plus fee) would overdraw
	// the account.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// CustomerNotFoundError reports an operation against an unknown customer id.
type CustomerNotFoundError struct {
	ID int
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %d not found", e.ID)
}
