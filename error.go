package bancogo

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMalformedInput    = errors.New("malformed input")
)

type ErrLimitExceeded struct {
	Limit decimal.Decimal
}

func (e ErrLimitExceeded) Error() string {
	return fmt.Sprintf("amount exceeds the %s per-withdrawal limit", e.Limit.StringFixed(2))
}

type ErrWithdrawalCountExceeded struct {
	Max int
}

func (e ErrWithdrawalCountExceeded) Error() string {
	return fmt.Sprintf("daily withdrawal count limit of %d reached", e.Max)
}

type ErrDuplicateCustomer struct {
	CPF string
}

func (e ErrDuplicateCustomer) Error() string {
	return "a customer with this CPF already exists"
}

type ErrCustomerNotFound struct {
	CPF string
}

func (e ErrCustomerNotFound) Error() string {
	return "customer not found"
}

type ErrAccountNotFound struct {
	Branch string
	Number int
}

func (e ErrAccountNotFound) Error() string {
	return "account not found"
}

type ErrNoAccountsForCustomer struct {
	CPF string
}

func (e ErrNoAccountsForCustomer) Error() string {
	return "no accounts for this CPF"
}
