package bancogo

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// EntryKind tags a statement entry as a credit or a debit.
type EntryKind string

const (
	Deposit    EntryKind = "deposito"
	Withdrawal EntryKind = "saque"
)

// Entry is one movement in an account's log. Entries are append-only;
// insertion order is chronological order.
type Entry struct {
	ID     snowflake.ID    `json:"id"`
	Time   time.Time       `json:"data"`
	Kind   EntryKind       `json:"tipo"`
	Amount decimal.Decimal `json:"valor"`
}

// Signed returns the entry amount with its ledger sign: deposits positive,
// withdrawals negative.
func (e Entry) Signed() decimal.Decimal {
	if e.Kind == Withdrawal {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Customer is a registered bank customer. Customers are never mutated after
// registration and never deleted. Accounts reference them by CPF.
type Customer struct {
	Name      string `json:"nome"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"data_nascimento"`
	Address   string `json:"endereco"`
}

// Account is a checking account. Withdrawals holds the number of withdrawals
// performed on the current calendar day; Balance must equal the signed sum of
// Entries at all times.
type Account struct {
	Branch      string          `json:"agencia"`
	Number      int             `json:"numero_conta"`
	CPF         string          `json:"cpf"`
	Balance     decimal.Decimal `json:"saldo"`
	Entries     []Entry         `json:"extrato"`
	Withdrawals int             `json:"numero_saques"`
}

func (a Account) clone() Account {
	cp := a
	cp.Entries = make([]Entry, len(a.Entries))
	copy(cp.Entries, a.Entries)
	return cp
}

// Document is the unit of durable storage: the full customer and account
// collections, rewritten whole on every mutation.
type Document struct {
	Customers []Customer `json:"usuarios"`
	Accounts  []Account  `json:"contas"`
}

// Validate checks required fields on a loaded document so a malformed file
// fails at startup instead of surfacing as odd behavior later.
func (d *Document) Validate() error {
	for i, c := range d.Customers {
		if c.CPF == "" {
			return fmt.Errorf("usuarios[%d]: missing cpf", i)
		}
		if c.Name == "" {
			return fmt.Errorf("usuarios[%d]: missing nome", i)
		}
	}
	for i, a := range d.Accounts {
		if a.CPF == "" {
			return fmt.Errorf("contas[%d]: missing cpf", i)
		}
		if a.Number < 1 {
			return fmt.Errorf("contas[%d]: invalid numero_conta %d", i, a.Number)
		}
		if a.Balance.IsNegative() {
			return fmt.Errorf("contas[%d]: negative saldo %s", i, a.Balance)
		}
		for j, e := range a.Entries {
			if e.Kind != Deposit && e.Kind != Withdrawal {
				return fmt.Errorf("contas[%d].extrato[%d]: unknown tipo %q", i, j, e.Kind)
			}
		}
	}
	return nil
}
