package bancogo

import (
	"github.com/shopspring/decimal"
)

// Teller is the set of operations available on a logged-in account.
type Teller interface {
	Deposit(amount decimal.Decimal) (*decimal.Decimal, error)
	Withdraw(amount decimal.Decimal) (*decimal.Decimal, error)
	Statement() Statement
	Account() Account
}

// BeginLogin gathers the accounts owned by the identifier. The caller
// presents them to the user and completes the login with Select.
func BeginLogin(dir *Directory, cpf string) (*LoginPrompt, error) {
	accts := dir.AccountsFor(cpf)
	if len(accts) == 0 {
		return nil, ErrNoAccountsForCustomer{CPF: cpf}
	}
	return &LoginPrompt{
		dir:      dir,
		cpf:      cpf,
		accounts: accts,
	}, nil
}

// LoginPrompt is the half-open state between asking for an identifier and
// picking one of its accounts.
type LoginPrompt struct {
	dir      *Directory
	cpf      string
	accounts []Account
}

func (p *LoginPrompt) Accounts() []Account {
	return p.accounts
}

// Select completes the login with one of the presented account numbers.
func (p *LoginPrompt) Select(number int) (*Session, error) {
	for _, a := range p.accounts {
		if a.Number == number {
			return &Session{dir: p.dir, acct: a.clone()}, nil
		}
	}
	return nil, ErrAccountNotFound{Number: number}
}

// Session holds the working copy of one account while it is logged in. Every
// successful mutation is written through to the Directory before control
// returns; a failed rule leaves both the copy and the store untouched.
type Session struct {
	dir  *Directory
	acct Account
}

var (
	_ Teller = (*Session)(nil)
)

func (s *Session) Deposit(amount decimal.Decimal) (*decimal.Decimal, error) {
	work := s.acct.clone()
	if err := work.Deposit(amount); err != nil {
		return nil, err
	}
	if err := s.dir.ApplyUpdate(work); err != nil {
		return nil, err
	}
	s.acct = work
	return &s.acct.Balance, nil
}

func (s *Session) Withdraw(amount decimal.Decimal) (*decimal.Decimal, error) {
	work := s.acct.clone()
	if err := work.Withdraw(amount); err != nil {
		return nil, err
	}
	if err := s.dir.ApplyUpdate(work); err != nil {
		return nil, err
	}
	s.acct = work
	return &s.acct.Balance, nil
}

func (s *Session) Statement() Statement {
	return s.acct.Statement()
}

func (s *Session) Account() Account {
	return s.acct.clone()
}
