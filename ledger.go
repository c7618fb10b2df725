package bancogo

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Withdrawal limits, fixed by the product.
var (
	MaxWithdrawalAmount = decimal.NewFromInt(500)
)

const MaxWithdrawalsPerDay = 3

var entryNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	entryNode = node
}

// Deposit credits amount to the account and appends a log entry. There is no
// upper bound on deposit size.
func (a *Account) Deposit(amount decimal.Decimal) error {
	return a.depositAt(time.Now(), amount)
}

func (a *Account) depositAt(now time.Time, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.Entries = append(a.Entries, Entry{
		ID:     entryNode.Generate(),
		Time:   now,
		Kind:   Deposit,
		Amount: amount,
	})
	return nil
}

// Withdraw debits amount from the account. Rules run in a fixed order and the
// first failing rule wins.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	return a.withdrawAt(time.Now(), amount)
}

func (a *Account) withdrawAt(now time.Time, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	if amount.GreaterThan(MaxWithdrawalAmount) {
		return ErrLimitExceeded{Limit: MaxWithdrawalAmount}
	}
	// The counter is per calendar day: the first withdrawal on a later day
	// than the last recorded one starts a fresh count.
	if last, ok := a.lastWithdrawal(); ok && !sameDay(last.Time, now) {
		a.Withdrawals = 0
	}
	if a.Withdrawals >= MaxWithdrawalsPerDay {
		return ErrWithdrawalCountExceeded{Max: MaxWithdrawalsPerDay}
	}
	a.Balance = a.Balance.Sub(amount)
	a.Withdrawals++
	a.Entries = append(a.Entries, Entry{
		ID:     entryNode.Generate(),
		Time:   now,
		Kind:   Withdrawal,
		Amount: amount,
	})
	return nil
}

func (a *Account) lastWithdrawal() (Entry, bool) {
	for i := len(a.Entries) - 1; i >= 0; i-- {
		if a.Entries[i].Kind == Withdrawal {
			return a.Entries[i], true
		}
	}
	return Entry{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Statement takes a read-only snapshot of the account's log and balance.
func (a *Account) Statement() Statement {
	entries := make([]Entry, len(a.Entries))
	copy(entries, a.Entries)
	return Statement{
		Branch:  a.Branch,
		Number:  a.Number,
		Balance: a.Balance,
		entries: entries,
	}
}
