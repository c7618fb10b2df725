package bancogo_test

import (
	"testing"

	"github.com/rodrigonunnes/bancogo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginLogin(t *testing.T) {
	t.Run("fails when the identifier owns no accounts", func(tt *testing.T) {
		as := assert.New(tt)
		dir, _ := newTestDirectory(tt)
		registerTestCustomer(tt, dir, "12345678900", "Maria da Silva")

		_, err := bancogo.BeginLogin(dir, "12345678900")
		var none bancogo.ErrNoAccountsForCustomer
		as.ErrorAs(err, &none)
		as.Equal("12345678900", none.CPF)
	})

	t.Run("selecting a number outside the presented set fails", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		dir, _ := newTestDirectory(tt)
		registerTestCustomer(tt, dir, "12345678900", "Maria da Silva")
		registerTestCustomer(tt, dir, "98765432100", "João Souza")
		_, err := dir.OpenAccount("12345678900", bancogo.DefaultBranch)
		reqrd.NoError(err)
		// account 2 belongs to the other customer
		_, err = dir.OpenAccount("98765432100", bancogo.DefaultBranch)
		reqrd.NoError(err)

		prompt, err := bancogo.BeginLogin(dir, "12345678900")
		reqrd.NoError(err)
		reqrd.Len(prompt.Accounts(), 1)

		var nf bancogo.ErrAccountNotFound
		_, err = prompt.Select(2)
		as.ErrorAs(err, &nf)
		_, err = prompt.Select(99)
		as.ErrorAs(err, &nf)

		sess, err := prompt.Select(1)
		reqrd.NoError(err)
		as.Equal(1, sess.Account().Number)
	})
}

func TestSessionWriteThrough(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	dir, store := newTestDirectory(t)
	registerTestCustomer(t, dir, "12345678900", "Maria da Silva")
	acct, err := dir.OpenAccount("12345678900", bancogo.DefaultBranch)
	reqrd.NoError(err)

	prompt, err := bancogo.BeginLogin(dir, "12345678900")
	reqrd.NoError(err)
	sess, err := prompt.Select(acct.Number)
	reqrd.NoError(err)

	bal, err := sess.Deposit(mustDec(t, "1000"))
	reqrd.NoError(err)
	as.True(bal.Equal(mustDec(t, "1000")))

	bal, err = sess.Withdraw(mustDec(t, "200"))
	reqrd.NoError(err)
	as.True(bal.Equal(mustDec(t, "800")))

	// every successful mutation is already durable
	log := zerolog.Nop()
	reloaded, err := bancogo.NewDirectory(store, &log)
	reqrd.NoError(err)
	accts := reloaded.AccountsFor("12345678900")
	reqrd.Len(accts, 1)
	as.True(accts[0].Balance.Equal(mustDec(t, "800")))
	as.Len(accts[0].Entries, 2)
	as.Equal(1, accts[0].Withdrawals)
}

func TestSessionFailedRuleDoesNotPersist(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	dir, store := newTestDirectory(t)
	registerTestCustomer(t, dir, "12345678900", "Maria da Silva")
	acct, err := dir.OpenAccount("12345678900", bancogo.DefaultBranch)
	reqrd.NoError(err)

	prompt, err := bancogo.BeginLogin(dir, "12345678900")
	reqrd.NoError(err)
	sess, err := prompt.Select(acct.Number)
	reqrd.NoError(err)

	_, err = sess.Deposit(mustDec(t, "100"))
	reqrd.NoError(err)

	_, err = sess.Withdraw(mustDec(t, "600"))
	as.ErrorIs(err, bancogo.ErrInsufficientFunds)
	as.True(sess.Account().Balance.Equal(mustDec(t, "100")))

	log := zerolog.Nop()
	reloaded, err := bancogo.NewDirectory(store, &log)
	reqrd.NoError(err)
	accts := reloaded.AccountsFor("12345678900")
	reqrd.Len(accts, 1)
	as.True(accts[0].Balance.Equal(mustDec(t, "100")))
	as.Len(accts[0].Entries, 1)
}

// TestAccountLifecycle walks the full scenario: open, deposit, hit each
// withdrawal rule in turn.
func TestAccountLifecycle(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	dir, _ := newTestDirectory(t)
	registerTestCustomer(t, dir, "12345678900", "Maria da Silva")

	acct, err := dir.OpenAccount("12345678900", bancogo.DefaultBranch)
	reqrd.NoError(err)
	as.Equal(1, acct.Number)
	as.True(acct.Balance.IsZero())

	prompt, err := bancogo.BeginLogin(dir, "12345678900")
	reqrd.NoError(err)
	sess, err := prompt.Select(1)
	reqrd.NoError(err)

	bal, err := sess.Deposit(mustDec(t, "100"))
	reqrd.NoError(err)
	as.True(bal.Equal(mustDec(t, "100")))
	as.Len(sess.Account().Entries, 1)

	// over the balance: insufficient funds, nothing changes
	_, err = sess.Withdraw(mustDec(t, "600"))
	as.ErrorIs(err, bancogo.ErrInsufficientFunds)
	as.True(sess.Account().Balance.Equal(mustDec(t, "100")))

	// top up, then the same amount trips the per-withdrawal limit instead
	_, err = sess.Deposit(mustDec(t, "900"))
	reqrd.NoError(err)
	var limit bancogo.ErrLimitExceeded
	_, err = sess.Withdraw(mustDec(t, "600"))
	as.ErrorAs(err, &limit)

	for i := 0; i < bancogo.MaxWithdrawalsPerDay; i++ {
		_, err = sess.Withdraw(mustDec(t, "50"))
		reqrd.NoError(err)
	}
	var count bancogo.ErrWithdrawalCountExceeded
	_, err = sess.Withdraw(mustDec(t, "50"))
	as.ErrorAs(err, &count)
	as.True(sess.Account().Balance.Equal(mustDec(t, "850")))
}

func TestLoggingMiddlewareIsTransparent(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	dir, _ := newTestDirectory(t)
	registerTestCustomer(t, dir, "12345678900", "Maria da Silva")
	_, err := dir.OpenAccount("12345678900", bancogo.DefaultBranch)
	reqrd.NoError(err)

	prompt, err := bancogo.BeginLogin(dir, "12345678900")
	reqrd.NoError(err)
	sess, err := prompt.Select(1)
	reqrd.NoError(err)

	log := zerolog.Nop()
	teller := bancogo.NewLoggingMiddleware(&log)(sess)

	bal, err := teller.Deposit(mustDec(t, "300"))
	reqrd.NoError(err)
	as.True(bal.Equal(mustDec(t, "300")))

	_, err = teller.Withdraw(mustDec(t, "600"))
	as.ErrorIs(err, bancogo.ErrInsufficientFunds)

	stmt := teller.Statement()
	as.True(stmt.Balance.Equal(mustDec(t, "300")))
	as.Equal(1, teller.Account().Number)
}
