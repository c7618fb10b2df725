package bancogo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rodrigonunnes/bancogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLoad(t *testing.T) {
	t.Run("absent file yields an empty document", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		store := bancogo.NewFileStore(filepath.Join(tt.TempDir(), "banco_dados.json"))

		doc, err := store.Load()
		reqrd.NoError(err)
		as.Empty(doc.Customers)
		as.Empty(doc.Accounts)
	})

	t.Run("corrupt content is an error", func(tt *testing.T) {
		reqrd := require.New(tt)
		path := filepath.Join(tt.TempDir(), "banco_dados.json")
		reqrd.NoError(os.WriteFile(path, []byte("{{{"), 0o644))

		_, err := bancogo.NewFileStore(path).Load()
		reqrd.Error(err)
	})

	t.Run("schema violations are an error", func(tt *testing.T) {
		reqrd := require.New(tt)
		path := filepath.Join(tt.TempDir(), "banco_dados.json")
		// account without a cpf
		raw := `{"usuarios": [], "contas": [{"agencia": "0001", "numero_conta": 1, "saldo": "0"}]}`
		reqrd.NoError(os.WriteFile(path, []byte(raw), 0o644))

		_, err := bancogo.NewFileStore(path).Load()
		reqrd.Error(err)
	})
}

func TestFileStoreRoundTrip(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	tmp := t.TempDir()
	pathA := filepath.Join(tmp, "a.json")
	pathB := filepath.Join(tmp, "b.json")

	acct := bancogo.Account{Branch: "0001", Number: 1, CPF: "12345678900"}
	reqrd.NoError(acct.Deposit(mustDec(t, "100.5")))
	reqrd.NoError(acct.Withdraw(mustDec(t, "25")))
	doc := &bancogo.Document{
		Customers: []bancogo.Customer{{
			Name:      "Maria da Silva",
			CPF:       "12345678900",
			BirthDate: "01/01/1990",
			Address:   "Rua das Flores, 10 - Centro - São Paulo/SP",
		}},
		Accounts: []bancogo.Account{acct},
	}

	reqrd.NoError(bancogo.NewFileStore(pathA).Save(doc))
	loaded, err := bancogo.NewFileStore(pathA).Load()
	reqrd.NoError(err)
	reqrd.NoError(bancogo.NewFileStore(pathB).Save(loaded))

	bitsA, err := os.ReadFile(pathA)
	reqrd.NoError(err)
	bitsB, err := os.ReadFile(pathB)
	reqrd.NoError(err)
	as.Equal(string(bitsA), string(bitsB))

	// atomic replace leaves no temp file behind
	_, err = os.Stat(pathA + ".tmp")
	as.True(os.IsNotExist(err))

	as.True(loaded.Accounts[0].Balance.Equal(mustDec(t, "75.5")))
	as.Len(loaded.Accounts[0].Entries, 2)
	as.Equal(1, loaded.Accounts[0].Withdrawals)
}
