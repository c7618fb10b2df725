package bancogo

import (
	"iter"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Directory owns the canonical customer and account collections for the
// lifetime of the process. Every mutation writes the whole document back
// through the Store before returning.
type Directory struct {
	doc   *Document
	store Store
	log   *zerolog.Logger
}

func NewDirectory(store Store, log *zerolog.Logger) (*Directory, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Directory{
		doc:   doc,
		store: store,
		log:   log,
	}, nil
}

type RegisterCustomerReq struct {
	Name      string
	CPF       string
	BirthDate string
	Address   string
}

// FindCustomer looks a customer up by CPF.
func (d *Directory) FindCustomer(cpf string) (*Customer, error) {
	for _, c := range d.doc.Customers {
		if c.CPF == cpf {
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound{CPF: cpf}
}

func (d *Directory) RegisterCustomer(req RegisterCustomerReq) (*Customer, error) {
	if _, err := d.FindCustomer(req.CPF); err == nil {
		return nil, ErrDuplicateCustomer{CPF: req.CPF}
	}
	c := Customer{
		Name:      req.Name,
		CPF:       req.CPF,
		BirthDate: req.BirthDate,
		Address:   req.Address,
	}
	d.doc.Customers = append(d.doc.Customers, c)
	if err := d.persist(); err != nil {
		d.doc.Customers = d.doc.Customers[:len(d.doc.Customers)-1]
		return nil, err
	}
	d.log.Info().Str("cpf", c.CPF).Msg("customer registered")
	return &c, nil
}

// OpenAccount creates a zero-balance account for an existing customer.
// Numbers are assigned as count+1; the scheme would collide if accounts were
// ever deleted, but delete does not exist.
func (d *Directory) OpenAccount(cpf, branch string) (*Account, error) {
	if _, err := d.FindCustomer(cpf); err != nil {
		return nil, err
	}
	a := Account{
		Branch:  branch,
		Number:  len(d.doc.Accounts) + 1,
		CPF:     cpf,
		Balance: decimal.Zero,
	}
	d.doc.Accounts = append(d.doc.Accounts, a)
	if err := d.persist(); err != nil {
		d.doc.Accounts = d.doc.Accounts[:len(d.doc.Accounts)-1]
		return nil, err
	}
	d.log.Info().Str("cpf", cpf).Int("conta", a.Number).Msg("account opened")
	return &a, nil
}

// ListAccounts pairs each account with its owner, in storage order.
func (d *Directory) ListAccounts() iter.Seq2[Account, Customer] {
	return func(yield func(Account, Customer) bool) {
		for _, a := range d.doc.Accounts {
			var owner Customer
			if c, err := d.FindCustomer(a.CPF); err == nil {
				owner = *c
			}
			if !yield(a.clone(), owner) {
				return
			}
		}
	}
}

// AccountsFor returns copies of all accounts owned by the identifier.
func (d *Directory) AccountsFor(cpf string) []Account {
	var out []Account
	for _, a := range d.doc.Accounts {
		if a.CPF == cpf {
			out = append(out, a.clone())
		}
	}
	return out
}

// ApplyUpdate overwrites the stored record keyed by (branch, number) with the
// snapshot's balance, log, and withdrawal count, then persists. An unknown key
// is an error, not a silent no-op, so callers can detect a lost update.
func (d *Directory) ApplyUpdate(snap Account) error {
	for i := range d.doc.Accounts {
		if d.doc.Accounts[i].Branch != snap.Branch || d.doc.Accounts[i].Number != snap.Number {
			continue
		}
		prev := d.doc.Accounts[i]
		d.doc.Accounts[i].Balance = snap.Balance
		d.doc.Accounts[i].Entries = snap.Entries
		d.doc.Accounts[i].Withdrawals = snap.Withdrawals
		if err := d.persist(); err != nil {
			d.doc.Accounts[i] = prev
			return err
		}
		return nil
	}
	return ErrAccountNotFound{Branch: snap.Branch, Number: snap.Number}
}

func (d *Directory) persist() error {
	if err := d.store.Save(d.doc); err != nil {
		d.log.Err(err).Msg("error saving document")
		return err
	}
	return nil
}
