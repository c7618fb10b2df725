package bancogo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const mainMenu = `
============ MENU PRINCIPAL ============
[1] Criar usuário
[2] Criar conta
[3] Listar contas
[4] Acessar conta
[q] Sair
========================================
`

const accountMenu = `
============ CONTA CORRENTE ============
[1] Depositar
[2] Sacar
[3] Extrato
[4] Exportar extrato (PDF)
[0] Voltar
========================================
`

// Console drives the interactive menus. Input and output are injected so the
// whole loop can be exercised against buffers.
type Console struct {
	dir *Directory
	in  *bufio.Reader
	out io.Writer
	log *zerolog.Logger

	branch string
	mw     []TellerMiddleware
	eof    bool
}

func NewConsole(dir *Directory, branch string, in io.Reader, out io.Writer, log *zerolog.Logger) *Console {
	return &Console{
		dir:    dir,
		in:     bufio.NewReader(in),
		out:    out,
		log:    log,
		branch: branch,
		mw:     []TellerMiddleware{NewLoggingMiddleware(log)},
	}
}

// Run loops over the main menu until the user quits or input ends.
func (c *Console) Run() {
	for !c.eof {
		fmt.Fprint(c.out, mainMenu)
		opt := strings.ToLower(c.readLine("Escolha uma opção: "))
		if opt == "" && c.eof {
			return
		}
		switch opt {
		case "1":
			c.registerCustomer()
		case "2":
			c.openAccount()
		case "3":
			c.listAccounts()
		case "4":
			c.login()
		case "q":
			fmt.Fprintln(c.out, "👋 Encerrando o sistema bancário. Até logo!")
			return
		default:
			fmt.Fprintln(c.out, "⚠️ Opção inválida.")
		}
	}
}

func (c *Console) registerCustomer() {
	cpf := c.readLine("Informe o CPF (somente números): ")
	if _, err := c.dir.FindCustomer(cpf); err == nil {
		fmt.Fprintln(c.out, "❌ Já existe um usuário com esse CPF!")
		return
	}
	req := RegisterCustomerReq{
		CPF:       cpf,
		Name:      c.readLine("Nome completo: "),
		BirthDate: c.readLine("Data de nascimento (dd/mm/aaaa): "),
		Address:   c.readLine("Endereço (logradouro, nº - bairro - cidade/sigla estado): "),
	}
	cust, err := c.dir.RegisterCustomer(req)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "✅ Usuário %s cadastrado com sucesso!\n", cust.Name)
}

func (c *Console) openAccount() {
	cpf := c.readLine("Informe o CPF do titular: ")
	acct, err := c.dir.OpenAccount(cpf, c.branch)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "✅ Conta criada! Agência: %s | Conta: %d\n", acct.Branch, acct.Number)
}

func (c *Console) listAccounts() {
	empty := true
	for acct, owner := range c.dir.ListAccounts() {
		empty = false
		fmt.Fprintf(c.out, "\nAgência: %s\nConta: %d\nTitular: %s\nSaldo: R$ %s\n-----------------------------\n",
			acct.Branch, acct.Number, owner.Name, acct.Balance.StringFixed(2))
	}
	if empty {
		fmt.Fprintln(c.out, "⚠️ Nenhuma conta cadastrada.")
	}
}

func (c *Console) login() {
	cpf := c.readLine("Informe seu CPF: ")
	prompt, err := BeginLogin(c.dir, cpf)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Contas disponíveis:")
	for _, a := range prompt.Accounts() {
		fmt.Fprintf(c.out, "Agência: %s | Conta: %d\n", a.Branch, a.Number)
	}
	number, err := c.readInt("Informe o número da conta que deseja acessar: ")
	if err != nil {
		fmt.Fprintln(c.out, "⚠️ Número de conta inválido.")
		return
	}
	sess, err := prompt.Select(number)
	if err != nil {
		c.report(err)
		return
	}
	if owner, err := c.dir.FindCustomer(cpf); err == nil {
		fmt.Fprintf(c.out, "✅ Login bem-sucedido! Bem-vindo, %s!\n", owner.Name)
	}

	var teller Teller = sess
	for _, mw := range c.mw {
		teller = mw(teller)
	}
	c.accountLoop(teller)
}

func (c *Console) accountLoop(t Teller) {
	for !c.eof {
		fmt.Fprint(c.out, accountMenu)
		switch c.readLine("Escolha uma operação: ") {
		case "1":
			amount, err := c.readAmount("Valor do depósito: ")
			if err != nil {
				fmt.Fprintln(c.out, "⚠️ Valor inválido.")
				continue
			}
			if _, err = t.Deposit(amount); err != nil {
				c.report(err)
				continue
			}
			fmt.Fprintf(c.out, "✅ Depósito de R$ %s realizado com sucesso!\n", amount.StringFixed(2))
		case "2":
			amount, err := c.readAmount("Valor do saque: ")
			if err != nil {
				fmt.Fprintln(c.out, "⚠️ Valor inválido.")
				continue
			}
			if _, err = t.Withdraw(amount); err != nil {
				c.report(err)
				continue
			}
			fmt.Fprintf(c.out, "✅ Saque de R$ %s realizado com sucesso!\n", amount.StringFixed(2))
		case "3":
			t.Statement().WriteText(c.out)
		case "4":
			c.exportPDF(t)
		case "0":
			fmt.Fprintln(c.out, "👋 Retornando ao menu principal...")
			return
		default:
			fmt.Fprintln(c.out, "⚠️ Opção inválida.")
		}
	}
}

func (c *Console) exportPDF(t Teller) {
	name := fmt.Sprintf("extrato_%d.pdf", t.Account().Number)
	f, err := os.Create(name)
	if err != nil {
		c.log.Err(err).Str("arquivo", name).Msg("error creating statement file")
		fmt.Fprintln(c.out, "❌ Não foi possível gerar o arquivo do extrato.")
		return
	}
	defer f.Close()
	if err = t.Statement().WritePDF(f); err != nil {
		c.log.Err(err).Str("arquivo", name).Msg("error writing statement PDF")
		fmt.Fprintln(c.out, "❌ Não foi possível gerar o arquivo do extrato.")
		return
	}
	fmt.Fprintf(c.out, "✅ Extrato exportado para %s\n", name)
}

func (c *Console) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	s, err := c.in.ReadString('\n')
	if err != nil {
		c.eof = true
	}
	return strings.TrimSpace(s)
}

func (c *Console) readInt(prompt string) (int, error) {
	n, err := strconv.Atoi(c.readLine(prompt))
	if err != nil {
		return 0, ErrMalformedInput
	}
	return n, nil
}

func (c *Console) readAmount(prompt string) (decimal.Decimal, error) {
	raw := strings.ReplaceAll(c.readLine(prompt), ",", ".")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrMalformedInput
	}
	return d, nil
}

// report maps a domain error to its user-visible message. Unknown errors are
// logged and reported generically; nothing here is fatal.
func (c *Console) report(err error) {
	var (
		limit   ErrLimitExceeded
		count   ErrWithdrawalCountExceeded
		dup     ErrDuplicateCustomer
		noCust  ErrCustomerNotFound
		noAcct  ErrAccountNotFound
		noAccts ErrNoAccountsForCustomer
	)
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrMalformedInput):
		fmt.Fprintln(c.out, "⚠️ Valor inválido.")
	case errors.Is(err, ErrInsufficientFunds):
		fmt.Fprintln(c.out, "❌ Saldo insuficiente.")
	case errors.As(err, &limit):
		fmt.Fprintf(c.out, "❌ Valor excede o limite de R$ %s.\n", limit.Limit.StringFixed(2))
	case errors.As(err, &count):
		fmt.Fprintln(c.out, "❌ Número máximo de saques diários atingido.")
	case errors.As(err, &dup):
		fmt.Fprintln(c.out, "❌ Já existe um usuário com esse CPF!")
	case errors.As(err, &noCust):
		fmt.Fprintln(c.out, "❌ Usuário não encontrado! Cadastre primeiro o usuário.")
	case errors.As(err, &noAccts):
		fmt.Fprintln(c.out, "❌ Nenhuma conta encontrada para este CPF.")
	case errors.As(err, &noAcct):
		fmt.Fprintln(c.out, "⚠️ Conta não encontrada.")
	default:
		c.log.Err(err).Msg("unexpected error")
		fmt.Fprintln(c.out, "❌ Ocorreu um erro inesperado.")
	}
}
