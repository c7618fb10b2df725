package bancogo

import (
	"fmt"
	"io"
	"iter"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const entryTimeLayout = "02/01/2006 15:04:05"

// Statement is a point-in-time view of an account's log and balance.
type Statement struct {
	Branch  string
	Number  int
	Balance decimal.Decimal

	entries []Entry
}

// Entries iterates the log in insertion order. The sequence is finite and
// restartable.
func (s Statement) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}

func (s Statement) Empty() bool {
	return len(s.entries) == 0
}

func (k EntryKind) label() string {
	switch k {
	case Deposit:
		return "Depósito"
	case Withdrawal:
		return "Saque"
	}
	return string(k)
}

// WriteText prints the statement in the console layout.
func (s Statement) WriteText(w io.Writer) {
	fmt.Fprintln(w, "\n================ EXTRATO ================")
	if s.Empty() {
		fmt.Fprintln(w, "Não foram realizadas movimentações.")
	} else {
		for e := range s.Entries() {
			fmt.Fprintf(w, "%s - %s: R$ %s\n",
				e.Time.Format(entryTimeLayout), e.Kind.label(), e.Amount.StringFixed(2))
		}
	}
	fmt.Fprintf(w, "\nSaldo atual: R$ %s\n", s.Balance.StringFixed(2))
	fmt.Fprintln(w, "=========================================")
}

// WritePDF renders the statement as an A4 PDF document.
func (s Statement) WritePDF(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Extrato - Agência %s | Conta %d", s.Branch, s.Number)),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	if s.Empty() {
		pdf.CellFormat(0, 8, tr("Não foram realizadas movimentações."), "", 1, "L", false, 0, "")
	}
	for e := range s.Entries() {
		pdf.CellFormat(60, 8, e.Time.Format(entryTimeLayout), "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, tr(e.Kind.label()), "B", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, "R$ "+e.Amount.StringFixed(2), "B", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Saldo atual: R$ "+s.Balance.StringFixed(2), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
