// Package statement renders a customer's recent transactions as plain text
// or as a PDF account statement.
package statement

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tellerhq/teller/internal/model"
)

const dateFormat = "2006-01-02 15:04"

// WriteText renders a statement as an aligned text table.
func WriteText(w io.Writer, c *model.Customer, txs []model.Transaction, currency string) error {
	fmt.Fprintf(w, "Statement for %s (customer %d)\n", c.Name, c.ID)
	fmt.Fprintf(w, "Balance: %s\n\n", c.Account.Balance().Format(currency))

	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tID")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			tx.At.Local().Format(dateFormat), tx.Type, tx.Amount.Format(currency), tx.ID)
	}
	return tw.Flush()
}

// WritePDF renders a statement as a single-page-per-overflow PDF document.
func WritePDF(w io.Writer, c *model.Customer, txs []model.Transaction, currency string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Account statement - %s (customer %d)", c.Name, c.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Local().Format(dateFormat), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Balance: "+c.Account.Balance().Format(currency), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{35, 28, 35, 0}
	headers := []string{"Date", "Type", "Amount", "Transaction"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, tx := range txs {
		cells := []string{
			tx.At.Local().Format(dateFormat),
			string(tx.Type),
			tx.Amount.Format(currency),
			tx.ID,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(txs) == 0 {
		pdf.CellFormat(0, 6, "No transactions.", "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
