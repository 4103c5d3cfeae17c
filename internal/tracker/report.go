package tracker

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/peaknot/expense-tracker/pkg/expense"
)

const dateLayout = "January, 02"

func renderTable(w io.Writer, expenses []expense.Expense, currency string) {
	fmt.Fprintf(w, "| %-5s | %-15s | %-20s | %10s |\n", "ID", "Date", "Description", "Amount")
	fmt.Fprintf(w, "|%s|%s|%s|%s|\n",
		strings.Repeat("-", 7), strings.Repeat("-", 17), strings.Repeat("-", 22), strings.Repeat("-", 12))

	for _, e := range expenses {
		fmt.Fprintf(w, "| %-5d | %-15s | %-20s | %s%9s |\n",
			e.ID,
			e.Date.UTC().Format(dateLayout),
			e.Description,
			currency,
			decimal.NewFromFloat(e.Amount).StringFixed(2),
		)
	}
}
