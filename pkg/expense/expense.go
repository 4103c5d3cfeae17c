package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single tracked expense
type Expense struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ID          int       `json:"id"`
	Date        time.Time `json:"date"`
}

// List holds the expense collection in insertion order
type List []Expense

// NextID returns one more than the highest id in the list, or 1 when empty
func (l List) NextID() int {
	highest := 0
	for _, e := range l {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest + 1
}

// Add appends a new expense stamped with at (converted to UTC) and returns it
func (l *List) Add(description string, amount float64, at time.Time) Expense {
	e := Expense{
		Description: description,
		Amount:      amount,
		ID:          l.NextID(),
		Date:        at.UTC(),
	}
	*l = append(*l, e)
	return e
}

// Index returns the position of the expense with the given id, or -1
func (l List) Index(id int) int {
	for i, e := range l {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Find returns a pointer to the stored expense with the given id
func (l List) Find(id int) (*Expense, bool) {
	i := l.Index(id)
	if i < 0 {
		return nil, false
	}
	return &l[i], true
}

// Remove deletes the expense with the given id, keeping the order of the rest
func (l *List) Remove(id int) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
	return true
}

// Clone returns an independent copy of the list
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Filter returns the expenses dated in the given month of now's year.
// The month is a full English month name matched case-insensitively.
// An empty month returns every expense.
func (l List) Filter(month string, now time.Time) []Expense {
	if month == "" {
		return append([]Expense(nil), l...)
	}

	year := now.UTC().Year()
	var filtered []Expense
	for _, e := range l {
		d := e.Date.UTC()
		if d.Year() == year && strings.EqualFold(d.Month().String(), month) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Total sums the amounts of the given expenses without float drift
func Total(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}
