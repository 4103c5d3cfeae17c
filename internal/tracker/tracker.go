// Package tracker applies one user command to an expense collection and
// reports the outcome.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/peaknot/expense-tracker/internal/logging"
	"github.com/peaknot/expense-tracker/internal/storage"
	"github.com/peaknot/expense-tracker/pkg/expense"
)

var (
	// ErrSave wraps any failure to persist a mutation. The mutation is
	// discarded and no success message is printed.
	ErrSave = errors.New("save expenses")
	// ErrInvalidAmount rejects amounts the backing file cannot represent
	ErrInvalidAmount = errors.New("amount must be a finite number")
)

const (
	msgNotFound   = "ID not found"
	msgNoExpenses = "No expenses found"
)

// Tracker owns the collection for a single invocation
type Tracker struct {
	store    storage.Store
	expenses expense.List
	out      io.Writer
	now      func() time.Time
	currency string
	log      *logrus.Entry
}

// Option customises a Tracker
type Option func(*Tracker)

// WithClock replaces time.Now, used for timestamps and the current year
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithCurrency sets the prefix printed before amounts in View
func WithCurrency(symbol string) Option {
	return func(t *Tracker) { t.currency = symbol }
}

func WithLogger(logger *logrus.Logger) Option {
	return func(t *Tracker) { t.log = logging.Component(logger, "tracker") }
}

// New returns a Tracker over a collection already loaded from store
func New(store storage.Store, expenses expense.List, out io.Writer, opts ...Option) *Tracker {
	t := &Tracker{
		store:    store,
		expenses: expenses,
		out:      out,
		now:      time.Now,
		currency: "$",
		log:      logging.Component(logging.Discard(), "tracker"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Expenses returns the current collection
func (t *Tracker) Expenses() expense.List {
	return t.expenses
}

// Add records a new expense stamped with the current time
func (t *Tracker) Add(ctx context.Context, description string, amount float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	next := t.expenses.Clone()
	e := next.Add(description, amount, t.now())
	if err := t.commit(ctx, next, "add", e.ID); err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Expense added successfully (ID: %d)\n", e.ID)
	return nil
}

// Update replaces the amount of an existing expense
func (t *Tracker) Update(ctx context.Context, id int, amount float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	next := t.expenses.Clone()
	e, ok := next.Find(id)
	if !ok {
		t.notFound("update", id)
		return nil
	}
	e.Amount = amount
	if err := t.commit(ctx, next, "update", id); err != nil {
		return err
	}

	fmt.Fprintln(t.out, "Expense updated successfully")
	return nil
}

// Delete removes an expense; its id is never handed out again unless it
// becomes max+1 once more.
func (t *Tracker) Delete(ctx context.Context, id int) error {
	next := t.expenses.Clone()
	if !next.Remove(id) {
		t.notFound("delete", id)
		return nil
	}
	if err := t.commit(ctx, next, "delete", id); err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Expense %d deleted successfully\n", id)
	return nil
}

// View prints the expenses of month (current year), or all when month is empty
func (t *Tracker) View(month string) {
	filtered := t.expenses.Filter(month, t.now())
	if len(filtered) == 0 {
		fmt.Fprintln(t.out, msgNoExpenses)
		return
	}
	renderTable(t.out, filtered, t.currency)
}

// Summary prints the total of the same selection View would show
func (t *Tracker) Summary(month string) {
	filtered := t.expenses.Filter(month, t.now())
	if len(filtered) == 0 {
		fmt.Fprintln(t.out, msgNoExpenses)
		return
	}
	fmt.Fprintf(t.out, "Total expenses: %s\n", expense.Total(filtered).String())
}

// commit saves next and only then adopts it as the current collection
func (t *Tracker) commit(ctx context.Context, next expense.List, op string, id int) error {
	log := t.log.WithFields(logrus.Fields{logging.FieldOperation: op, logging.FieldID: id})
	if err := t.store.Save(ctx, next); err != nil {
		log.WithError(err).Error("failed to save expenses")
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	t.expenses = next
	log.Debug("expense saved")
	return nil
}

func (t *Tracker) notFound(op string, id int) {
	t.log.WithFields(logrus.Fields{logging.FieldOperation: op, logging.FieldID: id}).Debug("expense not found")
	fmt.Fprintln(t.out, msgNotFound)
}

func checkAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return nil
}
