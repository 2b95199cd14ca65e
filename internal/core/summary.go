package core

// Totals aggregates a set of entries by kind.
type Totals struct {
	Income  Money
	Expense Money
	Count   int
}

// Balance is income minus expense.
func (t Totals) Balance() Money {
	return Money{Cents: t.Income.Cents - t.Expense.Cents}
}

// Summarize totals the given entries.
func Summarize(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		switch e.Kind {
		case Income:
			t.Income.Cents += e.AmountCents
		case Expense:
			t.Expense.Cents += e.AmountCents
		}
		t.Count++
	}
	return t
}
