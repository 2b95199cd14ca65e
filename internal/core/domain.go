package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for input and storage.
const DateLayout = "2006-01-02"

const (
	Expense EntryKind = "expense"
	Income  EntryKind = "income"
)

type (
	EntryKind string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// NewEntry is an unsaved candidate as typed by the user.
	NewEntry struct {
		Kind        EntryKind
		AmountCents int64
		Category    string
		Note        string // optional
		OccurredOn  string // YYYY-MM-DD
	}

	// Entry is a persisted transaction.
	Entry struct {
		ID          int64
		Kind        EntryKind
		AmountCents int64
		Category    string
		Note        string
		OccurredOn  Date
	}

	// EntryFilter narrows List. Zero values mean no constraint.
	EntryFilter struct {
		From     Date
		To       Date
		Category string
	}
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidKind   = fmt.Errorf("%w: invalid kind", ErrValidation)
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrEmptyCategory = fmt.Errorf("%w: empty category", ErrValidation)
	ErrInvalidDate   = fmt.Errorf("%w: invalid date", ErrValidation)
)

// ValidEntry can only be produced by Validate.
type ValidEntry struct {
	kind        EntryKind
	amountCents int64
	category    string
	note        string
	occurredOn  Date
}

func (v ValidEntry) Kind() EntryKind    { return v.kind }
func (v ValidEntry) AmountCents() int64 { return v.amountCents }
func (v ValidEntry) Category() string   { return v.category }
func (v ValidEntry) Note() string       { return v.note }
func (v ValidEntry) OccurredOn() Date   { return v.occurredOn }

// Validate checks a candidate and returns the first rule it breaks.
func Validate(c NewEntry) (ValidEntry, error) {
	if !c.Kind.IsValid() {
		return ValidEntry{}, fmt.Errorf("%w: %q", ErrInvalidKind, c.Kind)
	}
	if err := (Money{Cents: c.AmountCents}).Validate(); err != nil {
		return ValidEntry{}, err
	}
	category := strings.TrimSpace(c.Category)
	if category == "" {
		return ValidEntry{}, ErrEmptyCategory
	}
	date, err := ParseDate(c.OccurredOn)
	if err != nil {
		return ValidEntry{}, err
	}
	return ValidEntry{
		kind:        c.Kind,
		amountCents: c.AmountCents,
		category:    category,
		note:        strings.TrimSpace(c.Note),
		occurredOn:  date,
	}, nil
}

// ParseEntryKind maps the stored lexical form back to an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	k := EntryKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

func (k EntryKind) IsValid() bool {
	switch k {
	case Expense, Income:
		return true
	default:
		return false
	}
}

func (k EntryKind) String() string {
	return string(k)
}

// Toggle flips between expense and income.
func (k EntryKind) Toggle() EntryKind {
	if k == Income {
		return Expense
	}
	return Income
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses a YYYY-MM-DD string. Impossible dates such as 2024-02-30
// are rejected.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// IsEmpty reports whether the date is unset.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// SignedCents returns the amount with the sign implied by the kind.
func (e Entry) SignedCents() int64 {
	if e.Kind == Expense {
		return -e.AmountCents
	}
	return e.AmountCents
}

// Matches reports whether e satisfies every constraint present in f.
func (f EntryFilter) Matches(e Entry) bool {
	if !f.From.IsEmpty() && e.OccurredOn.Before(f.From.Time) {
		return false
	}
	if !f.To.IsEmpty() && e.OccurredOn.After(f.To.Time) {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}

// IsEmpty reports whether the filter has no constraints.
func (f EntryFilter) IsEmpty() bool {
	return f.From.IsEmpty() && f.To.IsEmpty() && f.Category == ""
}

func (f EntryFilter) String() string {
	if f.IsEmpty() {
		return "all entries"
	}
	var parts []string
	if !f.From.IsEmpty() {
		parts = append(parts, "from "+f.From.String())
	}
	if !f.To.IsEmpty() {
		parts = append(parts, "to "+f.To.String())
	}
	if f.Category != "" {
		parts = append(parts, "category "+f.Category)
	}
	return strings.Join(parts, ", ")
}
