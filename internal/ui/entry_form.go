package ui

import (
	"context"
	"errors"
	"strings"

	"tuimoney/internal/core"

	"github.com/charmbracelet/lipgloss"
)

const (
	formFocusKind = iota
	formFocusAmount
	formFocusCategory
	formFocusNote
	formFocusDate
	formFocusSave
	formFocusCancel
	formFocusCount
)

// EntryFormScreen records a new expense or income.
type EntryFormScreen struct {
	svc     EntryService
	onSaved func(core.Entry)
	today   func() core.Date

	focus    focusRing
	kind     core.EntryKind
	amount   *textField
	category *textField
	note     *textField
	date     *textField

	// fieldErr is the inline validation error, errField the focus position
	// it belongs to. storageErr is shown until dismissed with Esc.
	fieldErr   string
	errField   int
	storageErr string
}

func NewEntryFormScreen(svc EntryService, onSaved func(core.Entry)) *EntryFormScreen {
	return &EntryFormScreen{
		svc:      svc,
		onSaved:  onSaved,
		today:    core.Today,
		focus:    focusRing{n: formFocusCount},
		kind:     core.Expense,
		amount:   newTextField("Amount", 16),
		category: newTextField("Category", 64),
		note:     newTextField("Note", 128),
		date:     newTextField("Date", 10),
	}
}

func (s *EntryFormScreen) Init(context.Context) {
	if s.date.String() == "" {
		s.date.set(s.today().String())
	}
}

// FieldError returns the inline validation message, if any.
func (s *EntryFormScreen) FieldError() string { return s.fieldErr }

// StorageError returns the pending storage failure message, if any.
func (s *EntryFormScreen) StorageError() string { return s.storageErr }

// Kind returns the kind the form will record.
func (s *EntryFormScreen) Kind() core.EntryKind { return s.kind }

func (s *EntryFormScreen) reset() {
	s.focus.pos = formFocusKind
	s.kind = core.Expense
	s.amount.reset()
	s.category.reset()
	s.note.reset()
	s.date.reset()
	s.clearErrors()
}

func (s *EntryFormScreen) clearErrors() {
	s.fieldErr = ""
	s.storageErr = ""
}

func (s *EntryFormScreen) activeField() *textField {
	switch s.focus.pos {
	case formFocusAmount:
		return s.amount
	case formFocusCategory:
		return s.category
	case formFocusNote:
		return s.note
	case formFocusDate:
		return s.date
	}
	return nil
}

func (s *EntryFormScreen) HandleAction(ctx context.Context, a Action) Result {
	switch a.Kind {
	case ActQuit:
		return quit()
	case ActCancel:
		if s.storageErr != "" {
			s.storageErr = ""
			return stay()
		}
		s.reset()
		return goTo(ScreenDashboard)
	case ActFocusNext, ActNavDown:
		s.focus.next()
	case ActFocusPrev, ActNavUp:
		s.focus.prev()
	case ActNavLeft, ActNavRight:
		if s.focus.pos == formFocusKind {
			s.kind = s.kind.Toggle()
		}
	case ActInputChar:
		if s.focus.pos == formFocusKind {
			if a.Char == ' ' {
				s.kind = s.kind.Toggle()
			}
			return stay()
		}
		if f := s.activeField(); f != nil {
			f.insert(a.Char)
		}
	case ActBackspace:
		if f := s.activeField(); f != nil {
			f.backspace()
		}
	case ActActivate:
		switch s.focus.pos {
		case formFocusSave:
			return s.save(ctx)
		case formFocusCancel:
			s.reset()
			return goTo(ScreenDashboard)
		default:
			s.focus.next()
		}
	}
	return stay()
}

func (s *EntryFormScreen) save(ctx context.Context) Result {
	s.clearErrors()

	cents, err := core.ParseDecimalToCents(s.amount.String())
	if err != nil {
		s.setFieldError(err)
		return stay()
	}

	entry, err := s.svc.Record(ctx, core.NewEntry{
		Kind:        s.kind,
		AmountCents: cents,
		Category:    s.category.String(),
		Note:        s.note.String(),
		OccurredOn:  strings.TrimSpace(s.date.String()),
	})
	if err != nil {
		if errors.Is(err, core.ErrValidation) {
			s.setFieldError(err)
		} else {
			s.storageErr = "Could not save entry: " + describeError(err)
		}
		return stay()
	}

	if s.onSaved != nil {
		s.onSaved(entry)
	}
	s.reset()
	return goTo(ScreenDashboard)
}

func (s *EntryFormScreen) setFieldError(err error) {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		s.fieldErr, s.errField = "Amount must be a positive number like 12.34", formFocusAmount
	case errors.Is(err, core.ErrEmptyCategory):
		s.fieldErr, s.errField = "Category is required", formFocusCategory
	case errors.Is(err, core.ErrInvalidDate):
		s.fieldErr, s.errField = "Date must be a valid YYYY-MM-DD date", formFocusDate
	case errors.Is(err, core.ErrInvalidKind):
		s.fieldErr, s.errField = "Kind must be expense or income", formFocusKind
	default:
		s.fieldErr, s.errField = err.Error(), s.focus.pos
	}
}

func (s *EntryFormScreen) View(width, height int) string {
	var b strings.Builder

	kindStyle := fieldStyle
	if s.focus.pos == formFocusKind {
		kindStyle = focusedFieldStyle
	}
	kindLabel := "◀ " + string(s.kind) + " ▶"
	b.WriteString(labelStyle.Width(10).Render("Kind") + kindStyle.Render(kindLabel))
	b.WriteString(s.inlineError(formFocusKind))
	b.WriteString("\n")

	fields := []struct {
		pos   int
		field *textField
	}{
		{formFocusAmount, s.amount},
		{formFocusCategory, s.category},
		{formFocusNote, s.note},
		{formFocusDate, s.date},
	}
	for _, f := range fields {
		b.WriteString(f.field.render(s.focus.pos == f.pos, 10))
		b.WriteString(s.inlineError(f.pos))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		button("Save", s.focus.pos == formFocusSave),
		"  ",
		button("Cancel", s.focus.pos == formFocusCancel)))

	if s.storageErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(s.storageErr) + hintStyle.Render("  (esc to dismiss)"))
	}

	body := titleStyle.Render("New Entry") + "\n\n" + b.String()
	footer := hintStyle.Render("tab next · ←/→ or space toggle kind · enter save · esc cancel")
	return centered(width, height, panelStyle.Render(body)+"\n"+footer)
}

func (s *EntryFormScreen) inlineError(pos int) string {
	if s.fieldErr == "" || s.errField != pos {
		return ""
	}
	return "  " + errorStyle.Render(s.fieldErr)
}
