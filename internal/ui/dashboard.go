package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tuimoney/internal/core"

	"github.com/charmbracelet/lipgloss"
)

// EntryService is the storage surface the screens need.
type EntryService interface {
	Record(ctx context.Context, c core.NewEntry) (core.Entry, error)
	List(ctx context.Context, f core.EntryFilter) ([]core.Entry, error)
}

const (
	filterFocusFrom = iota
	filterFocusTo
	filterFocusCategory
	filterFocusCount
)

type message struct {
	text  string
	isErr bool
}

// DashboardScreen lists entries with an optional filter and totals.
type DashboardScreen struct {
	svc      EntryService
	entries  []core.Entry
	selected int
	filter   core.EntryFilter
	msg      *message

	// pendingID is selected after the next successful reload.
	pendingID int64

	editing     bool
	filterFocus focusRing
	filterErr   string
	from        *textField
	to          *textField
	category    *textField
}

func NewDashboardScreen(svc EntryService) *DashboardScreen {
	return &DashboardScreen{
		svc:         svc,
		filterFocus: focusRing{n: filterFocusCount},
		from:        newTextField("From", 10),
		to:          newTextField("To", 10),
		category:    newTextField("Category", 64),
	}
}

func (s *DashboardScreen) Init(ctx context.Context) {
	_ = s.reload(ctx, s.filter)
}

// Entries returns the rows currently displayed.
func (s *DashboardScreen) Entries() []core.Entry { return s.entries }

// Selected returns the index of the highlighted row, -1 when empty.
func (s *DashboardScreen) Selected() int {
	if len(s.entries) == 0 {
		return -1
	}
	return s.selected
}

func (s *DashboardScreen) Filter() core.EntryFilter { return s.filter }

// Message returns the status line text and whether it reports an error.
func (s *DashboardScreen) Message() (string, bool) {
	if s.msg == nil {
		return "", false
	}
	return s.msg.text, s.msg.isErr
}

// Editing reports whether the filter editor is open.
func (s *DashboardScreen) Editing() bool { return s.editing }

// FilterError is the inline error of the filter editor.
func (s *DashboardScreen) FilterError() string { return s.filterErr }

// EntrySaved is called by the entry form after a successful save.
func (s *DashboardScreen) EntrySaved(e core.Entry) {
	s.pendingID = e.ID
	s.msg = &message{text: fmt.Sprintf("Saved %s %s in %s", e.Kind, core.FormatCents(e.AmountCents), e.Category)}
}

// reload lists entries matching f. The rows, filter and selection are only
// replaced when the listing succeeds.
func (s *DashboardScreen) reload(ctx context.Context, f core.EntryFilter) error {
	entries, err := s.svc.List(ctx, f)
	if err != nil {
		s.msg = &message{text: "Could not load entries: " + describeError(err), isErr: true}
		return err
	}
	if !sameFilter(f, s.filter) {
		s.selected = 0
	}
	s.filter = f
	s.entries = entries

	if s.pendingID != 0 {
		for i, e := range entries {
			if e.ID == s.pendingID {
				s.selected = i
				break
			}
		}
		s.pendingID = 0
	}
	if s.selected >= len(s.entries) {
		s.selected = max(len(s.entries)-1, 0)
	}
	return nil
}

func sameFilter(a, b core.EntryFilter) bool {
	return a.From.String() == b.From.String() &&
		a.To.String() == b.To.String() &&
		a.Category == b.Category
}

func (s *DashboardScreen) HandleAction(ctx context.Context, a Action) Result {
	if a.Kind == ActQuit {
		return quit()
	}
	if s.editing {
		s.handleFilterAction(ctx, a)
		return stay()
	}

	switch a.Kind {
	case ActNavUp, ActFocusPrev:
		if n := len(s.entries); n > 0 {
			s.selected = (s.selected + n - 1) % n
		}
	case ActNavDown, ActFocusNext:
		if n := len(s.entries); n > 0 {
			s.selected = (s.selected + 1) % n
		}
	case ActCancel:
		s.msg = nil
	case ActInputChar:
		switch a.Char {
		case 'q':
			return quit()
		case 'r':
			s.msg = nil
			_ = s.reload(ctx, s.filter)
		case 'a':
			return goTo(ScreenEntryForm)
		case 'f':
			s.openFilterEditor()
		case 'c':
			s.msg = nil
			_ = s.reload(ctx, core.EntryFilter{})
		}
	}
	return stay()
}

func (s *DashboardScreen) openFilterEditor() {
	s.editing = true
	s.filterErr = ""
	s.filterFocus.pos = filterFocusFrom
	s.from.set(s.filter.From.String())
	s.to.set(s.filter.To.String())
	s.category.set(s.filter.Category)
}

func (s *DashboardScreen) filterField() *textField {
	switch s.filterFocus.pos {
	case filterFocusFrom:
		return s.from
	case filterFocusTo:
		return s.to
	default:
		return s.category
	}
}

func (s *DashboardScreen) handleFilterAction(ctx context.Context, a Action) {
	switch a.Kind {
	case ActCancel:
		s.editing = false
		s.filterErr = ""
	case ActFocusNext, ActNavDown:
		s.filterFocus.next()
	case ActFocusPrev, ActNavUp:
		s.filterFocus.prev()
	case ActInputChar:
		s.filterField().insert(a.Char)
	case ActBackspace:
		s.filterField().backspace()
	case ActActivate:
		f, err := s.parseFilter()
		if err != nil {
			s.filterErr = err.Error()
			return
		}
		s.msg = nil
		if s.reload(ctx, f) != nil {
			return
		}
		s.editing = false
		s.filterErr = ""
	}
}

func (s *DashboardScreen) parseFilter() (core.EntryFilter, error) {
	var f core.EntryFilter
	if v := strings.TrimSpace(s.from.String()); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return f, fmt.Errorf("from: %q is not a YYYY-MM-DD date", v)
		}
		f.From = d
	}
	if v := strings.TrimSpace(s.to.String()); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return f, fmt.Errorf("to: %q is not a YYYY-MM-DD date", v)
		}
		f.To = d
	}
	if !f.From.IsEmpty() && !f.To.IsEmpty() && f.From.After(f.To.Time) {
		return f, errors.New("from must not be after to")
	}
	f.Category = strings.TrimSpace(s.category.String())
	return f, nil
}

func (s *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tui-money · Dashboard"))
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		b.WriteString(hintStyle.Render("No entries. Press a to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-10s  %-7s  %-16s  %12s  %s", "Date", "Kind", "Category", "Amount", "Note")))
		b.WriteString("\n")
		start, end := s.visibleRange(height)
		for i := start; i < end; i++ {
			b.WriteString(s.renderRow(s.entries[i], i == s.selected))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if s.editing {
		b.WriteString(s.renderFilterEditor())
		b.WriteString("\n")
	}

	totals := core.Summarize(s.entries)
	fmt.Fprintf(&b, "Filter: %s\n", s.filter)
	fmt.Fprintf(&b, "Income %s · Expense %s · Balance %s (%d entries)\n",
		incomeStyle.Render(totals.Income.String()),
		expenseStyle.Render(totals.Expense.String()),
		balanceStyle(totals.Balance()).Render(totals.Balance().String()),
		totals.Count)

	if s.msg != nil {
		if s.msg.isErr {
			b.WriteString(errorStyle.Render(s.msg.text) + hintStyle.Render("  (esc to dismiss)"))
		} else {
			b.WriteString(infoStyle.Render(s.msg.text))
		}
		b.WriteString("\n")
	}

	if s.editing {
		b.WriteString(hintStyle.Render("tab next field · enter apply · esc cancel"))
	} else {
		b.WriteString(hintStyle.Render("↑/↓/tab select · a add · f filter · c clear · r reload · q quit"))
	}

	out := b.String()
	if width > 0 {
		return panelStyle.Width(width - 2).Render(out)
	}
	return panelStyle.Render(out)
}

// visibleRange keeps the selected row inside the rows that fit on screen.
func (s *DashboardScreen) visibleRange(height int) (int, int) {
	n := len(s.entries)
	rows := height - 12
	if height <= 0 || rows >= n {
		return 0, n
	}
	rows = max(rows, 1)
	start := max(s.selected-rows+1, 0)
	return start, min(start+rows, n)
}

func (s *DashboardScreen) renderRow(e core.Entry, selected bool) string {
	signed := core.FormatCents(e.SignedCents())
	if e.Kind == core.Income {
		signed = "+" + signed
	}
	amountStyle := expenseStyle
	if e.Kind == core.Income {
		amountStyle = incomeStyle
	}

	prefix := fmt.Sprintf("%-10s  %-7s  %-16s  ", e.OccurredOn, e.Kind, truncate(e.Category, 16))
	amount := fmt.Sprintf("%12s", signed)
	note := "  " + truncate(e.Note, 40)

	if selected {
		return selectedRowStyle.Render(prefix + amount + note)
	}
	return prefix + amountStyle.Render(amount) + note
}

func (s *DashboardScreen) renderFilterEditor() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Filter entries"))
	b.WriteString("\n")
	b.WriteString(s.from.render(s.filterFocus.pos == filterFocusFrom, 10))
	b.WriteString("\n")
	b.WriteString(s.to.render(s.filterFocus.pos == filterFocusTo, 10))
	b.WriteString("\n")
	b.WriteString(s.category.render(s.filterFocus.pos == filterFocusCategory, 10))
	if s.filterErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(s.filterErr))
	}
	return b.String()
}

func balanceStyle(m core.Money) lipgloss.Style {
	if m.Cents < 0 {
		return expenseStyle
	}
	return incomeStyle
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

// describeError turns storage errors into a short user-facing reason.
func describeError(err error) string {
	switch {
	case errors.Is(err, core.ErrConstraintViolation):
		return "stored data is invalid"
	case errors.Is(err, core.ErrConnectionFailed):
		return "database unavailable"
	}
	return err.Error()
}
