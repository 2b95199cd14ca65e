package ui

import (
	"strings"
	"unicode"
)

// textField is a single-line input. Masked fields render one '*' per rune.
type textField struct {
	label  string
	value  []rune
	masked bool
	limit  int
}

func newTextField(label string, limit int) *textField {
	return &textField{label: label, limit: limit}
}

func (f *textField) insert(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	if f.limit > 0 && len(f.value) >= f.limit {
		return
	}
	f.value = append(f.value, r)
}

func (f *textField) backspace() {
	if len(f.value) > 0 {
		f.value = f.value[:len(f.value)-1]
	}
}

func (f *textField) set(s string) {
	f.value = []rune(s)
}

func (f *textField) reset() {
	f.value = f.value[:0]
}

func (f *textField) String() string {
	return string(f.value)
}

// display is the text shown on screen.
func (f *textField) display() string {
	if f.masked {
		return strings.Repeat("*", len(f.value))
	}
	return string(f.value)
}

// render draws "label: [value_]" with the cursor shown when focused.
func (f *textField) render(focused bool, labelWidth int) string {
	value := f.display()
	if focused {
		value += "_"
	}
	box := fieldStyle
	if focused {
		box = focusedFieldStyle
	}
	return labelStyle.Width(labelWidth).Render(f.label) + box.Render("[ "+value+" ]")
}

// focusRing cycles through n focus positions.
type focusRing struct {
	pos, n int
}

func (r *focusRing) next() { r.pos = (r.pos + 1) % r.n }
func (r *focusRing) prev() { r.pos = (r.pos + r.n - 1) % r.n }
