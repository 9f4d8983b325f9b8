// Package input edits the numeric answer typed on the keypad.
package input

// MaxDigits bounds the answer length; 12 x 12 has three digits.
const MaxDigits = 3

type kind int

const (
	kindDigit kind = iota
	kindBackspace
)

// Event is a single keypad press.
type Event struct {
	kind  kind
	digit rune
}

// Digit returns a keypad event for d.
func Digit(d rune) Event {
	return Event{kind: kindDigit, digit: d}
}

// Backspace returns a keypad event that removes the last digit.
func Backspace() Event {
	return Event{kind: kindBackspace}
}

// IsBackspace reports whether ev removes a digit.
func (ev Event) IsBackspace() bool {
	return ev.kind == kindBackspace
}

// Apply returns buf with ev applied. Rejected events leave buf unchanged.
func Apply(buf string, ev Event) string {
	switch {
	case ev.kind == kindBackspace && buf == "":
		return buf
	case ev.kind == kindBackspace:
		return buf[:len(buf)-1]
	case len(buf) >= MaxDigits:
		return buf
	case ev.digit == '0' && buf == "":
		// No product starts with zero.
		return buf
	case ev.digit < '0' || ev.digit > '9':
		return buf
	}
	return buf + string(ev.digit)
}
