package parser

// location counts the lines (ascii) or records (binary) consumed so far.
// It only decorates errors.
type location struct {
	line int
}

func (l *location) next() {
	l.line++
}
