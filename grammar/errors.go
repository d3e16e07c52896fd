package grammar

import (
	"fmt"
	"strings"
)

// SyntaxError reports where a line stopped matching the grammar.
type SyntaxError struct {
	Found    string
	Expected []string
	Column   int
}

func (e *SyntaxError) Error() string {
	found := "end of line"
	if e.Found != "" {
		found = fmt.Sprintf("%q", e.Found)
	}
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("column %d: unexpected %s", e.Column, found)
	case 1:
		return fmt.Sprintf("column %d: expected %s, found %s", e.Column, e.Expected[0], found)
	}
	return fmt.Sprintf("column %d: expected one of [%s], found %s", e.Column, strings.Join(e.Expected, ", "), found)
}

func expected(column int, found string, want ...string) *SyntaxError {
	return &SyntaxError{Column: column, Found: found, Expected: want}
}
