package grammar

// Type classifies a token.
type Type int

const (
	Word   Type = iota // anything that is not a numeric literal
	Number             // matches IsValidNumber
)

func (t Type) String() string {
	switch t {
	case Word:
		return "word"
	case Number:
		return "number"
	}
	return "unknown"
}

// Token is one whitespace-separated field of a line.
// Column is 1-based and counts bytes.
type Token struct {
	Value  string
	Type   Type
	Column int
	End    int // byte offset just past the token in the tokenized string
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// Tokenize splits s into runs of non-blank bytes. Blanks are space and tab.
// base is added to every column so callers can report positions relative to
// the untrimmed line.
func Tokenize(s string, base int) []Token {
	var tokens []Token
	for i := 0; i < len(s); i++ {
		if isBlank(s[i]) {
			continue
		}
		start := i
		for i < len(s) && !isBlank(s[i]) {
			i++
		}
		value := s[start:i]
		typ := Word
		if IsValidNumber(value) {
			typ = Number
		}
		tokens = append(tokens, Token{Value: value, Type: typ, Column: base + start + 1, End: i})
	}
	return tokens
}

// IsValidNumber reports whether s is a numeric literal of the data grammar:
// an optional leading sign, digits with an optional fraction (or a bare
// fraction such as ".5"), and an optional exponent with its own optional sign.
func IsValidNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := digits(s, i)
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = digits(s, i)
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		n := digits(s, i)
		if n == 0 {
			return false
		}
		i += n
	}
	return i == len(s)
}

func digits(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] >= '0' && s[i+n] <= '9' {
		n++
	}
	return n
}
