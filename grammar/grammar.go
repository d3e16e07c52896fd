package grammar

import (
	"strconv"
	"strings"

	"github.com/wippyai/plykit/ply"
)

// Header keywords.
const (
	KeywordMagic     = "ply"
	KeywordFormat    = "format"
	KeywordComment   = "comment"
	KeywordObjInfo   = "obj_info"
	KeywordElement   = "element"
	KeywordProperty  = "property"
	KeywordList      = "list"
	KeywordEndHeader = "end_header"
)

var keywords = []string{
	KeywordMagic, KeywordFormat, KeywordComment, KeywordObjInfo,
	KeywordElement, KeywordProperty, KeywordEndHeader,
}

var encodings = []string{"ascii", "binary_big_endian", "binary_little_endian"}

var scalarTypes = []string{"char", "uchar", "short", "ushort", "int", "uint", "float", "double"}

// ParseLine parses one raw header line. A single trailing "\n", "\r" or
// "\r\n" is stripped; blanks around the statement are ignored.
func ParseLine(s string) (Line, error) {
	body, err := stripLineBreak(s)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimLeft(body, " \t")
	lead := len(body) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, " \t")
	return parseStatement(trimmed, lead)
}

// ParseDataLine splits one ascii payload line into numeric fields.
// An empty line yields no fields.
func ParseDataLine(s string) ([]string, error) {
	body, err := stripLineBreak(s)
	if err != nil {
		return nil, err
	}
	tokens := Tokenize(body, 0)
	fields := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != Number {
			return nil, expected(tok.Column, tok.Value, "number")
		}
		fields = append(fields, tok.Value)
	}
	return fields, nil
}

// ParseMagicNumber accepts exactly "ply".
func ParseMagicNumber(s string) error {
	if s != KeywordMagic {
		return expected(1, s, strconv.Quote(KeywordMagic))
	}
	return nil
}

// ParseFormat parses a format statement with no surrounding blanks or line break.
func ParseFormat(s string) (Format, error) {
	l, err := parseStrict(s, KeywordFormat)
	if err != nil {
		return Format{}, err
	}
	return l.(Format), nil
}

// ParseComment parses a comment statement and returns its text.
func ParseComment(s string) (string, error) {
	l, err := parseStrict(s, KeywordComment)
	if err != nil {
		return "", err
	}
	return l.(Comment).Text, nil
}

// ParseObjInfo parses an obj_info statement and returns its text.
func ParseObjInfo(s string) (string, error) {
	l, err := parseStrict(s, KeywordObjInfo)
	if err != nil {
		return "", err
	}
	return l.(ObjInfo).Text, nil
}

// ParseElement parses an element statement.
func ParseElement(s string) (ply.ElementDef, error) {
	l, err := parseStrict(s, KeywordElement)
	if err != nil {
		return ply.ElementDef{}, err
	}
	return l.(Element).Def, nil
}

// ParseProperty parses a scalar or list property statement.
func ParseProperty(s string) (ply.PropertyDef, error) {
	l, err := parseStrict(s, KeywordProperty)
	if err != nil {
		return ply.PropertyDef{}, err
	}
	return l.(Property).Def, nil
}

// parseStrict parses a statement that must start with keyword and contain no
// line break. Only comment and obj_info tolerate trailing blanks.
func parseStrict(s, keyword string) (Line, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, expected(i+1, s[i:i+1], "end of line")
	}
	if !strings.HasPrefix(s, keyword) {
		return nil, expected(1, firstWord(s), strconv.Quote(keyword))
	}
	free := keyword == KeywordComment || keyword == KeywordObjInfo
	if !free {
		if trimmed := strings.TrimRight(s, " \t"); len(trimmed) != len(s) {
			return nil, expected(len(trimmed)+1, s[len(trimmed):], "end of line")
		}
	}
	return parseStatement(s, 0)
}

func stripLineBreak(s string) (string, error) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		s = s[:len(s)-1]
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return "", expected(i+1, s[i:i+1], "end of line")
	}
	return s, nil
}

func firstWord(s string) string {
	tokens := Tokenize(s, 0)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0].Value
}

// parseStatement parses a statement whose leading blanks have been removed.
// base is the number of bytes removed, used for column numbers.
func parseStatement(s string, base int) (Line, error) {
	tokens := Tokenize(s, base)
	if len(tokens) == 0 {
		return nil, expected(base+1, "", keywords...)
	}
	kw := tokens[0]
	args := tokens[1:]

	switch kw.Value {
	case KeywordMagic:
		if err := arity(kw, args, 0); err != nil {
			return nil, err
		}
		return MagicNumber{}, nil

	case KeywordEndHeader:
		if err := arity(kw, args, 0); err != nil {
			return nil, err
		}
		return EndHeader{}, nil

	case KeywordComment:
		return Comment{Text: freeText(s, kw)}, nil

	case KeywordObjInfo:
		return ObjInfo{Text: freeText(s, kw)}, nil

	case KeywordFormat:
		if err := arity(kw, args, 2, "encoding", "version"); err != nil {
			return nil, err
		}
		enc, ok := ply.ParseEncoding(args[0].Value)
		if !ok {
			return nil, expected(args[0].Column, args[0].Value, encodings...)
		}
		v, err := parseVersion(args[1])
		if err != nil {
			return nil, err
		}
		return Format{Encoding: enc, Version: v}, nil

	case KeywordElement:
		if err := arity(kw, args, 2, "element name", "element count"); err != nil {
			return nil, err
		}
		count, err := parseCount(args[1])
		if err != nil {
			return nil, err
		}
		def := ply.NewElementDef(args[0].Value)
		def.Count = count
		return Element{Def: def}, nil

	case KeywordProperty:
		return parseProperty(kw, args)
	}

	return nil, expected(kw.Column, kw.Value, keywords...)
}

func parseProperty(kw Token, args []Token) (Line, error) {
	if len(args) > 0 && args[0].Value == KeywordList {
		if err := arity(kw, args, 4, "list", "index type", "element type", "property name"); err != nil {
			return nil, err
		}
		index, err := scalarType(args[1])
		if err != nil {
			return nil, err
		}
		elem, err := scalarType(args[2])
		if err != nil {
			return nil, err
		}
		return Property{Def: ply.NewPropertyDef(args[3].Value, ply.ListProperty(index, elem))}, nil
	}

	if err := arity(kw, args, 2, "property type", "property name"); err != nil {
		return nil, err
	}
	t, err := scalarType(args[0])
	if err != nil {
		return nil, err
	}
	return Property{Def: ply.NewPropertyDef(args[1].Value, ply.ScalarProperty(t))}, nil
}

// arity checks that the statement has exactly n arguments. names describes
// the expected arguments in order, for the error message.
func arity(kw Token, args []Token, n int, names ...string) error {
	if len(args) > n {
		return expected(args[n].Column, args[n].Value, "end of line")
	}
	if len(args) < n {
		column := kw.Column + len(kw.Value)
		if len(args) > 0 {
			column = args[len(args)-1].Column + len(args[len(args)-1].Value)
		}
		return expected(column, "", names[len(args)])
	}
	return nil
}

func freeText(s string, kw Token) string {
	return strings.Trim(s[kw.End:], " \t")
}

func scalarType(tok Token) (ply.ScalarType, error) {
	t, ok := ply.ParseScalarType(tok.Value)
	if !ok {
		return 0, expected(tok.Column, tok.Value, scalarTypes...)
	}
	return t, nil
}

func parseCount(tok Token) (int, error) {
	if !allDigits(tok.Value) {
		return 0, expected(tok.Column, tok.Value, "non-negative integer")
	}
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, expected(tok.Column, tok.Value, "non-negative integer")
	}
	return n, nil
}

func parseVersion(tok Token) (ply.Version, error) {
	major, minor, ok := strings.Cut(tok.Value, ".")
	if !ok || !allDigits(major) || !allDigits(minor) {
		return ply.Version{}, expected(tok.Column, tok.Value, "<major>.<minor>")
	}
	ma, err := strconv.ParseUint(major, 10, 32)
	if err != nil {
		return ply.Version{}, expected(tok.Column, tok.Value, "<major>.<minor>")
	}
	mi, err := strconv.ParseUint(minor, 10, 32)
	if err != nil {
		return ply.Version{}, expected(tok.Column, tok.Value, "<major>.<minor>")
	}
	return ply.Version{Major: uint32(ma), Minor: uint32(mi)}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
