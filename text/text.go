// Package text implements LIT-T, the text scalar encoding for litwire
// codecs. It is a scalar subset of GLYPH-T:
//
//	Bool:   t / f (accepts true / false on read)
//	Int:    123, -456
//	Float:  3.1, -2.5e10, NaN, Inf, -Inf (always carries . or exponent)
//	Str:    bare_word or "quoted string"
//	Char:   "z" (always quoted, exactly one rune)
//
// Scalars are separated by whitespace; // comments are skipped.
//
// Char and str share the quoted representation. Reading a char demands
// exactly one rune; anything longer is a kind error, and a bare single
// letter reads as either str or char. Reading a float accepts an int
// scalar widened to float; no other cross-kind read succeeds.
package text

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Neumenon/litwire/lit"
)

// ============================================================
// Reader
// ============================================================

// Reader reads LIT-T scalars from a string, one per Read call.
type Reader struct {
	input string
	pos   int
}

// NewReader creates a reader over the given input.
func NewReader(input string) *Reader {
	return &Reader{input: input}
}

// Open adapts NewReader to the union dispatcher's reader factory.
func Open(data []byte) lit.Reader {
	return NewReader(string(data))
}

// scalar is one lexed input value.
type scalar struct {
	kind     lit.Kind
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
}

// ReadBool reads one bool scalar.
func (r *Reader) ReadBool() (bool, error) {
	s, err := r.next()
	if err != nil {
		return false, err
	}
	if s.kind != lit.KindBool {
		return false, &lit.KindError{Want: lit.KindBool, Got: s.kind}
	}
	return s.boolVal, nil
}

// ReadChar reads one char scalar: a str scalar of exactly one rune.
func (r *Reader) ReadChar() (rune, error) {
	s, err := r.next()
	if err != nil {
		return 0, err
	}
	if s.kind != lit.KindStr {
		return 0, &lit.KindError{Want: lit.KindChar, Got: s.kind}
	}
	if utf8.RuneCountInString(s.strVal) != 1 {
		return 0, &lit.KindError{Want: lit.KindChar, Got: lit.KindStr}
	}
	ch, _ := utf8.DecodeRuneInString(s.strVal)
	return ch, nil
}

// ReadInt reads one int scalar.
func (r *Reader) ReadInt() (int64, error) {
	s, err := r.next()
	if err != nil {
		return 0, err
	}
	if s.kind != lit.KindInt {
		return 0, &lit.KindError{Want: lit.KindInt, Got: s.kind}
	}
	return s.intVal, nil
}

// ReadFloat reads one float scalar. An int scalar widens to float.
func (r *Reader) ReadFloat() (float64, error) {
	s, err := r.next()
	if err != nil {
		return 0, err
	}
	switch s.kind {
	case lit.KindFloat:
		return s.floatVal, nil
	case lit.KindInt:
		return float64(s.intVal), nil
	default:
		return 0, &lit.KindError{Want: lit.KindFloat, Got: s.kind}
	}
}

// ReadStr reads one str scalar, bare or quoted.
func (r *Reader) ReadStr() (string, error) {
	s, err := r.next()
	if err != nil {
		return "", err
	}
	if s.kind != lit.KindStr {
		return "", &lit.KindError{Want: lit.KindStr, Got: s.kind}
	}
	return s.strVal, nil
}

// next lexes one scalar.
func (r *Reader) next() (scalar, error) {
	r.skipWhitespaceAndComments()

	if r.pos >= len(r.input) {
		return scalar{}, fmt.Errorf("text: unexpected end of input at offset %d", r.pos)
	}

	ch := r.input[r.pos]

	switch {
	case ch == '"':
		return r.scanQuoted()
	case ch == '-' || isDigit(ch):
		return r.scanNumber()
	case isIdentStart(ch):
		return r.scanBareOrKeyword()
	}

	return scalar{}, fmt.Errorf("text: unexpected character %q at offset %d", ch, r.pos)
}

// scanQuoted scans a quoted string with escapes.
func (r *Reader) scanQuoted() (scalar, error) {
	start := r.pos
	r.pos++ // consume opening "

	var sb strings.Builder
	for {
		if r.pos >= len(r.input) {
			return scalar{}, fmt.Errorf("text: unterminated string at offset %d", start)
		}

		ch := r.input[r.pos]
		if ch == '"' {
			r.pos++
			break
		}

		if ch == '\\' {
			r.pos++
			if r.pos >= len(r.input) {
				return scalar{}, fmt.Errorf("text: unterminated escape at offset %d", r.pos)
			}
			escaped := r.input[r.pos]
			r.pos++
			switch escaped {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte(escaped)
			}
		} else {
			sb.WriteByte(ch)
			r.pos++
		}
	}

	return scalar{kind: lit.KindStr, strVal: sb.String()}, nil
}

// scanNumber scans an int or float, including -Inf.
func (r *Reader) scanNumber() (scalar, error) {
	start := r.pos

	if r.input[r.pos] == '-' {
		r.pos++
		if strings.HasPrefix(r.input[r.pos:], "Inf") {
			r.pos += 3
			return scalar{kind: lit.KindFloat, floatVal: math.Inf(-1)}, nil
		}
	}

	for r.pos < len(r.input) && isDigit(r.input[r.pos]) {
		r.pos++
	}

	isFloat := false

	// Decimal part
	if r.pos+1 < len(r.input) && r.input[r.pos] == '.' && isDigit(r.input[r.pos+1]) {
		isFloat = true
		r.pos++
		for r.pos < len(r.input) && isDigit(r.input[r.pos]) {
			r.pos++
		}
	}

	// Exponent part
	if r.pos < len(r.input) && (r.input[r.pos] == 'e' || r.input[r.pos] == 'E') {
		isFloat = true
		r.pos++
		if r.pos < len(r.input) && (r.input[r.pos] == '+' || r.input[r.pos] == '-') {
			r.pos++
		}
		for r.pos < len(r.input) && isDigit(r.input[r.pos]) {
			r.pos++
		}
	}

	value := r.input[start:r.pos]

	if isFloat {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return scalar{}, fmt.Errorf("text: bad float %q at offset %d: %w", value, start, err)
		}
		return scalar{kind: lit.KindFloat, floatVal: f}, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return scalar{}, fmt.Errorf("text: bad int %q at offset %d: %w", value, start, err)
	}
	return scalar{kind: lit.KindInt, intVal: n}, nil
}

// scanBareOrKeyword scans a bare word; keywords become bool/float.
func (r *Reader) scanBareOrKeyword() (scalar, error) {
	start := r.pos
	for r.pos < len(r.input) && isBareContinue(r.input[r.pos]) {
		r.pos++
	}
	value := r.input[start:r.pos]

	switch value {
	case "t", "true":
		return scalar{kind: lit.KindBool, boolVal: true}, nil
	case "f", "false":
		return scalar{kind: lit.KindBool, boolVal: false}, nil
	case "NaN":
		return scalar{kind: lit.KindFloat, floatVal: math.NaN()}, nil
	case "Inf":
		return scalar{kind: lit.KindFloat, floatVal: math.Inf(1)}, nil
	}

	return scalar{kind: lit.KindStr, strVal: value}, nil
}

// skipWhitespaceAndComments skips whitespace and // comments.
func (r *Reader) skipWhitespaceAndComments() {
	for r.pos < len(r.input) {
		ch := r.input[r.pos]

		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			r.pos++
			continue
		}

		if ch == '/' && r.pos+1 < len(r.input) && r.input[r.pos+1] == '/' {
			for r.pos < len(r.input) && r.input[r.pos] != '\n' {
				r.pos++
			}
			continue
		}

		break
	}
}

// ============================================================
// Writer
// ============================================================

// Writer emits LIT-T scalars, space-separated.
type Writer struct {
	sb strings.Builder
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

// WriteBool writes t or f.
func (w *Writer) WriteBool(v bool) error {
	w.sep()
	if v {
		w.sb.WriteString("t")
	} else {
		w.sb.WriteString("f")
	}
	return nil
}

// WriteChar writes a quoted single-rune string. Chars are always
// quoted so single-letter keywords like t stay unambiguous.
func (w *Writer) WriteChar(v rune) error {
	w.sep()
	w.sb.WriteString("\"")
	w.sb.WriteString(escapeString(string(v)))
	w.sb.WriteString("\"")
	return nil
}

// WriteInt writes a decimal integer.
func (w *Writer) WriteInt(v int64) error {
	w.sep()
	w.sb.WriteString(strconv.FormatInt(v, 10))
	return nil
}

// WriteFloat writes the shortest round-tripping float form, forcing a
// decimal point so it never reads back as an int.
func (w *Writer) WriteFloat(v float64) error {
	w.sep()
	switch {
	case math.IsNaN(v):
		w.sb.WriteString("NaN")
	case math.IsInf(v, 1):
		w.sb.WriteString("Inf")
	case math.IsInf(v, -1):
		w.sb.WriteString("-Inf")
	default:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		w.sb.WriteString(s)
	}
	return nil
}

// WriteStr writes a bare word when safe, otherwise a quoted string.
func (w *Writer) WriteStr(v string) error {
	w.sep()
	if isValidBareString(v) {
		w.sb.WriteString(v)
	} else {
		w.sb.WriteString("\"")
		w.sb.WriteString(escapeString(v))
		w.sb.WriteString("\"")
	}
	return nil
}

func (w *Writer) sep() {
	if w.sb.Len() > 0 {
		w.sb.WriteString(" ")
	}
}

// ============================================================
// Character Classification
// ============================================================

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isBareContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '-'
}

// escapeString escapes a string for quoted output.
func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		case '\t':
			sb.WriteString("\\t")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// isValidBareString checks if a string can be emitted without quotes.
// Bare words are ASCII-only so the scanner's byte classification and
// the emitter agree.
func isValidBareString(s string) bool {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isBareContinue(s[i]) {
			return false
		}
	}

	// Keywords would read back as bool or float.
	switch s {
	case "t", "f", "true", "false", "NaN", "Inf":
		return false
	}

	return true
}
