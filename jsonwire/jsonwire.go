// Package jsonwire implements the litwire Reader/Writer contract over
// JSON scalars using encoding/json. One JSON value per Read/Write call,
// whitespace-separated on the wire.
//
// Kind mapping: JSON true/false is bool; a JSON number is int when its
// textual form has no fraction or exponent, float otherwise (ReadFloat
// accepts both); a JSON string is str, or char when it holds exactly
// one rune. JSON null, arrays, and objects are not scalars and fail
// every read. NaN and infinities cannot be written: encoding/json has
// no representation for them and WriteFloat surfaces that as an error.
package jsonwire

import (
	"bytes"
	"encoding/json"
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

// Reader reads JSON scalars from a byte slice.
type Reader struct {
	dec *json.Decoder
}

// NewReader creates a reader over the given JSON input.
func NewReader(data []byte) *Reader {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return &Reader{dec: dec}
}

// Open adapts NewReader to the union dispatcher's reader factory.
func Open(data []byte) lit.Reader {
	return NewReader(data)
}

// ReadBool reads one JSON bool.
func (r *Reader) ReadBool() (bool, error) {
	tok, kind, err := r.next()
	if err != nil {
		return false, err
	}
	if kind != lit.KindBool {
		return false, &lit.KindError{Want: lit.KindBool, Got: kind}
	}
	return tok.(bool), nil
}

// ReadChar reads one JSON string holding exactly one rune.
func (r *Reader) ReadChar() (rune, error) {
	tok, kind, err := r.next()
	if err != nil {
		return 0, err
	}
	if kind != lit.KindStr {
		return 0, &lit.KindError{Want: lit.KindChar, Got: kind}
	}
	s := tok.(string)
	if utf8.RuneCountInString(s) != 1 {
		return 0, &lit.KindError{Want: lit.KindChar, Got: lit.KindStr}
	}
	ch, _ := utf8.DecodeRuneInString(s)
	return ch, nil
}

// ReadInt reads one JSON integer number.
func (r *Reader) ReadInt() (int64, error) {
	tok, kind, err := r.next()
	if err != nil {
		return 0, err
	}
	if kind != lit.KindInt {
		return 0, &lit.KindError{Want: lit.KindInt, Got: kind}
	}
	return tok.(json.Number).Int64()
}

// ReadFloat reads one JSON number; integers widen to float.
func (r *Reader) ReadFloat() (float64, error) {
	tok, kind, err := r.next()
	if err != nil {
		return 0, err
	}
	if kind != lit.KindInt && kind != lit.KindFloat {
		return 0, &lit.KindError{Want: lit.KindFloat, Got: kind}
	}
	return tok.(json.Number).Float64()
}

// ReadStr reads one JSON string.
func (r *Reader) ReadStr() (string, error) {
	tok, kind, err := r.next()
	if err != nil {
		return "", err
	}
	if kind != lit.KindStr {
		return "", &lit.KindError{Want: lit.KindStr, Got: kind}
	}
	return tok.(string), nil
}

// next reads one JSON token and classifies its kind.
func (r *Reader) next() (json.Token, lit.Kind, error) {
	tok, err := r.dec.Token()
	if err != nil {
		return nil, 0, fmt.Errorf("jsonwire: read: %w", err)
	}

	switch v := tok.(type) {
	case bool:
		return v, lit.KindBool, nil
	case string:
		return v, lit.KindStr, nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return v, lit.KindFloat, nil
		}
		return v, lit.KindInt, nil
	default:
		return nil, 0, fmt.Errorf("jsonwire: not a scalar: %v", tok)
	}
}

// ============================================================
// Writer
// ============================================================

// Writer emits JSON scalars, space-separated.
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

// WriteBool writes true or false.
func (w *Writer) WriteBool(v bool) error {
	w.sep()
	w.sb.WriteString(strconv.FormatBool(v))
	return nil
}

// WriteChar writes a one-rune JSON string.
func (w *Writer) WriteChar(v rune) error {
	return w.WriteStr(string(v))
}

// WriteInt writes a JSON integer.
func (w *Writer) WriteInt(v int64) error {
	w.sep()
	w.sb.WriteString(strconv.FormatInt(v, 10))
	return nil
}

// WriteFloat writes a JSON number that always reads back as float.
func (w *Writer) WriteFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("jsonwire: %v has no JSON representation", v)
	}
	w.sep()
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	w.sb.WriteString(s)
	return nil
}

// WriteStr writes a JSON string.
func (w *Writer) WriteStr(v string) error {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("jsonwire: write str: %w", err)
	}
	w.sep()
	w.sb.Write(out)
	return nil
}

func (w *Writer) sep() {
	if w.sb.Len() > 0 {
		w.sb.WriteString(" ")
	}
}
