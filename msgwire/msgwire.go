// Package msgwire implements the litwire Reader/Writer contract over
// MessagePack scalars using github.com/vmihailenco/msgpack/v5. It is
// the binary counterpart to the text and jsonwire packages: the codec
// contract never sees the difference.
//
// Kind mapping: msgpack bool is bool; any msgpack int family value is
// int; float32/float64 is float; a msgpack string is str, or char when
// it holds exactly one rune. ReadFloat widens ints. Nil, bin, arrays,
// maps, and extensions are not scalars and fail every read.
package msgwire

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/Neumenon/litwire/lit"
)

// ============================================================
// Reader
// ============================================================

// Reader reads msgpack scalars from a byte slice.
type Reader struct {
	dec *msgpack.Decoder
}

// NewReader creates a reader over the given msgpack input.
func NewReader(data []byte) *Reader {
	return &Reader{dec: msgpack.NewDecoder(bytes.NewReader(data))}
}

// Open adapts NewReader to the union dispatcher's reader factory.
func Open(data []byte) lit.Reader {
	return NewReader(data)
}

// ReadBool reads one msgpack bool.
func (r *Reader) ReadBool() (bool, error) {
	if err := r.expect(lit.KindBool, lit.KindBool); err != nil {
		return false, err
	}
	return r.dec.DecodeBool()
}

// ReadChar reads one msgpack string holding exactly one rune.
func (r *Reader) ReadChar() (rune, error) {
	if err := r.expect(lit.KindStr, lit.KindChar); err != nil {
		return 0, err
	}
	s, err := r.dec.DecodeString()
	if err != nil {
		return 0, fmt.Errorf("msgwire: read char: %w", err)
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, &lit.KindError{Want: lit.KindChar, Got: lit.KindStr}
	}
	ch, _ := utf8.DecodeRuneInString(s)
	return ch, nil
}

// ReadInt reads one msgpack integer.
func (r *Reader) ReadInt() (int64, error) {
	if err := r.expect(lit.KindInt, lit.KindInt); err != nil {
		return 0, err
	}
	return r.dec.DecodeInt64()
}

// ReadFloat reads one msgpack float; integers widen to float.
func (r *Reader) ReadFloat() (float64, error) {
	kind, err := r.peekKind()
	if err != nil {
		return 0, err
	}
	if kind != lit.KindFloat && kind != lit.KindInt {
		return 0, &lit.KindError{Want: lit.KindFloat, Got: kind}
	}
	return r.dec.DecodeFloat64()
}

// ReadStr reads one msgpack string.
func (r *Reader) ReadStr() (string, error) {
	if err := r.expect(lit.KindStr, lit.KindStr); err != nil {
		return "", err
	}
	return r.dec.DecodeString()
}

// expect peeks the next code and demands the given wire kind; want is
// the kind reported in the error.
func (r *Reader) expect(wire, want lit.Kind) error {
	kind, err := r.peekKind()
	if err != nil {
		return err
	}
	if kind != wire {
		return &lit.KindError{Want: want, Got: kind}
	}
	return nil
}

// peekKind classifies the next msgpack value without consuming it.
func (r *Reader) peekKind() (lit.Kind, error) {
	c, err := r.dec.PeekCode()
	if err != nil {
		return 0, fmt.Errorf("msgwire: read: %w", err)
	}

	switch {
	case c == msgpcode.True || c == msgpcode.False:
		return lit.KindBool, nil
	case msgpcode.IsFixedNum(c),
		c == msgpcode.Int8, c == msgpcode.Int16, c == msgpcode.Int32, c == msgpcode.Int64,
		c == msgpcode.Uint8, c == msgpcode.Uint16, c == msgpcode.Uint32, c == msgpcode.Uint64:
		return lit.KindInt, nil
	case c == msgpcode.Float, c == msgpcode.Double:
		return lit.KindFloat, nil
	case msgpcode.IsString(c):
		return lit.KindStr, nil
	default:
		return 0, fmt.Errorf("msgwire: code %x is not a scalar", c)
	}
}

// ============================================================
// Writer
// ============================================================

// Writer emits msgpack scalars into a buffer.
type Writer struct {
	buf bytes.Buffer
	enc *msgpack.Encoder
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.enc = msgpack.NewEncoder(&w.buf)
	return w
}

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteBool writes a msgpack bool.
func (w *Writer) WriteBool(v bool) error {
	return w.enc.EncodeBool(v)
}

// WriteChar writes a one-rune msgpack string.
func (w *Writer) WriteChar(v rune) error {
	return w.enc.EncodeString(string(v))
}

// WriteInt writes a msgpack int.
func (w *Writer) WriteInt(v int64) error {
	return w.enc.EncodeInt(v)
}

// WriteFloat writes a msgpack float64.
func (w *Writer) WriteFloat(v float64) error {
	return w.enc.EncodeFloat64(v)
}

// WriteStr writes a msgpack string.
func (w *Writer) WriteStr(v string) error {
	return w.enc.EncodeString(v)
}
