package union

import (
	"errors"
	"strings"
	"testing"

	"github.com/Neumenon/litwire/lit"
	"github.com/Neumenon/litwire/msgwire"
	"github.com/Neumenon/litwire/text"
)

// litAuto and litBlah mirror the shape litgen emits: one zero-field
// nominal type per literal, delegating to the lit.Match helpers.
type litAuto struct{}

func (litAuto) Kind() lit.Kind            { return lit.KindStr }
func (litAuto) Encode(w lit.Writer) error { return w.WriteStr("auto") }
func (litAuto) Decode(r lit.Reader) (lit.Unit, error) {
	return lit.MatchStr(r, "auto")
}

type litBlah struct{}

func (litBlah) Kind() lit.Kind            { return lit.KindStr }
func (litBlah) Encode(w lit.Writer) error { return w.WriteStr("blah") }
func (litBlah) Decode(r lit.Reader) (lit.Unit, error) {
	return lit.MatchStr(r, "blah")
}

// ============================================================
// Dispatch Tests
// ============================================================

func TestDecode_BranchOrdering(t *testing.T) {
	u := New(
		Branch{Name: "num", Codec: lit.Int(123)},
		Branch{Name: "yes", Codec: lit.Bool(true)},
		Branch{Name: "letter", Codec: lit.Char('z')},
		Branch{Name: "text", Codec: Any(lit.KindStr)},
	)

	tests := []struct {
		input    string
		expected string
	}{
		{"123", "num"},
		{"t", "yes"},
		{`"z"`, "letter"},
		{`"hello"`, "text"},
		{"hello", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := u.Decode([]byte(tt.input), text.Open)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if m.Name != tt.expected {
				t.Errorf("matched %q, want %q", m.Name, tt.expected)
			}
		})
	}
}

func TestDecode_CatchAllShadowsOnlyItsKind(t *testing.T) {
	// Catch-all str moved to the front: every str-kind input lands
	// there, including the char branch's letter, but non-str inputs
	// still reach their branches because kind is checked first.
	u := New(
		Branch{Name: "text", Codec: Any(lit.KindStr)},
		Branch{Name: "num", Codec: lit.Int(123)},
		Branch{Name: "yes", Codec: lit.Bool(true)},
		Branch{Name: "letter", Codec: lit.Char('z')},
	)

	tests := []struct {
		input    string
		expected string
	}{
		{`"z"`, "text"},
		{`"hello"`, "text"},
		{"123", "num"},
		{"t", "yes"},
	}

	for _, tt := range tests {
		m, err := u.Decode([]byte(tt.input), text.Open)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tt.input, err)
		}
		if m.Name != tt.expected {
			t.Errorf("Decode(%q) matched %q, want %q", tt.input, m.Name, tt.expected)
		}
	}
}

func TestDecode_FirstMatchingLiteralWins(t *testing.T) {
	u := New(
		Branch{Name: "auto", Codec: litAuto{}},
		Branch{Name: "blah", Codec: litBlah{}},
		Branch{Name: "num123", Codec: lit.Int(123)},
		Branch{Name: "pi-ish", Codec: lit.Float(3.1)},
	)

	tests := []struct {
		input    string
		expected string
	}{
		{"auto", "auto"},
		{"blah", "blah"},
		{"123", "num123"},
		{"3.1", "pi-ish"},
	}

	for _, tt := range tests {
		m, err := u.Decode([]byte(tt.input), text.Open)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tt.input, err)
		}
		if m.Name != tt.expected {
			t.Errorf("Decode(%q) matched %q, want %q", tt.input, m.Name, tt.expected)
		}
	}
}

func TestDecode_GeneratedCodecsNeverCrossAccept(t *testing.T) {
	w := text.NewWriter()
	if err := (litAuto{}).Encode(w); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := (litBlah{}).Decode(text.NewReader(w.String())); err == nil {
		t.Error("litBlah accepted litAuto's output")
	}

	w = text.NewWriter()
	if err := (litBlah{}).Encode(w); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := (litAuto{}).Decode(text.NewReader(w.String())); err == nil {
		t.Error("litAuto accepted litBlah's output")
	}
}

func TestDecode_AllBranchesFail(t *testing.T) {
	u := New(
		Branch{Name: "num", Codec: lit.Int(123)},
		Branch{Name: "yes", Codec: lit.Bool(true)},
	)

	_, err := u.Decode([]byte("999"), text.Open)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "no branch matched") {
		t.Errorf("error = %v", err)
	}

	// The last branch's failure is the one propagated: int input
	// against the bool branch is a kind error.
	var ke *lit.KindError
	if !errors.As(err, &ke) {
		t.Errorf("expected wrapped *lit.KindError, got %v", err)
	}
}

func TestDecode_Empty(t *testing.T) {
	if _, err := New().Decode([]byte("1"), text.Open); err == nil {
		t.Error("empty union decoded")
	}
}

func TestDecode_Msgpack(t *testing.T) {
	// Same union, binary wire: the dispatcher only sees the
	// reader-factory contract.
	u := New(
		Branch{Name: "num", Codec: lit.Int(123)},
		Branch{Name: "yes", Codec: lit.Bool(true)},
		Branch{Name: "letter", Codec: lit.Char('z')},
		Branch{Name: "text", Codec: Any(lit.KindStr)},
	)

	tests := []struct {
		name     string
		write    func(w *msgwire.Writer) error
		expected string
	}{
		{"int", func(w *msgwire.Writer) error { return w.WriteInt(123) }, "num"},
		{"bool", func(w *msgwire.Writer) error { return w.WriteBool(true) }, "yes"},
		{"char", func(w *msgwire.Writer) error { return w.WriteChar('z') }, "letter"},
		{"str", func(w *msgwire.Writer) error { return w.WriteStr("hello") }, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := msgwire.NewWriter()
			if err := tt.write(w); err != nil {
				t.Fatalf("write failed: %v", err)
			}
			m, err := u.Decode(w.Bytes(), msgwire.Open)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if m.Name != tt.expected {
				t.Errorf("matched %q, want %q", m.Name, tt.expected)
			}
		})
	}
}

// ============================================================
// Encode Tests
// ============================================================

func TestEncode_ByName(t *testing.T) {
	u := New(
		Branch{Name: "auto", Codec: lit.Str("auto")},
		Branch{Name: "num", Codec: lit.Int(123)},
	)

	w := text.NewWriter()
	if err := u.Encode("num", w); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if w.String() != "123" {
		t.Errorf("output = %q, want 123", w.String())
	}

	if err := u.Encode("nope", text.NewWriter()); err == nil {
		t.Error("unknown branch name accepted")
	}
}

func TestEncode_CatchAllRefuses(t *testing.T) {
	if err := Any(lit.KindStr).Encode(text.NewWriter()); err == nil {
		t.Error("catch-all encoded")
	}
}

// ============================================================
// Validate Tests
// ============================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		union   *Union
		wantErr bool
	}{
		{
			"literals before catch-all",
			New(
				Branch{Name: "num", Codec: lit.Int(123)},
				Branch{Name: "text", Codec: Any(lit.KindStr)},
			),
			false,
		},
		{
			"catch-all of another kind first",
			New(
				Branch{Name: "anyint", Codec: Any(lit.KindInt)},
				Branch{Name: "text", Codec: lit.Str("auto")},
			),
			false,
		},
		{
			"str catch-all shadows str literal",
			New(
				Branch{Name: "text", Codec: Any(lit.KindStr)},
				Branch{Name: "auto", Codec: lit.Str("auto")},
			),
			true,
		},
		{
			"str catch-all shadows char literal",
			New(
				Branch{Name: "text", Codec: Any(lit.KindStr)},
				Branch{Name: "letter", Codec: lit.Char('z')},
			),
			true,
		},
		{
			"float catch-all shadows int literal",
			New(
				Branch{Name: "anyfloat", Codec: Any(lit.KindFloat)},
				Branch{Name: "num", Codec: lit.Int(123)},
			),
			true,
		},
		{
			"int catch-all does not shadow float literal",
			New(
				Branch{Name: "anyint", Codec: Any(lit.KindInt)},
				Branch{Name: "pi-ish", Codec: lit.Float(3.1)},
			),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.union.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
