package lit

// Literal codec constructors. Go has no value-parameterized generics,
// so each codec is a small immutable value holding its bound literal.
// The bound value is fixed at construction and never mutated.

// BoolLit is a codec bound to one bool literal.
type BoolLit struct{ want bool }

// Bool returns a codec bound to the bool literal v.
func Bool(v bool) BoolLit { return BoolLit{want: v} }

func (c BoolLit) Kind() Kind { return KindBool }
func (c BoolLit) Encode(w Writer) error { return w.WriteBool(c.want) }
func (c BoolLit) Decode(r Reader) (Unit, error) { return MatchBool(r, c.want) }

// CharLit is a codec bound to one char (single rune) literal.
type CharLit struct{ want rune }

// Char returns a codec bound to the char literal v.
func Char(v rune) CharLit { return CharLit{want: v} }

func (c CharLit) Kind() Kind { return KindChar }
func (c CharLit) Encode(w Writer) error { return w.WriteChar(c.want) }
func (c CharLit) Decode(r Reader) (Unit, error) { return MatchChar(r, c.want) }

// IntLit is a codec bound to one int literal.
type IntLit struct{ want int64 }

// Int returns a codec bound to the int literal v.
func Int(v int64) IntLit { return IntLit{want: v} }

func (c IntLit) Kind() Kind { return KindInt }
func (c IntLit) Encode(w Writer) error { return w.WriteInt(c.want) }
func (c IntLit) Decode(r Reader) (Unit, error) { return MatchInt(r, c.want) }

// FloatLit is a codec bound to one float literal. Matching uses plain
// float64 ==, so a NaN literal never matches and -0.0 matches 0.0.
type FloatLit struct{ want float64 }

// Float returns a codec bound to the float literal v.
func Float(v float64) FloatLit { return FloatLit{want: v} }

func (c FloatLit) Kind() Kind { return KindFloat }
func (c FloatLit) Encode(w Writer) error { return w.WriteFloat(c.want) }
func (c FloatLit) Decode(r Reader) (Unit, error) { return MatchFloat(r, c.want) }

// StrLit is a codec bound to one str literal.
type StrLit struct{ want string }

// Str returns a codec bound to the str literal v.
func Str(v string) StrLit { return StrLit{want: v} }

func (c StrLit) Kind() Kind { return KindStr }
func (c StrLit) Encode(w Writer) error { return w.WriteStr(c.want) }
func (c StrLit) Decode(r Reader) (Unit, error) { return MatchStr(r, c.want) }

// ============================================================
// Match Helpers
// ============================================================
//
// One helper per kind: read one value, compare exactly. Shared between
// the constructors above and litgen-generated codecs so every codec
// matches the same way.

// MatchBool reads one bool from r and accepts iff it equals want.
func MatchBool(r Reader, want bool) (Unit, error) {
	got, err := r.ReadBool()
	if err != nil {
		return Unit{}, err
	}
	if got != want {
		return Unit{}, &MismatchError{Kind: KindBool, Want: want, Got: got}
	}
	return Unit{}, nil
}

// MatchChar reads one char from r and accepts iff it equals want.
func MatchChar(r Reader, want rune) (Unit, error) {
	got, err := r.ReadChar()
	if err != nil {
		return Unit{}, err
	}
	if got != want {
		return Unit{}, &MismatchError{Kind: KindChar, Want: string(want), Got: string(got)}
	}
	return Unit{}, nil
}

// MatchInt reads one int from r and accepts iff it equals want.
func MatchInt(r Reader, want int64) (Unit, error) {
	got, err := r.ReadInt()
	if err != nil {
		return Unit{}, err
	}
	if got != want {
		return Unit{}, &MismatchError{Kind: KindInt, Want: want, Got: got}
	}
	return Unit{}, nil
}

// MatchFloat reads one float from r and accepts iff it == want.
func MatchFloat(r Reader, want float64) (Unit, error) {
	got, err := r.ReadFloat()
	if err != nil {
		return Unit{}, err
	}
	if got != want {
		return Unit{}, &MismatchError{Kind: KindFloat, Want: want, Got: got}
	}
	return Unit{}, nil
}

// MatchStr reads one str from r and accepts iff it equals want.
func MatchStr(r Reader, want string) (Unit, error) {
	got, err := r.ReadStr()
	if err != nil {
		return Unit{}, err
	}
	if got != want {
		return Unit{}, &MismatchError{Kind: KindStr, Want: want, Got: got}
	}
	return Unit{}, nil
}
