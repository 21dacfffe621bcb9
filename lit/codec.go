package lit

// Unit is the decoded result of a successful literal match. It carries
// no data; it only signals that the branch accepted the input.
type Unit struct{}

// Writer is a primitive value sink. Each call writes exactly one
// scalar; the wire representation is the implementation's business.
type Writer interface {
	WriteBool(v bool) error
	WriteChar(v rune) error
	WriteInt(v int64) error
	WriteFloat(v float64) error
	WriteStr(v string) error
}

// Reader is a primitive value source. Each call consumes exactly one
// scalar. A read of the wrong kind fails with *KindError and must not
// coerce (a str is never a number, a number is never a str). The one
// sanctioned widening is ReadFloat accepting an int value as float.
type Reader interface {
	ReadBool() (bool, error)
	ReadChar() (rune, error)
	ReadInt() (int64, error)
	ReadFloat() (float64, error)
	ReadStr() (string, error)
}

// Codec encodes and decodes exactly one bound literal value.
type Codec interface {
	// Kind reports the primitive kind of the bound literal.
	Kind() Kind

	// Encode writes the bound literal to w.
	Encode(w Writer) error

	// Decode reads one primitive of the codec's kind from r and
	// accepts iff it equals the bound literal.
	Decode(r Reader) (Unit, error)
}
