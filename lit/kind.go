package lit

// Kind classifies the primitive representation a codec reads and writes.
type Kind uint8

const (
	KindBool Kind = iota
	KindChar
	KindInt
	KindFloat
	KindStr
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	default:
		return "unknown"
	}
}
