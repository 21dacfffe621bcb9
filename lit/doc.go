// Package lit implements literal-constrained codecs: stateless codecs
// that encode exactly one fixed primitive value and decode only input
// that equals it. They are the branch primitives for untagged unions,
// where the wire form carries no discriminator and the decoder must
// infer the branch by trial.
//
// # Data Model
//
// Kinds: bool, char, int, float, str
//
// A literal codec binds one (Kind, value) pair at construction and
// never changes it. Two codecs bound to different pairs are never
// interchangeable, even when the values look alike: Int(123) and
// Str("123") are unrelated codecs and neither accepts the other's
// output.
//
// # Contract
//
// Encode writes the bound literal through a Writer and nothing else.
// Decode reads one primitive of the codec's kind from a Reader:
//   - a *KindError if the next value is not of that kind (no coercion
//     across kinds, ever)
//   - a *MismatchError if the kind matches but the value differs
//   - Unit on an exact match
//
// # Wire Formats
//
// The encoded representation is owned entirely by the Reader/Writer
// implementation. This repo ships three: text (LIT-T scalars),
// jsonwire (JSON scalars), and msgwire (MessagePack scalars).
//
// # Float Equality
//
// Float literals match by plain float64 ==. Consequently -0.0 matches
// 0.0, and a NaN literal matches nothing; the litgen generator rejects
// NaN and Inf literals outright.
//
// # Concurrency
//
// Codecs are immutable values. Any codec may be used from any number
// of goroutines concurrently; all state lives in the caller-supplied
// Reader/Writer.
package lit
