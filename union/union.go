// Package union implements untagged sum-type dispatch over literal
// codecs. The wire form carries no discriminator: Decode replays the
// input against each branch in declaration order and the first branch
// that accepts wins.
//
// Branch ordering is correctness-critical. A literal branch must come
// before any catch-all that shadows it: Any(KindStr) before Str("auto")
// means "auto" always lands in the catch-all. Validate reports such
// misordering; it also knows that int input widens into float reads and
// that one-rune strings read as chars, so Any(KindFloat) shadows int
// literals and Any(KindStr) shadows char literals.
package union

import (
	"fmt"

	"github.com/Neumenon/litwire/lit"
)

// OpenFunc opens a fresh reader over the same input. Decode calls it
// once per attempted branch, serde-style buffer and replay.
type OpenFunc func(data []byte) lit.Reader

// Branch is one named alternative of a union.
type Branch struct {
	Name  string
	Codec lit.Codec
}

// Match identifies the branch that accepted the input.
type Match struct {
	Index int
	Name  string
}

// Union is an ordered list of branches.
type Union struct {
	branches []Branch
}

// New creates a union with the given branches, tried in order.
func New(branches ...Branch) *Union {
	return &Union{branches: branches}
}

// Decode tries each branch against data, opening a fresh reader per
// attempt. It returns the first branch that accepts; if every branch
// fails, the last branch's failure is propagated.
func (u *Union) Decode(data []byte, open OpenFunc) (Match, error) {
	if len(u.branches) == 0 {
		return Match{}, fmt.Errorf("union: no branches")
	}

	var lastErr error
	for i, b := range u.branches {
		if _, err := b.Codec.Decode(open(data)); err != nil {
			lastErr = err
			continue
		}
		return Match{Index: i, Name: b.Name}, nil
	}
	return Match{}, fmt.Errorf("union: no branch matched: %w", lastErr)
}

// Encode writes the named branch's literal to w. The caller chooses
// the branch; the union never does.
func (u *Union) Encode(name string, w lit.Writer) error {
	for _, b := range u.branches {
		if b.Name == name {
			return b.Codec.Encode(w)
		}
	}
	return fmt.Errorf("union: no branch named %q", name)
}

// Len returns the number of branches.
func (u *Union) Len() int {
	return len(u.branches)
}

// wildcard is implemented by catch-all codecs.
type wildcard interface {
	wildcard()
}

// Validate checks branch ordering: no catch-all may precede a literal
// branch it would shadow.
func (u *Union) Validate() error {
	// Kinds whose input a catch-all of the keyed kind also consumes.
	shadows := map[lit.Kind][]lit.Kind{
		lit.KindBool:  {lit.KindBool},
		lit.KindChar:  {lit.KindChar},
		lit.KindInt:   {lit.KindInt},
		lit.KindFloat: {lit.KindFloat, lit.KindInt},
		lit.KindStr:   {lit.KindStr, lit.KindChar},
	}

	seen := map[lit.Kind]string{} // shadowed kind -> catch-all branch name
	for _, b := range u.branches {
		if _, ok := b.Codec.(wildcard); ok {
			for _, k := range shadows[b.Codec.Kind()] {
				if _, dup := seen[k]; !dup {
					seen[k] = b.Name
				}
			}
			continue
		}
		if by, ok := seen[b.Codec.Kind()]; ok {
			return fmt.Errorf("union: branch %q is unreachable, shadowed by catch-all %q", b.Name, by)
		}
	}
	return nil
}

// AnyLit is a catch-all codec: it accepts any value of one kind and
// discards it. Catch-alls have no bound literal and cannot encode.
type AnyLit struct {
	kind lit.Kind
}

// Any returns a catch-all codec for the given kind.
func Any(k lit.Kind) AnyLit { return AnyLit{kind: k} }

func (c AnyLit) Kind() lit.Kind { return c.kind }

func (AnyLit) wildcard() {}

// Encode fails: a catch-all has no literal to write.
func (c AnyLit) Encode(w lit.Writer) error {
	return fmt.Errorf("union: catch-all %s branch cannot encode", c.kind)
}

// Decode reads and discards one value of the catch-all's kind.
func (c AnyLit) Decode(r lit.Reader) (lit.Unit, error) {
	var err error
	switch c.kind {
	case lit.KindBool:
		_, err = r.ReadBool()
	case lit.KindChar:
		_, err = r.ReadChar()
	case lit.KindInt:
		_, err = r.ReadInt()
	case lit.KindFloat:
		_, err = r.ReadFloat()
	case lit.KindStr:
		_, err = r.ReadStr()
	default:
		err = fmt.Errorf("union: unknown kind %d", c.kind)
	}
	if err != nil {
		return lit.Unit{}, err
	}
	return lit.Unit{}, nil
}
