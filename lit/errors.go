package lit

import "fmt"

// KindError reports that the next input value is not of the kind the
// reader was asked for. It is produced by Reader implementations and
// never retried or corrected here.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("lit: expected %s, got %s", e.Want, e.Got)
}

// MismatchError reports that the input had the right kind but a value
// other than the bound literal. Both values are kept for diagnostics.
type MismatchError struct {
	Kind Kind
	Want any
	Got  any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("lit: expected %s literal %v, got %v", e.Kind, e.Want, e.Got)
}
