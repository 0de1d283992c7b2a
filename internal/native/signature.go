package native

import "fmt"

// ArgKind describes one position in a native call signature.
type ArgKind uint8

const (
	// ScalarArg is a float64 passed by value.
	ScalarArg ArgKind = iota

	// ArrayArg is a float64 slice passed as a (pointer, length) pair. The
	// pointer refers to scoped arena memory, never to a Go slice.
	ArrayArg
)

func (k ArgKind) String() string {
	switch k {
	case ScalarArg:
		return "scalar"
	case ArrayArg:
		return "array"
	default:
		return fmt.Sprintf("ArgKind(%d)", uint8(k))
	}
}

// CallSignature is the calling contract of one native operation: an ordered
// list of argument kinds and an implicit float64 return. Signatures are built
// once at bind time and immutable afterward.
type CallSignature struct {
	args []ArgKind
}

// Sig constructs a CallSignature from the given argument kinds.
func Sig(kinds ...ArgKind) CallSignature {
	return CallSignature{args: kinds}
}

// Arity returns the number of logical arguments. Array arguments count as
// one even though they expand to a (pointer, length) pair on the wire.
func (s CallSignature) Arity() int { return len(s.args) }

// Kind returns the argument kind at position i.
func (s CallSignature) Kind(i int) ArgKind { return s.args[i] }

// shape is a compact key used to select the bind-time trampoline: one letter
// per argument, "a" for array and "s" for scalar.
func (s CallSignature) shape() string {
	buf := make([]byte, len(s.args))
	for i, k := range s.args {
		if k == ArrayArg {
			buf[i] = 'a'
		} else {
			buf[i] = 's'
		}
	}
	return string(buf)
}

// validate checks arity and per-position kind of args against the signature.
// It must run before any native memory is allocated for the call.
func (s CallSignature) validate(args []Value) error {
	if len(args) != len(s.args) {
		return fmt.Errorf("%w: got %d arguments, want %d", ErrSignatureMismatch, len(args), len(s.args))
	}
	for i, a := range args {
		if a.kind != s.args[i] {
			return fmt.Errorf("%w: argument %d is %s, want %s", ErrSignatureMismatch, i, a.kind, s.args[i])
		}
	}
	return nil
}

// Value is one marshalled argument: a scalar float64 or a float64 array.
type Value struct {
	kind   ArgKind
	scalar float64
	array  []float64
}

// Scalar wraps a float64 argument.
func Scalar(v float64) Value {
	return Value{kind: ScalarArg, scalar: v}
}

// Array wraps a float64 slice argument. The slice is copied into arena
// memory at invocation time; the caller keeps ownership of the slice.
func Array(v []float64) Value {
	return Value{kind: ArrayArg, array: v}
}
