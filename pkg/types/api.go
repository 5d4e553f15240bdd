package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidVolume ErrKind = iota // non-finite or inverted bounding-volume corners
	ErrKindDuplicate                    // the same object identifier supplied twice
	ErrKindFormat                       // malformed scene input (bad YAML/JSON, wrong arity)
	ErrKindNotFound                     // missing file or object
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidVolume:
		return "invalid volume"
	case ErrKindDuplicate:
		return "duplicate"
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, types.ErrInvalidVolume) matches any invalid-volume error
// regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around cause.
func Wrap(kind ErrKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidVolume indicates a bounding volume with non-finite coordinates
	// or a lower corner above its upper corner on some axis.
	ErrInvalidVolume = &Error{Kind: ErrKindInvalidVolume, Msg: "invalid bounding volume"}
	// ErrDuplicate indicates an identifier that appears more than once.
	ErrDuplicate = &Error{Kind: ErrKindDuplicate, Msg: "duplicate identifier"}
	// ErrFormat indicates scene input that could not be decoded.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed scene"}
	// ErrNotFound indicates a missing file or object.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)
