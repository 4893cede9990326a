// Package nbterr defines the error taxonomy shared by the stream, tag, and
// codec layers of the NBT module. Errors are distinguished by kind rather
// than by type switch on a dozen unrelated structs, so callers can use
// errors.Is against the exported sentinels or errors.As against the kind
// they care about.
package nbterr

import "fmt"

// Kind identifies which of the four error categories a failure belongs to.
type Kind int

const (
	// KindEndOfStream: a read ran past the logical end of the stream, or a
	// write targeted a non-expandable stream beyond its capacity.
	KindEndOfStream Kind = iota
	// KindFormat: a structural or semantic violation of the NBT invariants.
	KindFormat
	// KindRange: a numeric value or enum code fell outside its declared range.
	KindRange
	// KindInvalidReaderState: codec misuse — operating on an exhausted or
	// already-failed decode/encode call. Callers must surface, not recover.
	KindInvalidReaderState
)

func (k Kind) String() string {
	switch k {
	case KindEndOfStream:
		return "EndOfStream"
	case KindFormat:
		return "FormatError"
	case KindRange:
		return "RangeError"
	case KindInvalidReaderState:
		return "InvalidReaderState"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type for all four kinds. Offset is the byte
// position in the stream where the failure occurred, or -1 if not
// applicable.
type Error struct {
	Kind    Kind
	Message string
	Offset  int64
	Wrapped error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("nbt: %s: %s (offset %d)", e.Kind, e.Message, e.Offset)
	}
	return fmt.Sprintf("nbt: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is lets errors.Is(err, nbterr.EndOfStream) etc. work against the kind
// sentinels below without comparing message text.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.Kind == e.Kind && te.Message == ""
}

// Sentinel values for errors.Is comparisons against a bare kind, e.g.
// errors.Is(err, nbterr.EndOfStream).
var (
	EndOfStream        = &Error{Kind: KindEndOfStream, Offset: -1}
	Format             = &Error{Kind: KindFormat, Offset: -1}
	Range              = &Error{Kind: KindRange, Offset: -1}
	InvalidReaderState = &Error{Kind: KindInvalidReaderState, Offset: -1}
)

// EndOfStreamf builds a KindEndOfStream error at the given offset.
func EndOfStreamf(offset int64, format string, args ...any) *Error {
	return &Error{Kind: KindEndOfStream, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// Formatf builds a KindFormat error. Pass offset -1 when no stream
// position applies (e.g. a mutation-time invariant violation).
func Formatf(offset int64, format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// Rangef builds a KindRange error.
func Rangef(offset int64, format string, args ...any) *Error {
	return &Error{Kind: KindRange, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// InvalidStatef builds a KindInvalidReaderState error.
func InvalidStatef(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidReaderState, Message: fmt.Sprintf(format, args...), Offset: -1}
}

// Wrap attaches an underlying error (e.g. from gzip/zlib) to a new error of
// the given kind.
func Wrap(kind Kind, offset int64, wrapped error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset, Wrapped: wrapped}
}

// IsKind reports whether the first *Error in err's Unwrap chain is of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
