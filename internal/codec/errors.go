package codec

import (
	"fmt"
	"github.com/bokysan/pumlenc/internal/util/enc"
	"github.com/pkg/errors"
)

// Kind classifies the failures a backend can report.
type Kind int

const (
	KindUnknown Kind = iota
	// MalformedLength means the encoded string is not made of whole quadruplets
	MalformedLength
	// InvalidSymbol means the encoded string contains a character outside of the alphabet
	InvalidSymbol
	// UpstreamCodecFailure means the compressor or the hex codec rejected its input
	UpstreamCodecFailure
	// InvalidUtf8 means the decoded payload is not valid UTF-8 text
	InvalidUtf8
)

func (k Kind) String() string {
	switch k {
	case MalformedLength:
		return "malformed length"
	case InvalidSymbol:
		return "invalid symbol"
	case UpstreamCodecFailure:
		return "upstream codec failure"
	case InvalidUtf8:
		return "invalid utf-8"
	default:
		return "unknown error"
	}
}

const (
	OpEncode = "encode"
	OpDecode = "decode"
)

// Error is returned by every backend operation that fails.
type Error struct {
	Op      string
	Backend string
	Kind    Kind
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Backend, e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause allows errors.Cause to look through the Error
func (e *Error) Cause() error {
	return e.Err
}

// KindOf returns the Kind of the given error. Errors coming straight from the enc package are
// classified as well.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var codecErr *Error
	if errors.As(err, &codecErr) {
		return codecErr.Kind
	}
	if errors.Is(err, enc.ErrMalformedLength) {
		return MalformedLength
	}
	if errors.Is(err, enc.ErrInvalidSymbol) {
		return InvalidSymbol
	}
	return KindUnknown
}

func newError(op, backend string, kind Kind, err error) error {
	return errors.WithStack(&Error{
		Op:      op,
		Backend: backend,
		Kind:    kind,
		Err:     err,
	})
}

// unpackError wraps the error returned from enc.DecodeBuffer
func unpackError(backend string, err error) error {
	kind := KindOf(err)
	if kind == KindUnknown {
		kind = UpstreamCodecFailure
	}
	return newError(OpDecode, backend, kind, err)
}
