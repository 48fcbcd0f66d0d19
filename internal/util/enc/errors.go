package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedLength is returned when the encoded input is not made of whole quadruplets
	ErrMalformedLength = errors.New("encoded length is not a multiple of 4")

	// ErrInvalidSymbol is matched by every SymbolError
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// SymbolError reports a character found in the input which is not part of the Alphabet.
type SymbolError struct {
	Offset int
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at offset %d", e.Symbol, e.Offset)
}

// Is makes errors.Is(err, ErrInvalidSymbol) work for any SymbolError.
func (e *SymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}
