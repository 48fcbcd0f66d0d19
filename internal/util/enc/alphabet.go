package enc

const (
	// Alphabet is the ordered list of symbols. The index of a symbol is its 6-bit value.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

	invalidSymbol = 0xFF
)

// reverseAlphabet maps every possible byte back to its 6-bit value, or to invalidSymbol.
var reverseAlphabet [256]byte

func init() {
	for i := range reverseAlphabet {
		reverseAlphabet[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		reverseAlphabet[Alphabet[i]] = byte(i)
	}
}

// SymbolOf returns the symbol for the given 6-bit value. Only the lowest 6 bits of the argument
// are taken into account.
func SymbolOf(v byte) byte {
	return Alphabet[v&0x3F]
}

// ValueOf returns the 6-bit value of the given symbol. The second return value is false if the
// symbol is not part of the alphabet.
func ValueOf(c byte) (byte, bool) {
	v := reverseAlphabet[c]
	return v, v != invalidSymbol
}
