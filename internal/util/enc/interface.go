package enc

// Encoder turns raw bytes into printable text and back.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding. The result may be longer than the original input
	// when the encoder pads partial blocks without recording how much padding was added.
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of characters) output by this encoder for every input block
	BlocksizeEncoded() int

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}
