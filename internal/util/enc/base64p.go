package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// EncodedLen returns the length of the string EncodeBuffer produces for n bytes of input.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes DecodeBuffer produces for an encoded string of n
// characters. n must be a multiple of 4.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// EncodeBuffer packs the data, three bytes at a time, into symbols of the Alphabet. When the
// length of data is not a multiple of three, the last group is padded with zero bytes. The amount
// of padding is not recorded anywhere, so it is up to the caller to be able to recover the
// original length.
func EncodeBuffer(data []byte) string {
	dst := make([]byte, EncodedLen(len(data)))

	di, si := 0, 0
	n := (len(data) / 3) * 3
	for si < n {
		packTriplet(dst[di:], data[si], data[si+1], data[si+2])
		si += 3
		di += 4
	}

	switch len(data) - si {
	case 2:
		packTriplet(dst[di:], data[si], data[si+1], 0)
	case 1:
		packTriplet(dst[di:], data[si], 0, 0)
	}

	return string(dst)
}

// DecodeBuffer unpacks a string created by EncodeBuffer. The result is always a multiple of three
// bytes long and will contain any zero bytes added as padding during encoding.
func DecodeBuffer(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, errors.Wrapf(ErrMalformedLength, "got %d characters", len(s))
	}

	dst := make([]byte, DecodedLen(len(s)))
	for si, di := 0, 0; si < len(s); si, di = si+4, di+3 {
		b1, b2, b3, bad, ok := unpackQuadruplet(s[si : si+4])
		if !ok {
			return nil, errors.WithStack(&SymbolError{
				Offset: si + bad,
				Symbol: s[si+bad],
			})
		}
		dst[di], dst[di+1], dst[di+2] = b1, b2, b3
	}

	return dst, nil
}

// -------------------------------------------------------

var _ Encoder = &Base64pEncoder{}

// Base64pEncoder encodes 3 bytes to 4 characters, using digits first, then upper and lower case
// letters, then '-' and '_'. No padding characters are ever output.
type Base64pEncoder struct {
}

func (b *Base64pEncoder) Name() string {
	return "Base64p"
}

func (b *Base64pEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64pEncoder) Code() byte {
	return 'P'
}

func (b *Base64pEncoder) Encode(data []byte) string {
	return EncodeBuffer(data)
}

func (b *Base64pEncoder) Decode(data string) ([]byte, error) {
	return DecodeBuffer(data)
}

func (b *Base64pEncoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64pEncoder) BlocksizeEncoded() int {
	return 4
}

func (b *Base64pEncoder) TestPatterns() []string {
	return []string{
		"0aA9zZ-_",
		Alphabet,
	}
}

func (b *Base64pEncoder) Ratio() float64 {
	return 4.0 / 3.0
}
