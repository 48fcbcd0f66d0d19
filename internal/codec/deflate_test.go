package codec

import (
	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func newDeflate(t *testing.T, opts ...DeflateOption) *DeflateBackend {
	d, err := NewDeflateBackend(opts...)
	require.NoError(t, err)
	return d
}

func Test_Deflate_DecodeSmall(t *testing.T) {
	decoded, err := newDeflate(t).Decode(plantumlDeflatedSmall)
	require.NoError(t, err)
	require.Equal(t, plantumlSmall, decoded)
}

func Test_Deflate_EncodeSmall(t *testing.T) {
	d := newDeflate(t)
	encoded, err := d.Encode(plantumlSmall)
	require.NoError(t, err)
	assertEncodedForm(t, d, encoded)

	decoded, err := d.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, plantumlSmall, decoded)
}

func Test_Deflate_EncodeSmallDefaultLevel(t *testing.T) {
	// Short texts get a Huffman coded block at the default level instead of a stored one.
	// The stream still ends with an empty stored block, hence the trailing symbols.
	encoded, err := newDeflate(t).Encode(plantumlSmall)
	require.NoError(t, err)
	require.Equal(t, "SbJGjLDmibBmICt9oGSC0000", encoded)

	stored, err := newDeflate(t, WithLevel(flate.DefaultCompression)).Encode(plantumlSmall)
	require.NoError(t, err)
	require.Equal(t, "00q0ylz182q-848w84XbR6nl0m00", stored)
	require.Less(t, len(encoded), len(stored))
}

func Test_Deflate_Large(t *testing.T) {
	d := newDeflate(t)
	encoded, err := d.Encode(plantumlLarge)
	require.NoError(t, err)
	require.Less(t, len(encoded), len(plantumlLarge), "Text should have been compressed")

	decoded, err := d.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, plantumlLarge, decoded)
}

func Test_Deflate_Levels(t *testing.T) {
	for level := flate.HuffmanOnly; level <= flate.BestCompression; level++ {
		d := newDeflate(t, WithLevel(level))
		require.Equal(t, level, d.Level())

		encoded, err := d.Encode(plantumlLarge)
		require.NoErrorf(t, err, "Could not encode at level %d", level)
		decoded, err := d.Decode(encoded)
		require.NoErrorf(t, err, "Could not decode at level %d", level)
		require.Equal(t, plantumlLarge, decoded)
	}

	_, err := NewDeflateBackend(WithLevel(10))
	require.Error(t, err)
	_, err = NewDeflateBackend(WithLevel(-3))
	require.Error(t, err)
}

func Test_Deflate_DecompressionError(t *testing.T) {
	var decoded string
	var err error
	require.NotPanics(t, func() {
		decoded, err = newDeflate(t).Decode("4444")
	})
	require.Error(t, err)
	require.Empty(t, decoded)
	require.Equal(t, UpstreamCodecFailure, KindOf(err))
	require.Contains(t, err.Error(), "deflate decompression error")

	_, err = newDeflate(t).Decode("")
	require.Equal(t, UpstreamCodecFailure, KindOf(err))
}

func Test_Deflate_StrangeString(t *testing.T) {
	require.NotPanics(t, func() {
		_, err := newDeflate(t).Decode("some strange string")
		require.Error(t, err)
		require.Equal(t, MalformedLength, KindOf(err))

		var codecErr *Error
		require.True(t, errors.As(err, &codecErr))
		require.Equal(t, DeflateName, codecErr.Backend)
		require.Equal(t, OpDecode, codecErr.Op)
	})
}

func Test_Deflate_InvalidSymbol(t *testing.T) {
	_, err := newDeflate(t).Decode("SrJGjLDm+bBmICt9oGS0")
	require.Error(t, err)
	require.Equal(t, InvalidSymbol, KindOf(err))
	require.Contains(t, err.Error(), "offset 8")
}

func Test_Deflate_InvalidUtf8(t *testing.T) {
	d := newDeflate(t)
	encoded, err := d.Encode(string([]byte{0xFF, 0xFE, 'a'}))
	require.NoError(t, err)

	_, err = d.Decode(encoded)
	require.Error(t, err)
	require.Equal(t, InvalidUtf8, KindOf(err))
}

func Test_Deflate_MaxDecodedSize(t *testing.T) {
	text := strings.Repeat("A -> B\n", 20)

	d := newDeflate(t, WithMaxDecodedSize(int64(len(text))))
	require.Equal(t, int64(len(text)), d.MaxDecodedSize())
	encoded, err := d.Encode(text)
	require.NoError(t, err)
	decoded, err := d.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, text, decoded)

	d = newDeflate(t, WithMaxDecodedSize(int64(len(text)-1)))
	_, err = d.Decode(encoded)
	require.Error(t, err)
	require.Equal(t, UpstreamCodecFailure, KindOf(err))

	d = newDeflate(t, WithMaxDecodedSize(0))
	decoded, err = d.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, text, decoded)
}

func Test_Deflate_ToleratesTrailingZeros(t *testing.T) {
	// Two extra quadruplets of zero bytes after the end of the stream
	decoded, err := newDeflate(t).Decode(plantumlDeflatedSmall + "00000000")
	require.NoError(t, err)
	require.Equal(t, plantumlSmall, decoded)
}
