package codec

import (
	"github.com/bokysan/pumlenc/internal/util/enc"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Hex_EncodeSmall(t *testing.T) {
	encoded, err := NewHexBackend().Encode(plantumlSmall)
	require.NoError(t, err)
	require.Equal(t, plantumlHexSmall, encoded)
}

func Test_Hex_DecodeSmall(t *testing.T) {
	decoded, err := NewHexBackend().Decode(plantumlHexSmall)
	require.NoError(t, err)
	require.Equal(t, plantumlSmall, decoded)
}

func Test_Hex_DecodeWithoutMarker(t *testing.T) {
	decoded, err := NewHexBackend().Decode(plantumlHexSmall[len(HexMarker):])
	require.NoError(t, err)
	require.Equal(t, plantumlSmall, decoded)
}

func Test_Hex_Empty(t *testing.T) {
	h := NewHexBackend()
	encoded, err := h.Encode("")
	require.NoError(t, err)
	require.Equal(t, HexMarker, encoded)

	decoded, err := h.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "", decoded)
}

func Test_Hex_Unpad(t *testing.T) {
	h := NewHexBackend()
	require.Equal(t, []byte("4142"), h.Unpad([]byte("4142\x00\x00")))
	require.Equal(t, []byte("41"), h.Unpad([]byte("41")))
	require.Empty(t, h.Unpad([]byte{0, 0, 0}))
}

func Test_Hex_StrangeString(t *testing.T) {
	require.NotPanics(t, func() {
		_, err := NewHexBackend().Decode("some strange string")
		require.Error(t, err)
		require.Equal(t, MalformedLength, KindOf(err))
	})
}

func Test_Hex_UpstreamFailure(t *testing.T) {
	h := NewHexBackend()

	// Odd number of hex digits
	_, err := h.Decode(HexMarker + enc.EncodeBuffer([]byte("414")))
	require.Error(t, err)
	require.Equal(t, UpstreamCodecFailure, KindOf(err))
	require.Contains(t, err.Error(), "hex decoding error")

	// Not hex digits at all
	_, err = h.Decode(HexMarker + enc.EncodeBuffer([]byte("zz")))
	require.Error(t, err)
	require.Equal(t, UpstreamCodecFailure, KindOf(err))
}

func Test_Hex_InvalidSymbol(t *testing.T) {
	_, err := NewHexBackend().Decode("~hD34oC39a.sK")
	require.Error(t, err)
	require.Equal(t, MalformedLength, KindOf(err))

	_, err = NewHexBackend().Decode("~hD34oC39a.sKo")
	require.Error(t, err)
	require.Equal(t, InvalidSymbol, KindOf(err))
	require.Contains(t, err.Error(), "offset 8")
}

func Test_Hex_InvalidUtf8(t *testing.T) {
	h := NewHexBackend()
	encoded, err := h.Encode(string([]byte{0xC3, 0x28}))
	require.NoError(t, err)

	_, err = h.Decode(encoded)
	require.Error(t, err)
	require.Equal(t, InvalidUtf8, KindOf(err))
}
