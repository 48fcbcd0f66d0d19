package codec

import (
	"bytes"
	"encoding/hex"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
	"unicode/utf8"
)

const (
	HexName = "hex"

	// HexMarker prefixes every string produced by the hex backend
	HexMarker = "~h"
)

// HexBackend packs the lowercase hex representation of the text into the alphabet. Hex digits are
// never zero bytes, so the zero padding of the last triplet can always be cut off.
type HexBackend struct {
}

func NewHexBackend() *HexBackend {
	return &HexBackend{}
}

func (h *HexBackend) Name() string {
	return HexName
}

func (h *HexBackend) String() string {
	return h.Name()
}

func (h *HexBackend) Marker() string {
	return HexMarker
}

// Unpad removes all trailing zero bytes from the payload.
func (h *HexBackend) Unpad(payload []byte) []byte {
	return bytes.TrimRight(payload, "\x00")
}

func (h *HexBackend) Encode(text string) (string, error) {
	digits := hex.EncodeToString([]byte(text))
	return HexMarker + packer.Encode([]byte(digits)), nil
}

// Decode accepts the encoded string with or without the leading marker.
func (h *HexBackend) Decode(encoded string) (string, error) {
	payload, err := packer.Decode(strings.TrimPrefix(encoded, HexMarker))
	if err != nil {
		return "", unpackError(h.Name(), err)
	}
	payload = h.Unpad(payload)

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Unpacked hex payload:\n%s", spew.Sdump(payload))
	}

	data := make([]byte, hex.DecodedLen(len(payload)))
	if _, err := hex.Decode(data, payload); err != nil {
		return "", newError(OpDecode, h.Name(), UpstreamCodecFailure, errors.Wrap(err, "hex decoding error"))
	}
	if !utf8.Valid(data) {
		return "", newError(OpDecode, h.Name(), InvalidUtf8, errors.New("decoded text is not valid utf-8"))
	}

	return string(data), nil
}
