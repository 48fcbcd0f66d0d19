package codec

import (
	"fmt"
	"github.com/bokysan/pumlenc/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net/url"
	"sort"
	"strings"
)

// Backend pairs the symbol packing with one payload transform.
type Backend interface {
	fmt.Stringer

	// Name is the unique, lowercase name of the backend
	Name() string

	// Marker is the literal prefix of every string this backend produces. Empty if none.
	Marker() string

	// Encode converts the text into an URL-safe string
	Encode(text string) (string, error)

	// Decode is the reverse process of encoding
	Decode(encoded string) (string, error)

	// Unpad strips the zero bytes added when packing a payload whose length was not a multiple of
	// three. Every backend must define how it recovers the original payload.
	Unpad(payload []byte) []byte
}

var (
	ErrUnknownBackend = errors.New("unknown backend")

	// packer turns payloads into symbols and back. It is shared by all backends.
	packer enc.Encoder = &enc.Base64pEncoder{}

	backends = map[string]Backend{
		DeflateName: &DeflateBackend{
			level:          DefaultLevel,
			maxDecodedSize: DefaultMaxDecodedSize,
		},
		HexName: &HexBackend{},
	}
)

// Names returns the names of all known backends, sorted.
func Names() []string {
	res := make([]string, 0, len(backends))
	for name := range backends {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Lookup finds the backend by its (case-insensitive) name.
func Lookup(name string) (Backend, error) {
	if b, ok := backends[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b, nil
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "'%s', expected one of %v", name, Names())
}

// Detect picks the backend which produced the encoded string by looking at its marker. Strings
// without a known marker are assumed to be deflated.
func Detect(encoded string) Backend {
	for _, name := range Names() {
		b := backends[name]
		if b.Marker() != "" && strings.HasPrefix(encoded, b.Marker()) {
			return b
		}
	}
	return backends[DeflateName]
}

// Encode encodes the text with the named backend.
func Encode(name, text string) (string, error) {
	b, err := Lookup(name)
	if err != nil {
		return "", err
	}
	log.Debugf("Encoding %d bytes of text with %v", len(text), b)
	return b.Encode(text)
}

// Decode decodes the string with the backend selected by Detect.
func Decode(encoded string) (string, error) {
	b := Detect(encoded)
	log.Debugf("Decoding %d characters with %v", len(encoded), b)
	return b.Decode(encoded)
}

// ExtractEncoded returns the encoded part of a diagram URL, e.g. for
// "https://example.com/uml/SrJGjLDmibBmICt9oGS0?x=1" it returns "SrJGjLDmibBmICt9oGS0". Strings
// which are not URLs are returned trimmed but otherwise unchanged.
func ExtractEncoded(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if strings.IndexByte(s, '%') >= 0 {
		if unescaped, err := url.PathUnescape(s); err == nil {
			s = unescaped
		}
	}
	return s
}
