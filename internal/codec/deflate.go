package codec

import (
	"bytes"
	"github.com/davecgh/go-spew/spew"
	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"unicode/utf8"
)

const (
	DeflateName = "deflate"

	// DefaultLevel is used unless WithLevel says otherwise. Lower levels store short texts
	// uncompressed, which makes the URL longer.
	DefaultLevel = flate.BestCompression

	// DefaultMaxDecodedSize is the largest text the deflate backend will inflate unless told otherwise
	DefaultMaxDecodedSize = 16 << 20
)

// DeflateOption configures a DeflateBackend
type DeflateOption func(d *DeflateBackend) error

// WithLevel sets the compression level. Valid levels are the ones accepted by flate.NewWriter:
// flate.HuffmanOnly, flate.DefaultCompression and flate.NoCompression up to flate.BestCompression.
func WithLevel(level int) DeflateOption {
	return func(d *DeflateBackend) error {
		if level < flate.HuffmanOnly || level > flate.BestCompression {
			return errors.Errorf("invalid compression level: %d", level)
		}
		d.level = level
		return nil
	}
}

// WithMaxDecodedSize limits the size of the decompressed text. Zero or a negative value removes
// the limit.
func WithMaxDecodedSize(size int64) DeflateOption {
	return func(d *DeflateBackend) error {
		d.maxDecodedSize = size
		return nil
	}
}

// DeflateBackend compresses the text with raw DEFLATE and packs the compressed stream into the
// alphabet. The stream carries its own end-of-block marker, so the zero bytes added when packing
// the last triplet are never read by the decompressor.
type DeflateBackend struct {
	level          int
	maxDecodedSize int64
}

func NewDeflateBackend(opts ...DeflateOption) (*DeflateBackend, error) {
	d := &DeflateBackend{
		level:          DefaultLevel,
		maxDecodedSize: DefaultMaxDecodedSize,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *DeflateBackend) Name() string {
	return DeflateName
}

func (d *DeflateBackend) String() string {
	return d.Name()
}

func (d *DeflateBackend) Marker() string {
	return ""
}

func (d *DeflateBackend) Level() int {
	return d.level
}

func (d *DeflateBackend) MaxDecodedSize() int64 {
	return d.maxDecodedSize
}

// Unpad returns the payload untouched. Trailing zeros after the final DEFLATE block are ignored
// by the decompressor.
func (d *DeflateBackend) Unpad(payload []byte) []byte {
	return payload
}

func (d *DeflateBackend) Encode(text string) (string, error) {
	var b bytes.Buffer

	w, err := flate.NewWriter(&b, d.level)
	if err != nil {
		return "", newError(OpEncode, d.Name(), UpstreamCodecFailure, errors.WithStack(err))
	}
	if _, err := io.WriteString(w, text); err != nil {
		return "", newError(OpEncode, d.Name(), UpstreamCodecFailure, errors.WithStack(err))
	}
	if err := w.Close(); err != nil {
		return "", newError(OpEncode, d.Name(), UpstreamCodecFailure, errors.WithStack(err))
	}

	log.Tracef("Compressed %d bytes of text into %d bytes", len(text), b.Len())
	return packer.Encode(b.Bytes()), nil
}

func (d *DeflateBackend) Decode(encoded string) (string, error) {
	payload, err := packer.Decode(encoded)
	if err != nil {
		return "", unpackError(d.Name(), err)
	}
	payload = d.Unpad(payload)

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Unpacked deflate payload:\n%s", spew.Sdump(payload))
	}

	r := flate.NewReader(bytes.NewReader(payload))
	defer func() {
		if err := r.Close(); err != nil {
			log.Debugf("Could not close the decompressor: %v", err)
		}
	}()

	var src io.Reader = r
	if d.maxDecodedSize > 0 {
		src = io.LimitReader(r, d.maxDecodedSize+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", newError(OpDecode, d.Name(), UpstreamCodecFailure, errors.Wrap(err, "deflate decompression error"))
	}
	if d.maxDecodedSize > 0 && int64(len(data)) > d.maxDecodedSize {
		return "", newError(OpDecode, d.Name(), UpstreamCodecFailure, errors.Errorf("decompressed text exceeds %d bytes", d.maxDecodedSize))
	}
	if !utf8.Valid(data) {
		return "", newError(OpDecode, d.Name(), InvalidUtf8, errors.New("decompressed text is not valid utf-8"))
	}

	return string(data), nil
}
