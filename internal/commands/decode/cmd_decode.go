package decode

import (
	"fmt"
	"github.com/bokysan/pumlenc/internal/codec"
	"github.com/bokysan/pumlenc/internal/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

const BackendAuto = "auto"

// Command decodes URL-safe strings (or whole diagram URLs) back into text.
type Command struct {
	Backend string `yaml:"backend" short:"b" long:"backend"  env:"PUMLENC_BACKEND"  description:"Decoding backend. 'auto' picks hex for strings starting with '~h' and deflate otherwise." choice:"auto" choice:"deflate" choice:"hex" default-mask:"auto"`
	MaxSize int64  `yaml:"maxsize"           long:"max-size" env:"PUMLENC_MAX_SIZE" description:"Maximum size of the decompressed text in bytes, 0 for no limit" default-mask:"16777216"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		Backend: BackendAuto,
		MaxSize: codec.DefaultMaxDecodedSize,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}
}

func (c *Command) String() string {
	return "Decode text"
}

func (c *Command) backend(encoded string) (codec.Backend, error) {
	name := c.Backend
	if name == "" || strings.EqualFold(name, BackendAuto) {
		name = codec.Detect(encoded).Name()
	}
	if strings.EqualFold(name, codec.DeflateName) {
		d, err := codec.NewDeflateBackend(codec.WithMaxDecodedSize(c.MaxSize))
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	return codec.Lookup(name)
}

func (c *Command) decode(input string) (string, error) {
	encoded := codec.ExtractEncoded(input)
	b, err := c.backend(encoded)
	if err != nil {
		return "", err
	}
	log.Debugf("Decoding %q with %v", encoded, b)
	return b.Decode(encoded)
}

// Execute decodes every argument, or a single value read from stdin. Every value is attempted
// and all failures are returned together.
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	inputs := args
	if len(inputs) == 0 {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return errors.Wrapf(err, "Could not read stdin")
		}
		inputs = []string{string(data)}
	}

	var errs error
	for i, input := range inputs {
		text, err := c.decode(input)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode value #%d", i+1))
			continue
		}
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		if _, err := fmt.Fprint(c.stdout, text); err != nil {
			return errors.WithStack(err)
		}
	}

	return errs
}
