package encode

import (
	"fmt"
	"github.com/bokysan/pumlenc/internal/codec"
	"github.com/bokysan/pumlenc/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// Command encodes diagram text into an URL-safe string. Defaults are set by NewCommand and not by
// `default` tags, as go-flags would apply those over values read from the configuration file.
type Command struct {
	Backend string `yaml:"backend" short:"b" long:"backend" env:"PUMLENC_BACKEND" description:"Encoding backend" choice:"deflate" choice:"hex" default-mask:"deflate"`
	Level   int    `yaml:"level"              long:"level"   env:"PUMLENC_LEVEL"   description:"Compression level of the deflate backend, -2 (huffman only) to 9 (best)" default-mask:"9"`
	Input   string `yaml:"input"   short:"i" long:"input"   env:"PUMLENC_INPUT"   description:"Read the text from this file instead of the arguments. Use '-' for stdin."`
	Prefix  string `yaml:"prefix"  short:"p" long:"prefix"  env:"PUMLENC_PREFIX"  description:"Prepend this to the output, e.g. 'https://www.plantuml.com/plantuml/uml/'"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		Backend: codec.DeflateName,
		Level:   codec.DefaultLevel,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}
}

func (c *Command) String() string {
	return "Encode text"
}

// backend returns the configured backend. The deflate backend is created with the configured level.
func (c *Command) backend() (codec.Backend, error) {
	if strings.EqualFold(c.Backend, codec.DeflateName) {
		d, err := codec.NewDeflateBackend(codec.WithLevel(c.Level))
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	return codec.Lookup(c.Backend)
}

// text reads the text to encode, either from the arguments, the input file or stdin.
func (c *Command) text(args []string) (string, error) {
	if len(args) > 0 {
		if c.Input != "" {
			return "", errors.Errorf("Text given both as arguments and as input file %v", c.Input)
		}
		return strings.Join(args, " "), nil
	}

	var r io.Reader
	if c.Input == "" || c.Input == "-" {
		log.Debugf("Reading text from stdin")
		r = c.stdin
	} else {
		f, err := os.Open(c.Input)
		if err != nil {
			return "", errors.Wrapf(err, "Could not open %v", c.Input)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Errorf("Could not close %s: %v", c.Input, err)
			}
		}()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrapf(err, "Could not read the text")
	}
	return string(data), nil
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	b, err := c.backend()
	if err != nil {
		return err
	}

	text, err := c.text(args)
	if err != nil {
		return err
	}

	encoded, err := b.Encode(text)
	if err != nil {
		return err
	}
	log.Debugf("Encoded %d bytes of text into %d characters with %v", len(text), len(encoded), b)

	_, err = fmt.Fprintln(c.stdout, c.Prefix+encoded)
	return errors.WithStack(err)
}
