package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser fills the options of go-flags commands from a YAML file instead of a standard INI.
// Every top-level key of the YAML document names a command (e.g. `encode:`), and its value is
// unmarshalled into that command's option struct.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	log.Debugf("Reading configuration from %v", filename)

	// Files referenced from the YAML are resolved relative to the configuration file
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// ParseString parses options from an in-memory YAML document.
func (y *YamlParser) ParseString(config string) error {
	return y.Parse(strings.NewReader(config))
}

// Parse reads YAML documents one after another from the reader. Multiple documents may be
// separated by triple dashes (`---`); later documents override earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every key of the document with a command and fills its options.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownCommand,
				Message: fmt.Sprintf("could not find command '%s'", name),
			})
		}

		data, err := commandData(command)
		if err != nil {
			return err
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data); err != nil {
			return errors.Wrapf(err, "Invalid options for command '%s'", name)
		}
	}
	return nil
}

// commandData returns the pointer to the option struct the command was registered with. The flags
// library does not expose it, so it is read from the unexported field of the group.
func commandData(command *flags.Command) (interface{}, error) {
	group := reflect.Indirect(reflect.ValueOf(command.Group))
	dataField := group.FieldByName("data")
	if !dataField.IsValid() {
		return nil, errors.Errorf("could not access options of command '%s'", command.Name)
	}
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface(), nil
}
