package main

import (
	"fmt"
	"github.com/bokysan/pumlenc/internal/args"
	"github.com/bokysan/pumlenc/internal/commands/decode"
	"github.com/bokysan/pumlenc/internal/commands/encode"
	"github.com/bokysan/pumlenc/internal/commands/version"
	pFlags "github.com/bokysan/pumlenc/internal/flags"
	"github.com/bokysan/pumlenc/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// PumlEnc is the main executable
type PumlEnc struct {
	parser *flags.Parser
	encode *encode.Command
	decode *decode.Command
}

// NewPumlEnc will create a new instance of PumlEnc and initialize the parser
func NewPumlEnc() *PumlEnc {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	pe := &PumlEnc{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	pe.setupGeneral()
	pe.setupConfig()
	pe.setupVersion()
	pe.setupEncode()
	pe.setupDecode()

	return pe
}

// setupGeneral will configure general options
func (pe *PumlEnc) setupGeneral() {
	if _, err := pe.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupConfig will read the configuration file given with `-c` into the command options
func (pe *PumlEnc) setupConfig() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := pFlags.NewYamlParser(pe.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}
}

// setupVersion adds the `version` command
func (pe *PumlEnc) setupVersion() {
	cmd := &version.Command{}
	_, err := pe.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (pe *PumlEnc) setupEncode() {
	pe.encode = encode.NewCommand()
	_, err := pe.parser.AddCommand(
		"encode",
		"Encode diagram text",
		"Encode diagram text into an URL-safe string. The text is taken from the arguments, the input file or stdin.",
		pe.encode,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (pe *PumlEnc) setupDecode() {
	pe.decode = decode.NewCommand()
	_, err := pe.parser.AddCommand(
		"decode",
		"Decode URL-safe strings",
		"Decode URL-safe strings or diagram URLs back into text. Values are taken from the arguments or stdin.",
		pe.decode,
	)
	util.MustErrorNilOrExit(err)
}

// main starts pumlenc and reads the configuration file
func main() {
	pumlEnc := NewPumlEnc()
	_, err := pumlEnc.parser.Parse()
	util.MustErrorNilOrExit(err)
}
