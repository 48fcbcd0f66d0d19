package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"testing"
)

type generalOptions struct {
	Experimental bool   `long:"experimental" description:"Enable experimental features"`
	File         string `long:"file"`
}

func newParser(t *testing.T) (*YamlParser, *generalOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	data := &generalOptions{}
	_, err := parser.AddCommand("general", "General", "General options", data)
	require.NoErrorf(t, err, "Could not add general group")
	return NewYamlParser(parser), data
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	yamlParser, data := newParser(t)
	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, data.Experimental, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", data.File, "Invalid reading of string value")
}

func Test_InvalidGeneralParse(t *testing.T) {
	file := "testdata/invalid_general.yml"

	yamlParser, _ := newParser(t)
	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	yamlParser, _ := newParser(t)
	err := yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	yamlParser, _ := newParser(t)
	err := yamlParser.ParseFile("testdata/does_not_exist.yml")
	require.Error(t, err)
}

func Test_MultipleDocuments(t *testing.T) {
	yamlParser, data := newParser(t)
	err := yamlParser.ParseFile("testdata/multi.yml")
	require.NoError(t, err)
	require.Equal(t, "second.txt", data.File)
}

func Test_ParseString(t *testing.T) {
	yamlParser, data := newParser(t)
	err := yamlParser.ParseString("general:\n  file: inline.txt\n")
	require.NoError(t, err)
	require.Equal(t, "inline.txt", data.File)
	require.False(t, data.Experimental)
}
