package version

import (
	"github.com/bokysan/pumlenc/internal/codec"
	"github.com/bokysan/pumlenc/internal/version"
	"github.com/k0kubun/go-ansi"
	"strings"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build information
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

// detail is one label/value row printed below the banner
type detail struct {
	label string
	value string
}

// details lists the build information that is known, skipping empty values
func details() []detail {
	all := []detail{
		{"Git tag", version.GitTag},
		{"Git summary", version.GitSummary},
		{"Git branch", version.GitBranch},
		{"Git state", version.GitState},
		{"Go version", version.GoVersion},
		{"Backends", strings.Join(codec.Names(), ", ")},
	}
	res := make([]detail, 0, len(all))
	for _, d := range all {
		if d.value != "" {
			res = append(res, d)
		}
	}
	return res
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion()
	for _, d := range details() {
		ansi.Printf(DarkGray+" %-12s"+White+"%+v"+Reset+"\n", d.label, d.value)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion() {
	ansi.Printf(Bold+BackgroundBlue+
		LightGray+" PUMLENC - URL-safe diagram text encoder "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
