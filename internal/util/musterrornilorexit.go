package util

import (
	"github.com/bokysan/pumlenc/internal/codec"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrMalformedInput = 2
	ErrUpstreamCodec  = 3
	ErrInvalidUtf8    = 4
	ErrGeneric        = 99
)

// ExitCode returns the process exit code for the given error. Error codes are unwrapped from
// `flags.Error` objects. Encoding errors are mapped by their kind. Anything else maps to a generic
// error code - 99.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	switch codec.KindOf(err) {
	case codec.MalformedLength, codec.InvalidSymbol:
		return ErrMalformedInput
	case codec.UpstreamCodecFailure:
		return ErrUpstreamCodec
	case codec.InvalidUtf8:
		return ErrInvalidUtf8
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code returned
// by ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
