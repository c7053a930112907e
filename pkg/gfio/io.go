// Package gfio opens input and output files named by command line flags,
// treating the special values "stdin" and "stdout" as the standard
// streams and folding the flag's name into any error message
package gfio

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func flagString(flag pflag.Flag) string {
	if flag.Shorthand == "" {
		return "--" + flag.Name
	}
	return "-" + flag.Shorthand + " / --" + flag.Name
}

// OpenIn opens the file named by flag for reading, or returns os.Stdin
// when the flag's value is "stdin".
func OpenIn(flag pflag.Flag) (*os.File, error) {
	name := flag.Value.String()
	if name == "stdin" {
		return os.Stdin, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%s %w", flagString(flag), err)
	}
	return f, nil
}

// OpenOut creates the file named by flag for writing, or returns
// os.Stdout when the flag's value is "stdout".
func OpenOut(flag pflag.Flag) (*os.File, error) {
	name := flag.Value.String()
	if name == "stdout" {
		return os.Stdout, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("%s %w", flagString(flag), err)
	}
	return f, nil
}
