// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/dexgodisasm/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("dexgodisasm", flag.ContinueOnError)
	flags.SetOutput(nopWriter{})

	var opts options.Program
	var baseAddress string
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "batch process files matching pattern (e.g. *.bin)")
	flags.StringVar(&baseAddress, "addr", "0", "address of the first byte of the code block, hexadecimal")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	err := flags.Parse(args)
	remaining := flags.Args()
	if err != nil || (len(remaining) == 0 && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(remaining); err != nil {
		return opts, err
	}

	opts.BaseAddress, err = strconv.ParseUint(strings.TrimPrefix(baseAddress, "0x"), 16, 64)
	if err != nil {
		return opts, &UsageError{msg: fmt.Sprintf("Invalid base address '%s'", baseAddress)}
	}

	if opts.Batch == "" {
		opts.Input = remaining[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command usage and its flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: dexgodisasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
