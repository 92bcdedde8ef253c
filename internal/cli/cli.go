// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/hexbin/internal/options"
)

// maxAddressSpace is the first value past the 32 bit address space.
const maxAddressSpace = 1 << 32

// ParseFlags parses command line flags and positional arguments into program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[1:])
}

func parseArgs(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("hexbin", flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args)
	positional := flags.Args()
	if err != nil || len(positional) != 4 {
		return opts, &UsageError{flags: flags}
	}

	opts.Input = positional[0]
	opts.Output = positional[1]

	start, err := parseHexArg(positional[2])
	if err != nil {
		return opts, fmt.Errorf("invalid start address %q: %w", positional[2], err)
	}
	size, err := parseHexArg(positional[3])
	if err != nil {
		return opts, fmt.Errorf("invalid size %q: %w", positional[3], err)
	}

	if err := validateWindow(start, size); err != nil {
		return opts, err
	}

	opts.Start = uint32(start)
	opts.Size = uint32(size)
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

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: hexbin [options] <input.hex> <output.bin> <start address hex> <size hex>\n")
	fmt.Printf("example: hexbin app.hex app.bin 0x08000000 0xE738\n\n")
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	if e.flags != nil {
		e.flags.PrintDefaults()
		fmt.Println()
	}
}

// parseHexArg parses a window argument as hexadecimal, the 0x prefix is
// accepted but not required.
func parseHexArg(arg string) (uint64, error) {
	if len(arg) >= 2 && (arg[:2] == "0x" || arg[:2] == "0X") {
		arg = arg[2:]
	}
	value, err := strconv.ParseUint(arg, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing hex number: %w", err)
	}
	return value, nil
}

// validateWindow rejects windows that could never produce a usable image.
// The window end is checked in 64 bit to catch ranges that would wrap around
// the 32 bit address space.
func validateWindow(start, size uint64) error {
	if size == 0 {
		return &UsageError{msg: "window size must not be zero"}
	}
	if start+size > maxAddressSpace {
		return &UsageError{
			msg: fmt.Sprintf("window end 0x%X exceeds the 32 bit address space", start+size),
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Strict, "strict", false, "validate the integrity byte of every record")
	flags.BoolVar(&opts.Verify, "verify", false, "read the output file back and verify its length and checksum")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
