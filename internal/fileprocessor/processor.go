// Package fileprocessor handles the conversion of a single Intel HEX file
package fileprocessor

import (
	"context"
	"fmt"
	"os"

	"github.com/retroenv/hexbin/internal/checksum"
	"github.com/retroenv/hexbin/internal/hexfile"
	"github.com/retroenv/hexbin/internal/image"
	"github.com/retroenv/hexbin/internal/options"
	"github.com/retroenv/hexbin/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete conversion workflow: parse the input,
// assemble the window into a flat buffer, write the output file and report
// the checksum of the written image. An empty window range fails before the
// output file is created.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	window := image.Window{Start: opts.Start, Size: opts.Size}

	memory, stats, err := parseInput(logger, opts, window)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("Parsed hex file",
		log.Int("lines", stats.Lines),
		log.Int("records", stats.Records),
		log.Int("skipped", stats.Skipped))

	buf, err := image.Assemble(window, memory)
	if err != nil {
		return fmt.Errorf("assembling image: %w", err)
	}

	if err := writeImage(opts.Output, buf); err != nil {
		return err
	}
	logger.Info("Created binary file",
		log.String("path", opts.Output),
		log.Int("size", len(buf)))

	sum := checksum.Sum(buf)
	fmt.Printf("Generated Hash: 0x%08X\n", sum)

	if opts.Verify {
		if err := verification.VerifyOutput(logger, opts.Output, len(buf), sum); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}

	return nil
}

func parseInput(logger *log.Logger, opts options.Program, window image.Window) (map[uint32]byte, hexfile.Stats, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, hexfile.Stats{}, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	parser := hexfile.NewParser(logger, window, opts.Strict)
	if err := parser.ParseReader(file); err != nil {
		return nil, hexfile.Stats{}, fmt.Errorf("parsing file %s: %w", opts.Input, err)
	}

	return parser.Memory(), parser.Stats(), nil
}

func writeImage(path string, buf []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	if _, err := file.Write(buf); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", path, err)
	}
	return nil
}
