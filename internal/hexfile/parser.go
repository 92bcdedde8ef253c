package hexfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/hexbin/internal/image"
	"github.com/retroenv/retrogolib/log"
)

// Parser consumes Intel HEX lines and collects the data bytes that fall
// inside an address window. Bytes outside the window are discarded on sight,
// memory use is bound by the window size no matter how large an address
// space the input describes.
type Parser struct {
	logger *log.Logger
	window image.Window
	strict bool

	// upper 16 address bits established by the latest extended linear
	// address record, already shifted into position
	extendedAddress uint32

	memory map[uint32]byte
	stats  Stats
}

// Stats describes how the input lines were consumed.
type Stats struct {
	Lines   int // lines read, including non record lines
	Records int // records decoded successfully
	Skipped int // lines skipped due to a decode failure
}

// NewParser creates a parser that retains only addresses inside window.
// With strict enabled the integrity byte of every record is validated,
// a mismatch skips the line like any other decode failure.
func NewParser(logger *log.Logger, window image.Window, strict bool) *Parser {
	return &Parser{
		logger: logger,
		window: window,
		strict: strict,
		memory: make(map[uint32]byte),
	}
}

// ParseReader reads the input line by line until it is exhausted or an
// end of file record is reached. A line that fails to decode is reported as
// a warning and skipped, it never aborts the run. Only a failure of the
// underlying reader returns an error.
func (p *Parser) ParseReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		p.stats.Lines++
		line := scanner.Text()

		rec, err := DecodeRecord(line)
		if err == nil && rec != nil && p.strict {
			err = VerifyIntegrity(line, rec)
		}
		if err != nil {
			p.skipLine(err)
			continue
		}
		if rec == nil { // not a record line
			continue
		}

		p.stats.Records++
		if stop := p.processRecord(rec, line); stop {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// Memory returns the collected address to byte mapping. Every key lies
// inside the parser's window. For an address written by multiple data
// records the last write wins.
func (p *Parser) Memory() map[uint32]byte {
	return p.memory
}

// Stats returns the line consumption counters.
func (p *Parser) Stats() Stats {
	return p.stats
}

// processRecord applies a decoded record and reports whether line
// processing should stop.
func (p *Parser) processRecord(rec *Record, line string) bool {
	switch rec.Type {
	case EndOfFile:
		return true

	case ExtendedLinearAddress:
		if len(rec.Data) < 2 {
			p.skipLine(&ParseError{Line: line, Reason: "extended linear address record has no address field"})
			return false
		}
		upper := uint16(rec.Data[0])<<8 | uint16(rec.Data[1])
		p.extendedAddress = uint32(upper) << 16

	case Data:
		base := p.extendedAddress + uint32(rec.AddressOffset)
		for i, value := range rec.Data {
			address := base + uint32(i)
			if p.window.Contains(address) {
				p.memory[address] = value
			}
		}
	}

	// all other record types are inert
	return false
}

func (p *Parser) skipLine(err error) {
	p.stats.Skipped++
	p.logger.Warn("Skipping unparsable line",
		log.Int("line", p.stats.Lines),
		log.Err(err))
}
