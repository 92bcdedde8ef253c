// Package verification verifies that the written binary matches the assembled image.
package verification

import (
	"fmt"
	"os"

	"github.com/retroenv/hexbin/internal/checksum"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput reads the written file back and checks that its length and
// checksum match the values computed in memory.
func VerifyOutput(logger *log.Logger, path string, size int, sum uint32) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading output file for verification: %w", err)
	}

	if len(data) != size {
		return fmt.Errorf("output file has %d bytes, expected %d", len(data), size)
	}
	if got := checksum.Sum(data); got != sum {
		return fmt.Errorf("output file checksum 0x%08X does not match 0x%08X", got, sum)
	}

	logger.Info("Verification successful")
	return nil
}
