package verification

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/hexbin/internal/checksum"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "app.bin")

	data := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	sum := checksum.Sum(data)
	assert.NoError(t, VerifyOutput(logger, path, len(data), sum))

	assert.Error(t, VerifyOutput(logger, path, len(data)+1, sum))
	assert.Error(t, VerifyOutput(logger, path, len(data), sum+1))
	assert.Error(t, VerifyOutput(logger, filepath.Join(dir, "missing.bin"), len(data), sum))
}
