package image

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAssemble(t *testing.T) {
	window := Window{Start: 0x08000000, Size: 0x10}
	memory := map[uint32]byte{
		0x08000000: 0xAA,
		0x08000001: 0xBB,
		0x08000002: 0xCC,
		0x08000003: 0xDD,
	}

	buf, err := Assemble(window, memory)
	assert.NoError(t, err)

	expected := []byte{
		0xAA, 0xBB, 0xCC, 0xDD, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	assert.Equal(t, expected, buf)
}

func TestAssembleLength(t *testing.T) {
	window := Window{Start: 0, Size: 0x100}

	buf, err := Assemble(window, map[uint32]byte{0x80: 0x01})
	assert.NoError(t, err)

	assert.Equal(t, 0x100, len(buf))
	assert.Equal(t, byte(0x01), buf[0x80])
	assert.Equal(t, byte(EraseValue), buf[0x7F])
	assert.Equal(t, byte(EraseValue), buf[0x81])
}

func TestAssembleEmptyRange(t *testing.T) {
	window := Window{Start: 0x08000000, Size: 0x10}

	_, err := Assemble(window, nil)
	assert.True(t, errors.Is(err, ErrEmptyRange))

	// bytes outside the window do not count as coverage
	_, err = Assemble(window, map[uint32]byte{0x07FFFFFF: 0x12})
	assert.True(t, errors.Is(err, ErrEmptyRange))
}

func TestWindowContains(t *testing.T) {
	window := Window{Start: 0x08000000, Size: 0x10}

	assert.False(t, window.Contains(0x07FFFFFF))
	assert.True(t, window.Contains(0x08000000))
	assert.True(t, window.Contains(0x0800000F))
	assert.False(t, window.Contains(0x08000010))
}

func TestWindowTopOfAddressSpace(t *testing.T) {
	window := Window{Start: 0xFFFFFFF0, Size: 0x10}

	assert.Equal(t, uint64(1)<<32, window.End())
	assert.True(t, window.Contains(0xFFFFFFF0))
	assert.True(t, window.Contains(0xFFFFFFFF))
	assert.False(t, window.Contains(0x00000000))
}
