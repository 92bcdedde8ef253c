// Package image assembles sparse firmware bytes into a flat binary image.
package image

import "errors"

// EraseValue fills every image location that no source byte covers,
// mirroring unprogrammed flash memory.
const EraseValue = 0xFF

// ErrEmptyRange is returned when no source byte fell inside the window.
var ErrEmptyRange = errors.New("no data found within the specified address range")

// Window is the half open address range [Start, Start+Size) retained in the
// output image.
type Window struct {
	Start uint32
	Size  uint32
}

// End returns the first address past the window. The result is 64 bit wide
// since a window may reach the top of the 32 bit address space.
func (w Window) End() uint64 {
	return uint64(w.Start) + uint64(w.Size)
}

// Contains reports whether addr lies inside the window.
func (w Window) Contains(addr uint32) bool {
	return addr >= w.Start && uint64(addr) < w.End()
}

// Assemble materializes the sparse memory map into a contiguous buffer of
// exactly window.Size bytes. Locations without a source byte hold EraseValue.
// A map that contributes nothing to the window fails with ErrEmptyRange, a
// window that does not overlap the image would otherwise silently produce an
// all erased file.
func Assemble(window Window, memory map[uint32]byte) ([]byte, error) {
	buf := make([]byte, window.Size)
	for i := range buf {
		buf[i] = EraseValue
	}

	written := 0
	for addr, value := range memory {
		if !window.Contains(addr) {
			continue
		}
		buf[addr-window.Start] = value
		written++
	}

	if written == 0 {
		return nil, ErrEmptyRange
	}
	return buf, nil
}
