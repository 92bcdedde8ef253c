// Package checksum computes the CRC32 checksum reported for assembled images.
package checksum

import "hash/crc32"

// Polynomial is the bit reflected CRC32 polynomial used by the firmware to
// verify a flashed image.
const Polynomial = 0xEDB88320

var table = crc32.MakeTable(Polynomial)

// Sum returns the CRC32 checksum of buf: the accumulator starts at all ones,
// every byte is folded in through the reflected polynomial and the result is
// inverted at the end.
func Sum(buf []byte) uint32 {
	return crc32.Checksum(buf, table)
}
