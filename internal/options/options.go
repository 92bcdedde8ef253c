// Package options contains the program options.
package options

// Program options of the converter.
type Program struct {
	Input  string // Intel HEX input file
	Output string // flat binary output file

	Start uint32 // first address retained in the output image
	Size  uint32 // length of the output image in bytes

	Strict bool // validate the integrity byte of every record
	Verify bool // read the output file back and verify it after writing
	Debug  bool
	Quiet  bool
}
