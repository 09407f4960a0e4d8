// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // input code block file
	Output string // output listing file, stdout if empty
	Batch  string // batch process files matching pattern
}

// Flags contains behavior options.
type Flags struct {
	BaseAddress uint64 // address of the first byte of the code block

	Debug bool
	Quiet bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}
