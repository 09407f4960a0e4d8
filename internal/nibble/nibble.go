// Package nibble extracts instruction operand fields from nibble-addressed
// bit-layout templates.
//
// Dalvik instruction formats describe their encoding as a sequence of 8-bit
// groups separated by spaces, each group a |-separated list of chunks. A chunk
// is the opcode marker "op", the filler marker "ØØ" or a field name made of a
// repeated uppercase letter whose repetition count is the field width in
// nibbles, for example "AAAA". Fields spanning a 16-bit unit boundary are
// written as a "lo" chunk followed by a "hi" chunk of the same letter.
package nibble

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedWidth is returned for field widths that no instruction format
// uses. Callers treat it as a non-fatal decode error, the field value is 0.
var ErrUnsupportedWidth = errors.New("unsupported field width")

// ErrOutOfRange is returned when a field extends past the end of the data.
var ErrOutOfRange = errors.New("field out of data range")

// ExtractField extracts an unsigned field of the given width in nibbles,
// starting at the given nibble index. Even nibble indexes address the high
// nibble of their byte, matching the byte-pair swapped instruction encoding.
// Supported widths are 1, 2, 4, 8 and 16 nibbles; byte and unit sized fields
// assume byte alignment, multi-unit fields are assembled low unit first.
func ExtractField(data []byte, startNibble, widthNibbles int) (uint64, error) {
	if startNibble < 0 || (startNibble+widthNibbles+1)/2 > len(data) {
		return 0, ErrOutOfRange
	}

	switch widthNibbles {
	case 1:
		shift := ((startNibble + 1) % 2) * 4
		return uint64(data[startNibble/2]>>shift) & 0xf, nil

	case 2:
		return uint64(data[startNibble/2]), nil

	case 4:
		i := startNibble / 2
		return uint64(data[i])<<8 | uint64(data[i+1]), nil

	case 8, 16:
		var value uint64
		for unit := 0; unit < widthNibbles/4; unit++ {
			i := (startNibble + unit*4) / 2
			value |= (uint64(data[i])<<8 | uint64(data[i+1])) << (unit * 16)
		}
		return value, nil

	default:
		return 0, fmt.Errorf("%w: %d nibbles", ErrUnsupportedWidth, widthNibbles)
	}
}

// SignExtend reinterprets an unsigned field value as a two's-complement signed
// integer with the sign bit at position 4*widthNibbles-1.
func SignExtend(value uint64, widthNibbles int) int64 {
	shift := 64 - 4*widthNibbles
	if shift <= 0 {
		return int64(value)
	}
	return int64(value<<shift) >> shift
}

// Fields maps a field name letter to its extracted unsigned value.
// Signedness interpretation is left to the syntax renderer.
type Fields map[byte]uint64

type chunkKind int

const (
	fieldChunk chunkKind = iota
	opcodeChunk
	fillerChunk
)

type chunk struct {
	kind  chunkKind
	name  byte // field name letter, only set for field chunks
	width int  // width in nibbles
}

// Layout is a bit-layout template parsed into its chunk sequence.
// Templates are parsed once at metadata load time so that per-instruction
// decoding never re-parses strings.
type Layout struct {
	format string
	chunks []chunk
}

// ParseLayout parses a bit-layout template like "B|A|op CCCC" or
// "AA|op BBBBlo BBBBhi". A lo chunk buffers its half until the matching hi
// chunk is seen, both halves then form one field of combined width.
func ParseLayout(format string) (*Layout, error) {
	layout := &Layout{
		format: format,
	}

	continuation := ""
	for _, byteSpec := range strings.Split(format, " ") {
		for _, part := range strings.Split(byteSpec, "|") {
			if strings.Contains(part, "lo") || continuation != "" {
				continuation += part
				if !strings.Contains(continuation, "hi") {
					continue
				}
				part = strings.ReplaceAll(continuation, "lo", "")
				part = strings.ReplaceAll(part, "hi", "")
				continuation = ""
			}

			switch {
			case part == "op":
				layout.chunks = append(layout.chunks, chunk{kind: opcodeChunk, width: 2})

			case part == "ØØ":
				layout.chunks = append(layout.chunks, chunk{kind: fillerChunk, width: 2})

			case isFieldName(part):
				layout.chunks = append(layout.chunks, chunk{
					kind:  fieldChunk,
					name:  part[0],
					width: len(part),
				})

			default:
				return nil, fmt.Errorf("malformed layout chunk %q in template %q", part, format)
			}
		}
	}

	if continuation != "" {
		return nil, fmt.Errorf("unterminated lo chunk %q in template %q", continuation, format)
	}
	return layout, nil
}

// String returns the original template text.
func (l *Layout) String() string {
	return l.format
}

// Width returns the total template width in nibbles.
func (l *Layout) Width() int {
	width := 0
	for _, c := range l.chunks {
		width += c.width
	}
	return width
}

// Interpret extracts all fields of the layout from the byte-pair swapped
// instruction data. Fields with an unsupported width are reported as a joined
// non-fatal error and extracted as 0, decoding of the remaining fields
// continues.
func (l *Layout) Interpret(data []byte) (Fields, error) {
	values := make(Fields, 4)
	var errs []error

	nib := 0
	for _, c := range l.chunks {
		if c.kind != fieldChunk {
			nib += c.width
			continue
		}

		value, err := ExtractField(data, nib, c.width)
		if err != nil {
			errs = append(errs, fmt.Errorf("extracting field %c: %w", c.name, err))
		}
		values[c.name] = value
		nib += c.width
	}

	return values, errors.Join(errs...)
}

// isFieldName returns whether the chunk is a field name, a non-empty
// repetition of a single uppercase letter.
func isFieldName(part string) bool {
	if part == "" {
		return false
	}
	for i := 0; i < len(part); i++ {
		if part[i] != part[0] || part[i] < 'A' || part[i] > 'Z' {
			return false
		}
	}
	return true
}
