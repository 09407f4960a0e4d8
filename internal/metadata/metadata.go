// Package metadata provides the static Dalvik instruction reference tables.
//
// The tables mirror the two tables of the Dalvik bytecode reference: one row
// per instruction format family and one row per opcode. They are immutable
// after construction and injected into the decoder, no package consults them
// through global state.
package metadata

import (
	"fmt"
	"strings"
	"sync"

	"github.com/retroenv/dexgodisasm/internal/nibble"
)

// Format describes one instruction format family, for example "12x".
type Format struct {
	ID     string // format identifier, first digit is the length in code units
	Layout string // bit-layout template, for example "B|A|op"
	Syntax string // canonical syntax template including the op marker

	// Derived from the identifier at table construction time.
	Len       int    // instruction length in 16-bit code units
	Registers int    // register count, -1 for range formats
	TypeCode  string // trailing type code letters of the identifier

	layout *nibble.Layout
}

// ParsedLayout returns the layout template parsed into its chunk sequence.
func (f *Format) ParsedLayout() *nibble.Layout {
	return f.layout
}

// IsRange returns whether the format addresses a contiguous register range.
func (f *Format) IsRange() bool {
	return strings.Contains(f.ID, "r")
}

// Instruction describes one opcode of the Dalvik instruction set.
type Instruction struct {
	Opcode   byte
	FormatID string
	Format   *Format // resolved at table construction time
	Mnemonic string
	Syntax   string // syntax template without the mnemonic

	Arguments   string // argument documentation of the reference table
	Description string // free text description of the reference table
}

// Table is an immutable lookup structure over formats and instructions.
type Table struct {
	formats      map[string]*Format
	instructions [256]*Instruction
}

// NewTable builds a table from format and instruction rows. Every layout
// template is parsed once and every instruction's format reference is
// resolved, so decoding never parses template strings or chases identifiers.
func NewTable(formats []Format, instructions []Instruction) (*Table, error) {
	table := &Table{
		formats: make(map[string]*Format, len(formats)),
	}

	for i := range formats {
		format := formats[i]
		if err := deriveFormat(&format); err != nil {
			return nil, err
		}

		layout, err := nibble.ParseLayout(format.Layout)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", format.ID, err)
		}
		format.layout = layout

		if _, exists := table.formats[format.ID]; exists {
			return nil, fmt.Errorf("duplicate format %s", format.ID)
		}
		table.formats[format.ID] = &format
	}

	for i := range instructions {
		ins := instructions[i]
		format, ok := table.formats[ins.FormatID]
		if !ok {
			return nil, fmt.Errorf("opcode %02x %s: unknown format %s",
				ins.Opcode, ins.Mnemonic, ins.FormatID)
		}
		ins.Format = format

		if table.instructions[ins.Opcode] != nil {
			return nil, fmt.Errorf("duplicate opcode %02x", ins.Opcode)
		}
		table.instructions[ins.Opcode] = &ins
	}

	return table, nil
}

// Format looks up a format descriptor by its identifier.
func (t *Table) Format(id string) (*Format, bool) {
	format, ok := t.formats[id]
	return format, ok
}

// Instruction looks up an instruction by its opcode byte.
// The second return value is false for unassigned opcodes.
func (t *Table) Instruction(opcode byte) (*Instruction, bool) {
	ins := t.instructions[opcode]
	return ins, ins != nil
}

// deriveFormat fills the attributes encoded in the format identifier:
// length in code units, register count and type code.
func deriveFormat(format *Format) error {
	id := format.ID
	if len(id) < 3 || id[0] < '1' || id[0] > '9' {
		return fmt.Errorf("malformed format identifier %q", id)
	}

	format.Len = int(id[0] - '0')
	format.TypeCode = id[2:]

	switch {
	case id[1] >= '0' && id[1] <= '9':
		format.Registers = int(id[1] - '0')
	case id[1] == 'r':
		format.Registers = -1 // register range, count is operand-defined
	default:
		return fmt.Errorf("malformed format identifier %q", id)
	}
	return nil
}

var (
	loadOnce  sync.Once
	loadTable *Table
	loadErr   error
)

// Load returns the built-in Dalvik instruction table. The table is built once
// on first use, concurrent first callers share the same initialization.
func Load() (*Table, error) {
	loadOnce.Do(func() {
		loadTable, loadErr = NewTable(formatRows, instructionRows)
	})
	return loadTable, loadErr
}
