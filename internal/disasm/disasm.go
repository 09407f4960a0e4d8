// Package disasm implements the Dalvik bytecode instruction decoder.
//
// Decoding is driven entirely by the static instruction metadata table: the
// opcode byte selects an instruction row, its format row supplies the
// bit-layout template for operand extraction and the syntax template for
// rendering. A decode call is purely functional, it touches no mutable state
// besides the result it returns.
package disasm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/dexgodisasm/internal/metadata"
	"github.com/retroenv/dexgodisasm/internal/nibble"
	"github.com/retroenv/dexgodisasm/internal/payload"
	"github.com/retroenv/dexgodisasm/internal/pool"
	"github.com/retroenv/dexgodisasm/internal/token"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrUnknownOpcode is returned for opcode bytes without a table row.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrShortBuffer is returned when fewer bytes are available than the
	// instruction's declared length. No partial data is consumed.
	ErrShortBuffer = errors.New("buffer too short for instruction")
	// ErrMissingPayload is returned when a payload marker is decoded at an
	// address the pre-pass has no record for.
	ErrMissingPayload = errors.New("no payload record at address")
	// ErrUnknownPayloadKind is returned for payload markers with a kind byte
	// outside the three defined payload kinds.
	ErrUnknownPayloadKind = errors.New("unknown pseudo-instruction kind")
	// ErrNoSyntaxAlternative is returned when no guarded syntax alternative
	// matches the decoded A operand.
	ErrNoSyntaxAlternative = errors.New("no syntax alternative matches operand")
	// ErrRegisterCount is returned when the register count operand of an
	// invoke-kind instruction is out of range.
	ErrRegisterCount = errors.New("register count operand out of range")
)

// Level classifies a diagnostic.
type Level int

const (
	// LevelWarn marks degraded output, for example an unresolvable reference
	// rendered as raw text.
	LevelWarn Level = iota
	// LevelError marks a decode defect that was substituted with a fallback.
	LevelError
)

// Diagnostic is a non-fatal decode finding. Diagnostics accompany a
// best-effort token stream instead of aborting the decode.
type Diagnostic struct {
	Level   Level
	Message string
}

// Result is the outcome of decoding a single instruction.
// A Consumed value of 0 means nothing was decoded and the caller must not
// advance its cursor.
type Result struct {
	Tokens      []token.Token
	Consumed    int
	Diagnostics []Diagnostic
}

// Decoder decodes single Dalvik instructions into token streams.
// It is safe for concurrent use, all referenced tables are read-only.
type Decoder struct {
	logger   *log.Logger
	meta     *metadata.Table
	resolver pool.Resolver
}

// New creates a decoder using the given instruction table and constant pool
// resolver.
func New(logger *log.Logger, meta *metadata.Table, resolver pool.Resolver) *Decoder {
	return &Decoder{
		logger:   logger,
		meta:     meta,
		resolver: resolver,
	}
}

// Decode decodes the instruction at the start of data. addr is the address
// of data[0] in the code block and is used to look up payload records.
// data may extend past the instruction, only the declared length is consumed.
//
// Fewer than 2 available bytes yield an empty result with zero consumed
// bytes and no error, the caller decides how to proceed. Fatal decode
// defects are returned as an error, again with zero consumed bytes.
func (d *Decoder) Decode(payloads payload.Table, data []byte, addr uint64) (Result, error) {
	var res Result

	if len(data) < 2 {
		d.logger.Warn("Not enough data to disassemble",
			log.Int("length", len(data)),
			log.Hex("address", addr))
		return res, nil
	}

	if data[0] == 0 && data[1] != 0 {
		return d.decodePseudo(payloads, data, addr)
	}

	ins, ok := d.meta.Instruction(data[0])
	if !ok {
		return res, fmt.Errorf("opcode %#02x at address %#x: %w", data[0], addr, ErrUnknownOpcode)
	}

	size := ins.Format.Len * 2
	if len(data) < size {
		return res, fmt.Errorf("%s at address %#x needs %d bytes, %d available: %w",
			ins.Mnemonic, addr, size, len(data), ErrShortBuffer)
	}

	fields, err := ins.Format.ParsedLayout().Interpret(endianSwapUnits(data[:size]))
	if err != nil {
		d.diag(&res, LevelError, fmt.Sprintf("decoding %s operands: %s", ins.Mnemonic, err))
	}
	if ins.Format.IsRange() && fields['A'] > 0 {
		// last register of the contiguous range, undefined for an empty range
		fields['N'] = fields['A'] + fields['C'] - 1
	}

	syntax, err := d.selectSyntax(ins, fields, addr)
	if err != nil {
		return Result{}, err
	}

	res.Tokens = append(res.Tokens, token.Instruction(ins.Mnemonic))
	for _, word := range strings.Fields(syntax) {
		res.Tokens = append(res.Tokens, token.Text(" "))
		d.renderWord(&res, word, fields)
	}

	res.Consumed = size
	return res, nil
}

// decodePseudo renders the payload record at addr as a single instruction
// token listing its contents.
func (d *Decoder) decodePseudo(payloads payload.Table, data []byte, addr uint64) (Result, error) {
	kind := data[1]
	switch kind {
	case payload.KindPackedSwitch, payload.KindSparseSwitch, payload.KindFillArrayData:
	default:
		return Result{}, fmt.Errorf("kind %d at address %#x: %w", kind, addr, ErrUnknownPayloadKind)
	}

	entry, ok := payloads[addr]
	if !ok {
		return Result{}, fmt.Errorf("address %#x: %w", addr, ErrMissingPayload)
	}

	return Result{
		Tokens:   []token.Token{token.Instruction(listPayload(entry))},
		Consumed: entry.TotalSize(),
	}, nil
}

// selectSyntax resolves the syntax template to render the instruction with.
// Most opcodes use their own template verbatim, the invoke-kind and range
// formats and formats with guarded alternatives select based on the A operand.
func (d *Decoder) selectSyntax(ins *metadata.Instruction, fields nibble.Fields, addr uint64) (string, error) {
	if ins.FormatID == "35c" {
		return invokeSyntax(ins, fields, addr)
	}
	if ins.Format.IsRange() && fields['A'] == 0 {
		// a range with no registers renders as an empty group
		return strings.Replace(ins.Syntax, "vCCCC .. vNNNN", "", 1), nil
	}
	if strings.Contains(ins.Format.Syntax, "[A=") {
		return conditionalSyntax(ins, fields, addr)
	}
	return ins.Syntax, nil
}

// invokeSyntax builds the syntax for the invoke-kind format: operand A
// selects how many registers are listed before the constant pool reference.
// The reference's kind word is taken from the instruction's own template.
func invokeSyntax(ins *metadata.Instruction, fields nibble.Fields, addr uint64) (string, error) {
	kind := referenceKind(ins.Syntax)
	if kind == "" {
		return "", fmt.Errorf("%s at address %#x has no reference kind in syntax %q: %w",
			ins.Mnemonic, addr, ins.Syntax, ErrNoSyntaxAlternative)
	}

	count := fields['A']
	if count > 5 {
		return "", fmt.Errorf("%s at address %#x lists %d registers: %w",
			ins.Mnemonic, addr, count, ErrRegisterCount)
	}

	registers := []string{"vC", "vD", "vE", "vF", "vG"}
	return "{" + strings.Join(registers[:count], ", ") + "}, " + kind + "@BBBB", nil
}

// conditionalSyntax selects the format syntax alternative guarded by the
// decoded A operand. Alternatives have the shape "[A=n] op <syntax>".
func conditionalSyntax(ins *metadata.Instruction, fields nibble.Fields, addr uint64) (string, error) {
	count := fields['A']
	if count <= 9 {
		guard := byte('0' + count)
		for _, part := range strings.Split(ins.Format.Syntax, "[A=") {
			part = strings.TrimSpace(part)
			if len(part) > 6 && part[0] == guard {
				return part[6:], nil // strip the "n] op " guard prefix
			}
		}
	}

	return "", fmt.Errorf("%s at address %#x with operand A=%d: %w",
		ins.Mnemonic, addr, count, ErrNoSyntaxAlternative)
}

// referenceKind extracts the symbolic kind word of the trailing "kind@"
// pattern of a syntax template, for example "meth" or "call_site".
func referenceKind(syntax string) string {
	at := strings.LastIndexByte(syntax, '@')
	if at <= 0 {
		return ""
	}

	start := at
	for start > 0 && isKindChar(syntax[start-1]) {
		start--
	}
	if start == at || start == 0 || syntax[start-1] != ' ' {
		return ""
	}
	return syntax[start:at]
}

func isKindChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c == '_'
}

// diag records a non-fatal diagnostic and mirrors it to the logger.
func (d *Decoder) diag(res *Result, level Level, message string) {
	res.Diagnostics = append(res.Diagnostics, Diagnostic{Level: level, Message: message})
	if level == LevelError {
		d.logger.Error(message)
	} else {
		d.logger.Warn(message)
	}
}

// endianSwapUnits swaps the bytes of each 16-bit code unit, turning the
// little-endian code stream into the high-byte-first order the bit-layout
// templates are written in. Odd trailing bytes cannot occur, instruction
// lengths are whole code units.
func endianSwapUnits(data []byte) []byte {
	swapped := make([]byte, len(data))
	for i := 0; i+1 < len(data); i += 2 {
		swapped[i] = data[i+1]
		swapped[i+1] = data[i]
	}
	return swapped
}
