package disasm

import (
	"github.com/retroenv/dexgodisasm/internal/payload"
	"github.com/retroenv/dexgodisasm/internal/token"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Line is one disassembled instruction of a code block.
type Line struct {
	Address uint64
	Tokens  []token.Token
}

// Text returns the line's rendered text.
func (l Line) Text() string {
	return token.Join(l.Tokens)
}

// Block disassembles a whole contiguous code block. It runs the payload
// pre-pass once at construction, the resulting table is shared read-only by
// all decodes of the block.
type Block struct {
	dec    *Decoder
	logger *log.Logger

	data []byte
	addr uint64

	payloads   payload.Table
	referenced set.Set[uint64] // addresses referenced by resolved address tokens
}

// NewBlock creates a block for the raw little-endian code stream starting at
// the given address and scans it for payload records.
func (d *Decoder) NewBlock(data []byte, addr uint64) *Block {
	scanner := payload.NewScanner(d.logger, d.meta)

	return &Block{
		dec:        d,
		logger:     d.logger,
		data:       data,
		addr:       addr,
		payloads:   scanner.Scan(data, addr),
		referenced: set.New[uint64](),
	}
}

// Payloads returns the payload records found in the block.
func (b *Block) Payloads() payload.Table {
	return b.payloads
}

// Referenced returns all addresses that resolved address tokens of the
// disassembled instructions point to, for label generation by the host.
func (b *Block) Referenced() set.Set[uint64] {
	return b.referenced
}

// Disassemble decodes the whole block into lines. Instructions that fail to
// decode are reported and skipped by one code unit to resynchronize.
func (b *Block) Disassemble() []Line {
	var lines []Line

	offset := 0
	for offset < len(b.data) {
		address := b.addr + uint64(offset)
		res, err := b.dec.Decode(b.payloads, b.data[offset:], address)
		if err != nil {
			b.logger.Error("Decoding instruction failed",
				log.Err(err),
				log.Hex("address", address))
			offset += 2
			continue
		}
		if res.Consumed == 0 {
			break // trailing data too short for an instruction
		}

		for _, tok := range res.Tokens {
			if tok.Type == token.AddressType && tok.HasValue {
				b.referenced.Add(uint64(tok.Value))
			}
		}

		lines = append(lines, Line{Address: address, Tokens: res.Tokens})
		offset += res.Consumed
	}

	return lines
}
