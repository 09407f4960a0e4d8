// Package payload decodes the pseudo-instruction payload records that Dalvik
// embeds inline in the code stream: packed-switch tables, sparse-switch
// tables and fill-array-data blocks.
//
// Payloads are collected in a pre-pass over a whole code block. A code unit
// with a zero low byte and a nonzero high byte marks a payload record, the
// high byte selects its kind. The pre-pass only walks instruction lengths, it
// never decodes operands.
package payload

import (
	"encoding/binary"

	"github.com/retroenv/dexgodisasm/internal/metadata"
	"github.com/retroenv/retrogolib/log"
)

// Payload kind bytes as encoded in the marker code unit's high byte.
const (
	KindPackedSwitch  = 0x01
	KindSparseSwitch  = 0x02
	KindFillArrayData = 0x03
)

// Payload is one pseudo-instruction record. It is a closed union of
// PackedSwitch, SparseSwitch and FillArrayData.
type Payload interface {
	// TotalSize returns the record size in bytes including the marker unit.
	TotalSize() int

	isPayload()
}

// PackedSwitch is a switch table with consecutive case values starting at
// FirstKey. The case value of Targets[i] is FirstKey+i.
type PackedSwitch struct {
	EntryCount int
	FirstKey   int32
	Targets    []int32
}

// SparseSwitch is a switch table with explicit case values. Keys and Targets
// have equal length and are index-aligned.
type SparseSwitch struct {
	EntryCount int
	Keys       []int32
	Targets    []int32
}

// FillArrayData is a block of raw array element data.
type FillArrayData struct {
	ElementWidth int
	ElementCount int
	Data         []byte
}

// TotalSize returns the record size in bytes including the marker unit.
func (p *PackedSwitch) TotalSize() int {
	return p.EntryCount*4 + 8
}

// TotalSize returns the record size in bytes including the marker unit.
func (p *SparseSwitch) TotalSize() int {
	return p.EntryCount*8 + 4
}

// TotalSize returns the record size in bytes including the marker unit.
// The element data is padded to an even byte length.
func (p *FillArrayData) TotalSize() int {
	return (p.ElementWidth*p.ElementCount+1)/2*2 + 8
}

func (p *PackedSwitch) isPayload()  {}
func (p *SparseSwitch) isPayload()  {}
func (p *FillArrayData) isPayload() {}

// Table maps the start address of each payload record found in a code block
// to its decoded record. It is built once per block and must be treated as
// read-only by consumers, it can be shared across concurrent decodes.
type Table map[uint64]Payload

// Scanner collects payload records from code blocks.
type Scanner struct {
	logger *log.Logger
	meta   *metadata.Table
}

// NewScanner creates a payload scanner using the given instruction table to
// determine ordinary instruction lengths.
func NewScanner(logger *log.Logger, meta *metadata.Table) *Scanner {
	return &Scanner{
		logger: logger,
		meta:   meta,
	}
}

// Scan walks the code block and returns the table of all payload records it
// contains. data is the raw little-endian code stream of the block, addr the
// block's start address used to key the table. Malformed input is reported
// and skipped, the scanner always makes forward progress.
func (s *Scanner) Scan(data []byte, addr uint64) Table {
	payloads := make(Table)

	offset := 0
	for offset+1 < len(data) {
		if data[offset] != 0 || data[offset+1] == 0 {
			// ordinary instruction, advance by its declared length
			ins, ok := s.meta.Instruction(data[offset])
			if !ok {
				s.logger.Error("Unknown opcode while scanning for payloads",
					log.Uint8("opcode", data[offset]),
					log.Hex("address", addr+uint64(offset)))
				offset += 2
				continue
			}
			offset += ins.Format.Len * 2
			continue
		}

		kind := data[offset+1]
		payload, ok := s.scanPayload(kind, data[offset:], addr+uint64(offset))
		if !ok {
			offset += 2 // keep forward progress past the bad marker
			continue
		}
		payloads[addr+uint64(offset)] = payload
		offset += payload.TotalSize()
	}

	return payloads
}

// scanPayload decodes a single payload record starting at the marker unit.
func (s *Scanner) scanPayload(kind byte, data []byte, addr uint64) (Payload, bool) {
	switch kind {
	case KindPackedSwitch:
		return s.scanPackedSwitch(data, addr)
	case KindSparseSwitch:
		return s.scanSparseSwitch(data, addr)
	case KindFillArrayData:
		return s.scanFillArrayData(data, addr)
	default:
		s.logger.Error("Unknown pseudo-instruction kind",
			log.Uint8("kind", kind),
			log.Hex("address", addr))
		return nil, false
	}
}

func (s *Scanner) scanPackedSwitch(data []byte, addr uint64) (Payload, bool) {
	if len(data) < 8 {
		return s.truncated("packed-switch", addr)
	}
	size := int(binary.LittleEndian.Uint16(data[2:]))
	if len(data) < 8+size*4 {
		return s.truncated("packed-switch", addr)
	}

	payload := &PackedSwitch{
		EntryCount: size,
		FirstKey:   int32(binary.LittleEndian.Uint32(data[4:])),
		Targets:    make([]int32, size),
	}
	for i := 0; i < size; i++ {
		payload.Targets[i] = int32(binary.LittleEndian.Uint32(data[8+i*4:]))
	}
	return payload, true
}

func (s *Scanner) scanSparseSwitch(data []byte, addr uint64) (Payload, bool) {
	if len(data) < 4 {
		return s.truncated("sparse-switch", addr)
	}
	size := int(binary.LittleEndian.Uint16(data[2:]))
	if len(data) < 4+size*8 {
		return s.truncated("sparse-switch", addr)
	}

	payload := &SparseSwitch{
		EntryCount: size,
		Keys:       make([]int32, size),
		Targets:    make([]int32, size),
	}
	for i := 0; i < size; i++ {
		payload.Keys[i] = int32(binary.LittleEndian.Uint32(data[4+i*4:]))
		payload.Targets[i] = int32(binary.LittleEndian.Uint32(data[4+size*4+i*4:]))
	}
	return payload, true
}

func (s *Scanner) scanFillArrayData(data []byte, addr uint64) (Payload, bool) {
	if len(data) < 8 {
		return s.truncated("fill-array-data", addr)
	}
	width := int(binary.LittleEndian.Uint16(data[2:]))
	count := int(binary.LittleEndian.Uint32(data[4:]))
	padded := (width*count + 1) / 2 * 2
	if len(data) < 8+padded {
		return s.truncated("fill-array-data", addr)
	}

	payload := &FillArrayData{
		ElementWidth: width,
		ElementCount: count,
		Data:         data[8 : 8+padded],
	}
	return payload, true
}

func (s *Scanner) truncated(kind string, addr uint64) (Payload, bool) {
	s.logger.Error("Truncated pseudo-instruction payload",
		log.String("kind", kind),
		log.Hex("address", addr))
	return nil, false
}
