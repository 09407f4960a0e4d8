// Package token defines the typed token stream produced by the disassembler.
package token

import "strings"

// Type classifies a disassembly token.
type Type int

const (
	// TextType is plain text like braces, arrows and type descriptors.
	TextType Type = iota
	// RegisterType is a virtual register reference like v0.
	RegisterType
	// IntegerType is a literal integer value.
	IntegerType
	// AddressType is a branch offset or an absolute code address.
	AddressType
	// OperandSeparatorType separates instruction operands.
	OperandSeparatorType
	// InstructionType is an instruction mnemonic or pseudo-instruction listing.
	InstructionType
)

// Token is one element of a disassembled instruction's text representation.
type Token struct {
	Type Type
	Text string

	// Value carries the numeric meaning of register, integer and address tokens.
	Value int64
	// HasValue is set for address tokens that carry a resolved target,
	// for example a method reference with a known code offset.
	HasValue bool
}

// Text returns a plain text token.
func Text(text string) Token {
	return Token{Type: TextType, Text: text}
}

// Register returns a register token for the given register index.
func Register(text string, index int64) Token {
	return Token{Type: RegisterType, Text: text, Value: index}
}

// Integer returns an integer literal token.
func Integer(text string, value int64) Token {
	return Token{Type: IntegerType, Text: text, Value: value}
}

// Address returns an address token for a branch offset.
func Address(text string, offset int64) Token {
	return Token{Type: AddressType, Text: text, Value: offset}
}

// ResolvedAddress returns an address token carrying a resolved target address.
func ResolvedAddress(text string, target int64) Token {
	return Token{Type: AddressType, Text: text, Value: target, HasValue: true}
}

// OperandSeparator returns an operand separator token.
func OperandSeparator() Token {
	return Token{Type: OperandSeparatorType, Text: ","}
}

// Instruction returns an instruction token with the given mnemonic or
// pseudo-instruction listing.
func Instruction(text string) Token {
	return Token{Type: InstructionType, Text: text}
}

// Join concatenates the text of all tokens into a single string.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
