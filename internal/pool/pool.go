// Package pool defines the constant pool resolver consumed by the
// disassembler to resolve symbolic operand references.
//
// Resolving happens against a program's string, type, field and method
// tables. Parsing those tables out of a DEX file is the host's concern, the
// disassembler only queries by index.
package pool

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned for lookup indexes outside the pool tables.
var ErrIndexOutOfRange = errors.New("constant pool index out of range")

// Field describes a resolved field reference.
type Field struct {
	Class string // declaring class descriptor
	Name  string
	Type  string // field type descriptor
}

// Proto describes a method prototype.
type Proto struct {
	Parameters []string // parameter type descriptors in declaration order
	ReturnType string
}

// Method describes a resolved method reference. CodeOffset is only valid
// when HasCodeOffset is set, abstract and external methods carry no code.
type Method struct {
	Class string // declaring class descriptor
	Name  string
	Proto Proto

	CodeOffset    uint64
	HasCodeOffset bool
}

// Resolver resolves constant pool references by integer index.
type Resolver interface {
	Field(index uint64) (Field, error)
	Method(index uint64) (Method, error)
	String(index uint64) (string, error)
	Type(index uint64) (string, error)
}

// Static is an in-memory Resolver backed by plain slices. It serves hosts
// that build the tables upfront and tests that need a synthetic pool.
type Static struct {
	Fields  []Field
	Methods []Method
	Strings []string
	Types   []string
}

// Field returns the field record at the given index.
func (s *Static) Field(index uint64) (Field, error) {
	if index >= uint64(len(s.Fields)) {
		return Field{}, fmt.Errorf("field %d: %w", index, ErrIndexOutOfRange)
	}
	return s.Fields[index], nil
}

// Method returns the method record at the given index.
func (s *Static) Method(index uint64) (Method, error) {
	if index >= uint64(len(s.Methods)) {
		return Method{}, fmt.Errorf("method %d: %w", index, ErrIndexOutOfRange)
	}
	return s.Methods[index], nil
}

// String returns the string at the given index.
func (s *Static) String(index uint64) (string, error) {
	if index >= uint64(len(s.Strings)) {
		return "", fmt.Errorf("string %d: %w", index, ErrIndexOutOfRange)
	}
	return s.Strings[index], nil
}

// Type returns the type descriptor at the given index.
func (s *Static) Type(index uint64) (string, error) {
	if index >= uint64(len(s.Types)) {
		return "", fmt.Errorf("type %d: %w", index, ErrIndexOutOfRange)
	}
	return s.Types[index], nil
}
