package token

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestConstructors(t *testing.T) {
	tok := Register("v2", 2)
	assert.Equal(t, RegisterType, tok.Type)
	assert.Equal(t, "v2", tok.Text)
	assert.Equal(t, int64(2), tok.Value)
	assert.False(t, tok.HasValue)

	tok = Address("-5", -5)
	assert.Equal(t, AddressType, tok.Type)
	assert.Equal(t, int64(-5), tok.Value)
	assert.False(t, tok.HasValue)

	tok = ResolvedAddress("handle", 0x500)
	assert.Equal(t, AddressType, tok.Type)
	assert.True(t, tok.HasValue)
	assert.Equal(t, int64(0x500), tok.Value)

	assert.Equal(t, ",", OperandSeparator().Text)
	assert.Equal(t, InstructionType, Instruction("nop").Type)
}

func TestJoin(t *testing.T) {
	tokens := []Token{
		Instruction("move"),
		Text(" "),
		Register("v2", 2),
		OperandSeparator(),
		Text(" "),
		Register("v3", 3),
	}
	assert.Equal(t, "move v2, v3", Join(tokens))
	assert.Equal(t, "", Join(nil))
}
