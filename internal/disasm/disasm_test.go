package disasm

import (
	"errors"
	"testing"

	"github.com/retroenv/dexgodisasm/internal/metadata"
	"github.com/retroenv/dexgodisasm/internal/payload"
	"github.com/retroenv/dexgodisasm/internal/pool"
	"github.com/retroenv/dexgodisasm/internal/token"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testResolver() *pool.Static {
	return &pool.Static{
		Fields: []pool.Field{
			{Class: "Lcom/example/Foo;", Name: "count", Type: "I"},
		},
		Methods: []pool.Method{
			{Class: "Lcom/example/Foo;", Name: "<init>", Proto: pool.Proto{ReturnType: "V"}},
			{Class: "Lcom/example/Foo;", Name: "bar",
				Proto: pool.Proto{Parameters: []string{"I", "J"}, ReturnType: "V"}},
			{Class: "Lcom/example/Foo;", Name: "handle",
				Proto: pool.Proto{ReturnType: "V"}, CodeOffset: 0x500, HasCodeOffset: true},
		},
		Strings: []string{"hello", "a\nb"},
		Types:   []string{"I", "J", "Ljava/lang/String;"},
	}
}

func testDecoder(t *testing.T) *Decoder {
	t.Helper()

	meta, err := metadata.Load()
	assert.NoError(t, err)
	return New(log.NewTestLogger(t), meta, testResolver())
}

// nopDecoder discards the decoder's error reports, for tests that feed
// malformed input on purpose and assert the returned diagnostics instead.
func nopDecoder(t *testing.T) *Decoder {
	t.Helper()

	meta, err := metadata.Load()
	assert.NoError(t, err)
	return New(log.NewNop(), meta, testResolver())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		want     string
		consumed int
	}{
		{
			name:     "nop",
			data:     []byte{0x00, 0x00},
			want:     "nop",
			consumed: 2,
		},
		{
			name:     "move",
			data:     []byte{0x01, 0x32},
			want:     "move v2, v3",
			consumed: 2,
		},
		{
			name:     "const 16 negative literal",
			data:     []byte{0x13, 0x01, 0xff, 0xff},
			want:     "const/16 v1, -0x1",
			consumed: 4,
		},
		{
			name:     "goto forward",
			data:     []byte{0x28, 0x05},
			want:     "goto +5",
			consumed: 2,
		},
		{
			name:     "goto backward",
			data:     []byte{0x28, 0xfb},
			want:     "goto -5",
			consumed: 2,
		},
		{
			name:     "invoke with two registers",
			data:     []byte{0x6e, 0x20, 0x01, 0x00, 0x10, 0x00},
			want:     "invoke-virtual {v0, v1}, Lcom/example/Foo;->bar(IJ)V",
			consumed: 6,
		},
		{
			name:     "invoke with empty register group",
			data:     []byte{0x6e, 0x00, 0x01, 0x00, 0x00, 0x00},
			want:     "invoke-virtual {}, Lcom/example/Foo;->bar(IJ)V",
			consumed: 6,
		},
		{
			name:     "invoke range",
			data:     []byte{0x74, 0x03, 0x01, 0x00, 0x04, 0x00},
			want:     "invoke-virtual/range {v4 .. v6}, Lcom/example/Foo;->bar(IJ)V",
			consumed: 6,
		},
		{
			name:     "invoke range with empty register group",
			data:     []byte{0x74, 0x00, 0x01, 0x00, 0x04, 0x00},
			want:     "invoke-virtual/range {}, Lcom/example/Foo;->bar(IJ)V",
			consumed: 6,
		},
		{
			name:     "instance field access",
			data:     []byte{0x52, 0x10, 0x00, 0x00},
			want:     "iget v0, v1, Lcom/example/Foo;->count:I",
			consumed: 4,
		},
		{
			name:     "string reference",
			data:     []byte{0x1a, 0x01, 0x00, 0x00},
			want:     `const-string v1, "hello"`,
			consumed: 4,
		},
		{
			name:     "string reference escaped",
			data:     []byte{0x1a, 0x00, 0x01, 0x00},
			want:     `const-string v0, "a\nb"`,
			consumed: 4,
		},
		{
			name:     "type reference",
			data:     []byte{0x1c, 0x00, 0x02, 0x00},
			want:     "const-class v0, Ljava/lang/String;",
			consumed: 4,
		},
	}

	dec := testDecoder(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dec.Decode(nil, tt.data, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.consumed, res.Consumed)
			assert.Equal(t, tt.want, token.Join(res.Tokens))
			assert.Len(t, res.Diagnostics, 0)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{
			name: "unknown opcode",
			data: []byte{0x3e, 0x00},
			err:  ErrUnknownOpcode,
		},
		{
			name: "short buffer",
			data: []byte{0x02, 0x01},
			err:  ErrShortBuffer,
		},
		{
			name: "invoke with too many registers",
			data: []byte{0x6e, 0x60, 0x01, 0x00, 0x00, 0x00},
			err:  ErrRegisterCount,
		},
		{
			name: "no guarded syntax alternative",
			data: []byte{0xfa, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00},
			err:  ErrNoSyntaxAlternative,
		},
		{
			name: "payload marker without record",
			data: []byte{0x00, 0x01, 0x00, 0x00},
			err:  ErrMissingPayload,
		},
		{
			name: "payload marker with unknown kind",
			data: []byte{0x00, 0x07},
			err:  ErrUnknownPayloadKind,
		},
	}

	dec := testDecoder(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dec.Decode(nil, tt.data, 0)
			assert.True(t, errors.Is(err, tt.err), err)
			assert.Equal(t, 0, res.Consumed)
		})
	}
}

func TestDecodeShortInput(t *testing.T) {
	dec := testDecoder(t)

	res, err := dec.Decode(nil, []byte{0x00}, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Consumed)
	assert.Len(t, res.Tokens, 0)

	res, err = dec.Decode(nil, nil, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Consumed)
}

func TestDecodeConditionalSyntax(t *testing.T) {
	dec := testDecoder(t)

	// invoke-polymorphic with a single register lists it before the method
	// and the unsupported proto reference renders as its raw word
	data := []byte{0xfa, 0x10, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00}
	res, err := dec.Decode(nil, data, 0)
	assert.NoError(t, err)
	assert.Equal(t, 8, res.Consumed)
	assert.Equal(t, "invoke-polymorphic {v3}, Lcom/example/Foo;->handle()V, proto@4",
		token.Join(res.Tokens))

	assert.Len(t, res.Diagnostics, 1)
	assert.Equal(t, LevelWarn, res.Diagnostics[0].Level)
	assert.Contains(t, res.Diagnostics[0].Message, "proto")
}

func TestDecodeResolvedMethodAddress(t *testing.T) {
	dec := testDecoder(t)

	data := []byte{0x6e, 0x10, 0x02, 0x00, 0x03, 0x00}
	res, err := dec.Decode(nil, data, 0)
	assert.NoError(t, err)
	assert.Equal(t, "invoke-virtual {v3}, Lcom/example/Foo;->handle()V", token.Join(res.Tokens))

	var resolved *token.Token
	for i := range res.Tokens {
		if res.Tokens[i].Type == token.AddressType {
			resolved = &res.Tokens[i]
		}
	}
	assert.NotNil(t, resolved)
	assert.True(t, resolved.HasValue)
	assert.Equal(t, int64(0x500), resolved.Value)
	assert.Equal(t, "handle", resolved.Text)
}

func TestDecodeHighRegisterDiagnostic(t *testing.T) {
	dec := testDecoder(t)

	data := []byte{0x03, 0x00, 0x00, 0x01, 0x00, 0x00}
	res, err := dec.Decode(nil, data, 0)
	assert.NoError(t, err)
	assert.Equal(t, "move/16 v256, v0", token.Join(res.Tokens))

	assert.Len(t, res.Diagnostics, 1)
	assert.Equal(t, LevelWarn, res.Diagnostics[0].Level)
	assert.Contains(t, res.Diagnostics[0].Message, "v256")
}

func TestDecodeUnresolvableReference(t *testing.T) {
	dec := testDecoder(t)

	data := []byte{0x52, 0x10, 0x05, 0x00} // field index past the pool
	res, err := dec.Decode(nil, data, 0)
	assert.NoError(t, err)
	assert.Equal(t, "iget v0, v1, field@5", token.Join(res.Tokens))

	assert.Len(t, res.Diagnostics, 1)
	assert.Equal(t, LevelWarn, res.Diagnostics[0].Level)
}

func TestDecodePseudo(t *testing.T) {
	dec := testDecoder(t)

	payloads := payload.Table{
		0x10: &payload.PackedSwitch{EntryCount: 2, FirstKey: 5, Targets: []int32{100, 200}},
		0x20: &payload.SparseSwitch{EntryCount: 2, Keys: []int32{1, 2}, Targets: []int32{10, 20}},
		0x30: &payload.FillArrayData{ElementWidth: 2, ElementCount: 2, Data: []byte{1, 2, 3, 4}},
	}

	res, err := dec.Decode(payloads, []byte{0x00, 0x01}, 0x10)
	assert.NoError(t, err)
	assert.Equal(t, 16, res.Consumed)
	assert.Len(t, res.Tokens, 1)
	assert.Equal(t, token.InstructionType, res.Tokens[0].Type)
	assert.Equal(t, ".packed-switch 0x5\n"+
		"        :pswitch_offset_64\n"+
		"        :pswitch_offset_c8\n"+
		"    .end packed-switch", res.Tokens[0].Text)

	res, err = dec.Decode(payloads, []byte{0x00, 0x02}, 0x20)
	assert.NoError(t, err)
	assert.Equal(t, 20, res.Consumed)
	assert.Equal(t, ".sparse-switch\n"+
		"        0x1 -> :sswitch_offset_a\n"+
		"        0x2 -> :sswitch_offset_14\n"+
		"    .end sparse-switch", res.Tokens[0].Text)

	res, err = dec.Decode(payloads, []byte{0x00, 0x03}, 0x30)
	assert.NoError(t, err)
	assert.Equal(t, 12, res.Consumed)
	assert.Contains(t, res.Tokens[0].Text, "pseudo-instruction: ")
}
