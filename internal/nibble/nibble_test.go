package nibble

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestExtractField(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		start  int
		width  int
		want   uint64
		hasErr bool
	}{
		{name: "high nibble", data: []byte{0xab, 0xcd}, start: 0, width: 1, want: 0xa},
		{name: "low nibble", data: []byte{0xab, 0xcd}, start: 1, width: 1, want: 0xb},
		{name: "second byte high nibble", data: []byte{0xab, 0xcd}, start: 2, width: 1, want: 0xc},
		{name: "byte", data: []byte{0xab, 0xcd}, start: 0, width: 2, want: 0xab},
		{name: "second byte", data: []byte{0xab, 0xcd}, start: 2, width: 2, want: 0xcd},
		{name: "unit", data: []byte{0xab, 0xcd}, start: 0, width: 4, want: 0xabcd},
		{
			name:  "two units low unit first",
			data:  []byte{0x12, 0x34, 0x56, 0x78},
			start: 0,
			width: 8,
			want:  0x56781234,
		},
		{
			name:  "four units low unit first",
			data:  []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88},
			start: 0,
			width: 16,
			want:  0x7788556633441122,
		},
		{name: "unsupported width", data: []byte{0xab, 0xcd}, start: 0, width: 3, hasErr: true},
		{name: "out of range", data: []byte{0xab}, start: 0, width: 4, hasErr: true},
		{name: "negative start", data: []byte{0xab, 0xcd}, start: -1, width: 1, hasErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ExtractField(tt.data, tt.start, tt.width)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		width int
		want  int64
	}{
		{name: "nibble positive", value: 0x7, width: 1, want: 7},
		{name: "nibble negative", value: 0xf, width: 1, want: -1},
		{name: "byte positive", value: 0x05, width: 2, want: 5},
		{name: "byte negative", value: 0xfb, width: 2, want: -5},
		{name: "unit min", value: 0x8000, width: 4, want: -32768},
		{name: "unit negative", value: 0xffff, width: 4, want: -1},
		{name: "double unit", value: 0xfffffffe, width: 8, want: -2},
		{name: "full width negative", value: 0xffffffffffffffff, width: 16, want: -1},
		{name: "full width positive", value: 0x7fffffffffffffff, width: 16, want: 0x7fffffffffffffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignExtend(tt.value, tt.width))
		})
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		width     int
		hasErr    bool
		errSubstr string
	}{
		{name: "nibble fields", format: "B|A|op", width: 4},
		{name: "filler unit", format: "ØØ|op AAAA", width: 8},
		{name: "continuation", format: "AA|op BBBBlo BBBBhi", width: 12},
		{name: "long continuation", format: "AA|op BBBBlo BBBB BBBB BBBBhi", width: 20},
		{name: "invoke layout", format: "A|G|op BBBB F|E|D|C", width: 12},
		{name: "lowercase chunk", format: "xx|op", hasErr: true, errSubstr: "malformed layout chunk"},
		{name: "mixed letters", format: "AB|op", hasErr: true, errSubstr: "malformed layout chunk"},
		{name: "unterminated lo", format: "AA|op BBBBlo", hasErr: true, errSubstr: "unterminated lo chunk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := ParseLayout(tt.format)
			if tt.hasErr {
				assert.ErrorContains(t, err, tt.errSubstr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.format, layout.String())
			assert.Equal(t, tt.width, layout.Width())
		})
	}
}

func TestLayoutInterpret(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   []byte
		want   Fields
	}{
		{
			name:   "nibble fields",
			format: "B|A|op",
			data:   []byte{0x3f, 0x01},
			want:   Fields{'B': 0x3, 'A': 0xf},
		},
		{
			name:   "byte and unit field",
			format: "AA|op BBBB",
			data:   []byte{0x12, 0x05, 0xab, 0xcd},
			want:   Fields{'A': 0x12, 'B': 0xabcd},
		},
		{
			name:   "continuation field",
			format: "AA|op BBBBlo BBBBhi",
			data:   []byte{0x10, 0x22, 0x12, 0x34, 0x56, 0x78},
			want:   Fields{'A': 0x10, 'B': 0x56781234},
		},
		{
			name:   "filler skipped",
			format: "ØØ|op AAAA BBBB",
			data:   []byte{0x00, 0x03, 0x01, 0x00, 0x00, 0x02},
			want:   Fields{'A': 0x0100, 'B': 0x0002},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := ParseLayout(tt.format)
			assert.NoError(t, err)

			fields, err := layout.Interpret(tt.data)
			assert.NoError(t, err)
			assert.Len(t, fields, len(tt.want))
			for name, value := range tt.want {
				assert.Equal(t, value, fields[name])
			}
		})
	}
}

func TestLayoutInterpretShortData(t *testing.T) {
	layout, err := ParseLayout("AA|op BBBB")
	assert.NoError(t, err)

	fields, err := layout.Interpret([]byte{0x12, 0x05})
	assert.ErrorContains(t, err, "field B")
	assert.Equal(t, uint64(0x12), fields['A'])
	assert.Equal(t, uint64(0), fields['B'])
}
