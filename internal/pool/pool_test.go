package pool

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStaticResolver(t *testing.T) {
	resolver := &Static{
		Fields:  []Field{{Class: "LFoo;", Name: "count", Type: "I"}},
		Methods: []Method{{Class: "LFoo;", Name: "bar"}},
		Strings: []string{"hello"},
		Types:   []string{"LFoo;"},
	}

	field, err := resolver.Field(0)
	assert.NoError(t, err)
	assert.Equal(t, "count", field.Name)

	method, err := resolver.Method(0)
	assert.NoError(t, err)
	assert.Equal(t, "bar", method.Name)
	assert.False(t, method.HasCodeOffset)

	text, err := resolver.String(0)
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)

	typ, err := resolver.Type(0)
	assert.NoError(t, err)
	assert.Equal(t, "LFoo;", typ)
}

func TestStaticResolverOutOfRange(t *testing.T) {
	resolver := &Static{}

	_, err := resolver.Field(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = resolver.Method(1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = resolver.String(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = resolver.Type(3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}
