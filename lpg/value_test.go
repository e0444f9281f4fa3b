package lpg_test

import (
	"testing"

	"github.com/StevenBtw/graphos/lpg"
	"github.com/stretchr/testify/assert"
)

func TestValue_Kinds(t *testing.T) {
	assert.True(t, lpg.Null().IsNull())
	assert.Equal(t, lpg.KindNull, lpg.Value{}.Kind(), "zero Value is null")

	s, ok := lpg.String("hi").AsString()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	i, ok := lpg.Int(-7).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(-7), i)

	b, ok := lpg.Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)
}

func TestValue_AsFloat(t *testing.T) {
	f, ok := lpg.Float(1.5).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	f, ok = lpg.Int(4).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)

	_, ok = lpg.String("4").AsFloat()
	assert.False(t, ok, "strings never coerce to weights")
	_, ok = lpg.Bool(true).AsFloat()
	assert.False(t, ok)
	_, ok = lpg.Null().AsFloat()
	assert.False(t, ok)
}
