package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsBoolCoercions(t *testing.T) {
	b, err := AsBool(Int{V: 0}, "t", 1)
	require.Nil(t, err)
	assert.False(t, b)

	b, err = AsBool(String{V: "x"}, "t", 1)
	require.Nil(t, err)
	assert.True(t, b)
}

func TestAsIntFromString(t *testing.T) {
	n, err := AsInt(String{V: "42"}, "t", 1)
	require.Nil(t, err)
	assert.Equal(t, int64(42), n)

	_, err = AsInt(String{V: "nope"}, "t", 1)
	assert.NotNil(t, err)
}

func TestFloatToStringTwoDecimals(t *testing.T) {
	assert.Equal(t, "3.14", Float{V: 3.14159}.String())
}

func TestEqualRejectsCrossKind(t *testing.T) {
	_, err := Equal(Int{V: 1}, String{V: "1"}, "t", 1)
	assert.NotNil(t, err)
}

func TestEqualFloatEpsilon(t *testing.T) {
	ok, err := Equal(Float{V: 1.0}, Float{V: 1.0 + 1e-9}, "t", 1)
	require.Nil(t, err)
	assert.True(t, ok)
}

func TestNilCoercionsAllError(t *testing.T) {
	_, err := AsBool(Nil{}, "t", 1)
	require.NotNil(t, err)
	assert.Equal(t, 507, err.ExitCode())

	_, err = AsInt(Nil{}, "t", 1)
	require.NotNil(t, err)
	assert.Equal(t, 508, err.ExitCode())

	_, err = AsFloat(Nil{}, "t", 1)
	require.NotNil(t, err)
	assert.Equal(t, 509, err.ExitCode())

	_, err = AsString(Nil{}, "t", 1)
	require.NotNil(t, err)
	assert.Equal(t, 506, err.ExitCode())
}

func TestArraySlotOrderPreserved(t *testing.T) {
	a := NewArray()
	a.SetMember("b", Int{V: 2})
	a.SetMember("a", Int{V: 1})
	assert.Equal(t, []string{"b", "a"}, a.Names())
}
