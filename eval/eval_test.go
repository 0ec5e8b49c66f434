package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golci/lci/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, src string) (string, *Evaluator) {
	t.Helper()
	main, perr := parser.Parse(src, "t.lol")
	require.Nil(t, perr, "parse error: %v", perr)

	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""), nil, "t.lol")
	rerr := ev.Run(main)
	require.Nil(t, rerr, "eval error: %v", rerr)
	return out.String(), ev
}

func TestPrintLiteral(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nVISIBLE \"HELLO\"\nKTHXBYE\n")
	assert.Equal(t, "HELLO\n", out)
}

func TestPrintSuppressesNewline(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nVISIBLE \"HI\"!\nKTHXBYE\n")
	assert.Equal(t, "HI", out)
}

func TestDeclareAssignArithmetic(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nI HAS A X ITZ 5\nX R SUM OF X AN 1\nVISIBLE X\nKTHXBYE\n")
	assert.Equal(t, "6\n", out)
}

func TestDivisionByZero(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nI HAS A X ITZ QUOSHUNT OF 1 AN 0\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)
	ev := New(&bytes.Buffer{}, strings.NewReader(""), nil, "t.lol")
	err := ev.Run(main)
	require.NotNil(t, err)
	assert.Equal(t, 505, err.ExitCode())
}

func TestFloatPromotion(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nVISIBLE SUM OF 1 AN 2.5\nKTHXBYE\n")
	assert.Equal(t, "3.50\n", out)
}

func TestIntegerDivisionTruncatesTowardZero(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nVISIBLE QUOSHUNT OF -7 AN 2\nKTHXBYE\n")
	assert.Equal(t, "-3\n", out)
}

func TestDeallocRemovesBinding(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nI HAS A X ITZ 5\nX R NOOB\nVISIBLE X\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)
	ev := New(&bytes.Buffer{}, strings.NewReader(""), nil, "t.lol")
	err := ev.Run(main)
	require.NotNil(t, err)
	assert.Equal(t, 502, err.ExitCode())
}

func TestCastStatement(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nI HAS A X ITZ \"5\"\nX IS NOW A NUMBR\nVISIBLE SUM OF X AN 1\nKTHXBYE\n")
	assert.Equal(t, "6\n", out)
}

func TestFunctionCallAndRecursion(t *testing.T) {
	src := "HAI 1.2\n" +
		"HOW IZ I FACT YR N\n" +
		"BOTH SAEM N AN 0\n" +
		"O RLY?\n" +
		"YA RLY\n" +
		"FOUND YR 1\n" +
		"NO WAI\n" +
		"FOUND YR PRODUKT OF N AN I IZ FACT YR DIFF OF N AN 1 MKAY\n" +
		"OIC\n" +
		"IF U SAY SO\n" +
		"VISIBLE I IZ FACT YR 5 MKAY\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "120\n", out)
}

func TestUndefinedFunctionErrors(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nI IZ NOPE MKAY\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)
	ev := New(&bytes.Buffer{}, strings.NewReader(""), nil, "t.lol")
	err := ev.Run(main)
	require.NotNil(t, err)
	assert.Equal(t, 503, err.ExitCode())
}
