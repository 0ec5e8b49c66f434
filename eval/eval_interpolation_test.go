package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golci/lci/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolationFixedEscapes(t *testing.T) {
	src := "HAI 1.2\n" + `VISIBLE "A:)B:>C::D:"E"` + "\nKTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "A\nB\tC:D\"E\n", out)
}

func TestInterpolationVariable(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nI HAS A NAME ITZ \"WORLD\"\nVISIBLE \"HI :{NAME}\"\nKTHXBYE\n")
	assert.Equal(t, "HI WORLD\n", out)
}

func TestInterpolationHexCodepoint(t *testing.T) {
	out, _ := runProgram(t, "HAI 1.2\nVISIBLE \"STAR:: :(2605)\"\nKTHXBYE\n")
	assert.Equal(t, "STAR: \u2605\n", out)
}

func TestInterpolationUnknownUnicodeNameErrors(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nVISIBLE \":[BLACK STAR]\"\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)
	ev := New(&bytes.Buffer{}, strings.NewReader(""), nil, "t.lol")
	err := ev.Run(main)
	require.NotNil(t, err)
	assert.Equal(t, 514, err.ExitCode())
}

func TestInterpolationUnclosedBraceErrors(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nVISIBLE \"HI :{NAME\"\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)
	ev := New(&bytes.Buffer{}, strings.NewReader(""), nil, "t.lol")
	err := ev.Run(main)
	require.NotNil(t, err)
	assert.Equal(t, 512, err.ExitCode())
}
