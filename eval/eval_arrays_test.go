package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golci/lci/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltArrayDefAndSlotAccess(t *testing.T) {
	src := "HAI 1.2\n" +
		"OH HAI IM PERSON\n" +
		"I HAS A NAME ITZ \"BOB\"\n" +
		"KTHX\n" +
		"VISIBLE PERSON'Z NAME\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "BOB\n", out)
}

func TestSlotAssignment(t *testing.T) {
	src := "HAI 1.2\n" +
		"OH HAI IM BOX\n" +
		"I HAS A N ITZ 1\n" +
		"KTHX\n" +
		"BOX'Z N R 99\n" +
		"VISIBLE BOX'Z N\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "99\n", out)
}

func TestSlotOnNonArrayErrors(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nI HAS A X ITZ 5\nVISIBLE X'Z Y\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)
	ev := New(&bytes.Buffer{}, strings.NewReader(""), nil, "t.lol")
	err := ev.Run(main)
	require.NotNil(t, err)
	assert.Equal(t, 515, err.ExitCode())
}

func TestGimmehReadsLine(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nI HAS A NAME\nGIMMEH NAME\nVISIBLE \"HI :{NAME}\"\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)
	var out bytes.Buffer
	ev := New(&out, strings.NewReader("ADA\n"), nil, "t.lol")
	rerr := ev.Run(main)
	require.Nil(t, rerr)
	assert.Equal(t, "HI ADA\n", out.String())
}
