package eval

import (
	"testing"

	"github.com/golci/lci/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeLenOnString(t *testing.T) {
	src := "HAI 1.2\n" +
		"VISIBLE I IZ LEN YR \"HELLO\" MKAY\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "5\n", out)
}

func TestNativeLenOnArray(t *testing.T) {
	src := "HAI 1.2\n" +
		"OH HAI IM BUCKET\n" +
		"I HAS A FOO ITZ 1\n" +
		"I HAS A BAR ITZ 2\n" +
		"KTHX\n" +
		"VISIBLE I IZ LEN YR BUCKET MKAY\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "2\n", out)
}

func TestNativeLenWrongArgCountErrors(t *testing.T) {
	main, perr := parser.Parse("HAI 1.2\nI IZ LEN MKAY\nKTHXBYE\n", "t.lol")
	require.Nil(t, perr)

	ev := New(nil, nil, nil, "t.lol")
	rerr := ev.Run(main)
	require.NotNil(t, rerr)
	assert.Equal(t, 504, rerr.ExitCode())
}
