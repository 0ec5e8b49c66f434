package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfTakesYesBranch(t *testing.T) {
	src := "HAI 1.2\nWIN\nO RLY?\nYA RLY\nVISIBLE \"YES\"\nNO WAI\nVISIBLE \"NO\"\nOIC\nKTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "YES\n", out)
}

func TestIfTakesMebbeBranch(t *testing.T) {
	src := "HAI 1.2\nFAIL\nO RLY?\nYA RLY\nVISIBLE \"YES\"\nMEBBE WIN\nVISIBLE \"MAYBE\"\nNO WAI\nVISIBLE \"NO\"\nOIC\nKTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "MAYBE\n", out)
}

func TestIfFallsThroughToElse(t *testing.T) {
	src := "HAI 1.2\nFAIL\nO RLY?\nYA RLY\nVISIBLE \"YES\"\nMEBBE FAIL\nVISIBLE \"MAYBE\"\nNO WAI\nVISIBLE \"NO\"\nOIC\nKTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "NO\n", out)
}

func TestSwitchFirstMatchNoFallthrough(t *testing.T) {
	src := "HAI 1.2\n2\nWTF?\nOMG 1\nVISIBLE \"ONE\"\nOMG 2\nVISIBLE \"TWO\"\nOMG 3\nVISIBLE \"THREE\"\nOIC\nKTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "TWO\n", out)
}

func TestSwitchNoMatchNoDefaultIsNoOp(t *testing.T) {
	src := "HAI 1.2\n99\nWTF?\nOMG 1\nVISIBLE \"ONE\"\nOIC\nVISIBLE \"AFTER\"\nKTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "AFTER\n", out)
}

func TestSwitchFallsToDefault(t *testing.T) {
	src := "HAI 1.2\n99\nWTF?\nOMG 1\nVISIBLE \"ONE\"\nOMGWTF\nVISIBLE \"DEFAULT\"\nOIC\nKTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "DEFAULT\n", out)
}
