package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopCountsUpAndStops(t *testing.T) {
	src := "HAI 1.2\n" +
		"I HAS A X ITZ 0\n" +
		"IM IN YR LOOP UPPIN YR X WILE DIFFRINT X AN 3\n" +
		"IM OUTTA YR LOOP\n" +
		"VISIBLE X\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "3\n", out)
}

func TestLoopBreakWithGtfo(t *testing.T) {
	src := "HAI 1.2\n" +
		"I HAS A X ITZ 0\n" +
		"IM IN YR LOOP UPPIN YR X\n" +
		"BOTH SAEM X AN 2\n" +
		"O RLY?\n" +
		"YA RLY\n" +
		"GTFO\n" +
		"OIC\n" +
		"IM OUTTA YR LOOP\n" +
		"VISIBLE X\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "2\n", out)
}

func TestLoopFalseGuardRunsZeroIterations(t *testing.T) {
	src := "HAI 1.2\n" +
		"I HAS A X ITZ 0\n" +
		"IM IN YR LOOP UPPIN YR X WILE BOTH SAEM X AN 99\n" +
		"IM OUTTA YR LOOP\n" +
		"VISIBLE X\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "0\n", out)
}

func TestLoopTilInvertsGuard(t *testing.T) {
	src := "HAI 1.2\n" +
		"I HAS A X ITZ 0\n" +
		"IM IN YR LOOP UPPIN YR X TIL BOTH SAEM X AN 3\n" +
		"IM OUTTA YR LOOP\n" +
		"VISIBLE X\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "3\n", out)
}

func TestLoopUppinPromotesFloatLoopVariable(t *testing.T) {
	src := "HAI 1.2\n" +
		"I HAS A X ITZ 1.5\n" +
		"IM IN YR LOOP UPPIN YR X WILE DIFFRINT X AN 2.5\n" +
		"IM OUTTA YR LOOP\n" +
		"VISIBLE X\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "2.50\n", out)
}

func TestLoopUnaryCallUpdate(t *testing.T) {
	src := "HAI 1.2\n" +
		"HOW IZ I DOUBLE YR N\n" +
		"FOUND YR PRODUKT OF N AN 2\n" +
		"IF U SAY SO\n" +
		"I HAS A X ITZ 1\n" +
		"IM IN YR LOOP DOUBLE YR X WILE DIFFRINT X AN 8\n" +
		"IM OUTTA YR LOOP\n" +
		"VISIBLE X\n" +
		"KTHXBYE\n"
	out, _ := runProgram(t, src)
	assert.Equal(t, "8\n", out)
}
