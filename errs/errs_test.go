package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRendersPositionAndNear(t *testing.T) {
	err := New(RuntimeUndefinedName, "prog.lol", 12, "X", "X")
	assert.Equal(t, `prog.lol:12: X is not declared at: X`, err.Error())
	assert.Equal(t, 502, err.ExitCode())
}

func TestNewOmitsNearWhenEmpty(t *testing.T) {
	err := New(RuntimeDivisionByZero, "prog.lol", 3, "")
	assert.Equal(t, "prog.lol:3: division by zero", err.Error())
}

func TestWrapIncludesCauseMessage(t *testing.T) {
	cause := errors.New("file vanished")
	err := Wrap(FileOpenFailed, cause, "prog.lol", 0, "", "prog.lol", cause)
	assert.Contains(t, err.Error(), "file vanished")
	assert.Equal(t, 101, err.ExitCode())
}

func TestParseKindExitCodes(t *testing.T) {
	assert.Equal(t, 403, New(ParseExpectedIdentifier, "t", 1, "", "5").ExitCode())
	assert.Equal(t, 412, New(ParseExpectedEndOfExpression, "t", 1, "", "5").ExitCode())
	assert.Equal(t, 413, New(ParseExpectedEndOfStatement, "t", 1, "", "5").ExitCode())
}

func TestUnknownKindFallsBackToExitCodeOne(t *testing.T) {
	err := &Error{Kind: Kind(9999), File: "x", Line: 1, cause: errors.New("boom")}
	assert.Equal(t, 1, err.ExitCode())
}
