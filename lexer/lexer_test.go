package lexer

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Lexeme {
	t.Helper()
	out, err := NewLexer(src, "test.lol").Lex()
	require.Nil(t, err)
	return out
}

func TestLexerSplitsWordsOnWhitespace(t *testing.T) {
	out := lexAll(t, "HAI 1.2\nVISIBLE \"OK\"\nKTHXBYE\n")
	var texts []string
	for _, lx := range out {
		texts = append(texts, lx.Text)
	}
	assert.Equal(t, []string{"HAI", "1.2", "\n", "VISIBLE", "\"OK\"", "\n", "KTHXBYE", "\n", EOFText}, texts)
}

func TestLexerCommaIsSoftNewline(t *testing.T) {
	out := lexAll(t, "I HAS A X, VISIBLE X")
	found := false
	for _, lx := range out {
		if lx.Text == "\n" {
			found = true
		}
	}
	assert.True(t, found, "comma must lex as a newline atom")
}

func TestLexerBangAndQuestionAreOwnLexemes(t *testing.T) {
	out := lexAll(t, "O RLY?")
	var texts []string
	for _, lx := range out {
		texts = append(texts, lx.Text)
	}
	assert.Equal(t, []string{"O", "RLY", "?", EOFText}, texts)
}

func TestLexerLineContinuationIsInvisible(t *testing.T) {
	out := lexAll(t, "SUM OF 1 AN...\n2\n")
	var texts []string
	for _, lx := range out {
		texts = append(texts, lx.Text)
	}
	assert.Equal(t, []string{"SUM", "OF", "1", "AN", "2", "\n", EOFText}, texts)
}

func TestLexerLineContinuationRejectsEmptyFollowingLine(t *testing.T) {
	_, err := NewLexer("SUM OF 1 AN...\n\n2\n", "test.lol").Lex()
	require.NotNil(t, err)
}

func TestLexerSingleLineComment(t *testing.T) {
	out := lexAll(t, "VISIBLE 1 BTW this is ignored\nKTHXBYE\n")
	var texts []string
	for _, lx := range out {
		texts = append(texts, lx.Text)
	}
	assert.Equal(t, []string{"VISIBLE", "1", "\n", "KTHXBYE", "\n", EOFText}, texts)
}

func TestLexerBlockComment(t *testing.T) {
	out := lexAll(t, "VISIBLE 1\nOBTW\nanything goes here\nTLDR\nKTHXBYE\n")
	var texts []string
	for _, lx := range out {
		texts = append(texts, lx.Text)
	}
	assert.Equal(t, []string{"VISIBLE", "1", "\n", "KTHXBYE", "\n", EOFText}, texts)
}

func TestLexerBlockCommentRejectsMidLineOBTW(t *testing.T) {
	_, err := NewLexer("I HAS A X OBTW oops TLDR\n", "test.lol").Lex()
	require.NotNil(t, err)
	assert.Equal(t, 202, err.ExitCode())
}

func TestLexerBlockCommentAllowsOBTWAfterContinuation(t *testing.T) {
	out := lexAll(t, "SUM OF 1 AN...\nOBTW\nskip\nTLDR\n2\n")
	var texts []string
	for _, lx := range out {
		texts = append(texts, lx.Text)
	}
	assert.Equal(t, []string{"SUM", "OF", "1", "AN", "2", "\n", EOFText}, texts)
}

func TestLexerStringColonEscapeClosing(t *testing.T) {
	out := lexAll(t, `VISIBLE "a::b"` + "\n")
	require.Len(t, out, 4)
	assert.Equal(t, `"a::b"`, out[1].Text)
}

func TestLexerStringOddColonDoesNotClose(t *testing.T) {
	out := lexAll(t, `VISIBLE "a:"b c"` + "\n")
	assert.Equal(t, `"a:"b c"`, out[1].Text)
}

// Invariant: every lexeme's Text round-trips to the exact source slice it
// was scanned from for simple identifier-shaped words (no escapes).
func TestLexemeRoundTripProperty(t *testing.T) {
	props := gopter.NewProperties(nil)
	ident := gen.RegexMatch(`^[A-Z][A-Z0-9]{0,8}$`)

	props.Property("single keyword-shaped word lexes back to itself", prop.ForAll(
		func(word string) bool {
			out, err := NewLexer(word+"\n", "p.lol").Lex()
			if err != nil || len(out) < 1 {
				return false
			}
			return out[0].Text == word
		},
		ident,
	))

	props.TestingRun(t)
}
