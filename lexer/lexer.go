package lexer

import (
	"strings"

	"github.com/golci/lci/errs"
)

// Lexer holds the byte cursor over one source buffer, mirroring the
// teacher's Current/Position/Line/Column bookkeeping.
type Lexer struct {
	Src         string
	File        string
	Position    int
	SrcLength   int
	Line        int
	atLineStart bool
}

// NewLexer creates a Lexer ready to scan src.
func NewLexer(src, file string) *Lexer {
	return &Lexer{Src: src, File: file, Position: 0, SrcLength: len(src), Line: 1, atLineStart: true}
}

func (lx *Lexer) atEnd() bool { return lx.Position >= lx.SrcLength }

func (lx *Lexer) peek() byte {
	if lx.atEnd() {
		return 0
	}
	return lx.Src[lx.Position]
}

func (lx *Lexer) peekAt(offset int) byte {
	if lx.Position+offset >= lx.SrcLength {
		return 0
	}
	return lx.Src[lx.Position+offset]
}

func (lx *Lexer) advance() byte {
	c := lx.Src[lx.Position]
	lx.Position++
	return c
}

// isEllipsisStart reports whether the cursor sits on "..." or the single
// Unicode ellipsis character "…" (three-byte UTF-8 sequence).
func (lx *Lexer) isEllipsisStart() (width int, ok bool) {
	if lx.peek() == '.' && lx.peekAt(1) == '.' && lx.peekAt(2) == '.' {
		return 3, true
	}
	if strings.HasPrefix(lx.Src[lx.Position:], "…") {
		return len("…"), true
	}
	return 0, false
}

func (lx *Lexer) isDelim() bool {
	if lx.atEnd() {
		return true
	}
	c := lx.peek()
	if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ',' || c == '!' || c == '?' || c == '"' {
		return true
	}
	if c == '\'' && lx.peekAt(1) == 'Z' {
		return true
	}
	if _, ok := lx.isEllipsisStart(); ok {
		return true
	}
	return false
}

// Lex scans the whole buffer and returns its lexemes, terminated by a
// synthetic "$" lexeme.
func (lx *Lexer) Lex() ([]Lexeme, *errs.Error) {
	var out []Lexeme
	for !lx.atEnd() {
		c := lx.peek()

		switch {
		case c == ' ' || c == '\t':
			lx.advance()
			continue

		case c == '\r':
			lx.advance()
			if lx.peek() == '\n' {
				lx.advance()
			}
			out = append(out, Lexeme{Text: "\n", File: lx.File, Line: lx.Line})
			lx.Line++
			lx.atLineStart = true
			continue

		case c == '\n':
			lx.advance()
			out = append(out, Lexeme{Text: "\n", File: lx.File, Line: lx.Line})
			lx.Line++
			lx.atLineStart = true
			continue

		case c == ',':
			lx.advance()
			out = append(out, Lexeme{Text: "\n", File: lx.File, Line: lx.Line})
			lx.atLineStart = false
			continue

		case c == '!':
			lx.advance()
			out = append(out, Lexeme{Text: "!", File: lx.File, Line: lx.Line})
			lx.atLineStart = false
			continue

		case c == '?':
			lx.advance()
			out = append(out, Lexeme{Text: "?", File: lx.File, Line: lx.Line})
			lx.atLineStart = false
			continue

		case c == '\'' && lx.peekAt(1) == 'Z':
			lx.advance()
			lx.advance()
			out = append(out, Lexeme{Text: "'Z", File: lx.File, Line: lx.Line})
			lx.atLineStart = false
			continue

		case c == '"':
			lex, err := lx.readString()
			if err != nil {
				return nil, err
			}
			out = append(out, lex)
			lx.atLineStart = false
			continue
		}

		if width, ok := lx.isEllipsisStart(); ok {
			if err := lx.readContinuation(width); err != nil {
				return nil, err
			}
			// readContinuation lands the cursor at the start of the next
			// physical line, so OBTW is still legal right after one.
			lx.atLineStart = true
			continue
		}

		isLineStart := lx.atLineStart
		word, line := lx.readWord()
		switch word {
		case "BTW":
			lx.skipLineComment()
			lx.atLineStart = false
			continue
		case "OBTW":
			if !isLineStart {
				return nil, errs.New(errs.LexBadMultilineComment, lx.File, line, "OBTW")
			}
			if err := lx.skipBlockComment(line); err != nil {
				return nil, err
			}
			lx.atLineStart = false
			continue
		default:
			out = append(out, Lexeme{Text: word, File: lx.File, Line: line})
			lx.atLineStart = false
		}
	}

	out = append(out, Lexeme{Text: EOFText, File: lx.File, Line: lx.Line})
	return out, nil
}

// readWord consumes a maximal run of non-delimiter characters.
func (lx *Lexer) readWord() (string, int) {
	line := lx.Line
	start := lx.Position
	for !lx.isDelim() {
		lx.advance()
	}
	return lx.Src[start:lx.Position], line
}

// readString consumes a quoted string literal, including its surrounding
// quotes, honoring the colon-escape closing rule: a trailing run of `:`
// characters immediately before the `"` closes the string iff that run's
// length is even (an odd run means the final colon escapes the quote).
func (lx *Lexer) readString() (Lexeme, *errs.Error) {
	line := lx.Line
	start := lx.Position
	lx.advance() // opening quote

	for {
		if lx.atEnd() || lx.peek() == '\n' || lx.peek() == '\r' {
			return Lexeme{}, errs.New(errs.LexUnterminatedString, lx.File, line, lx.Src[start:lx.Position])
		}
		if lx.peek() == '"' {
			colons := 0
			for i := lx.Position - 1; i >= start+1 && lx.Src[i] == ':'; i-- {
				colons++
			}
			lx.advance()
			if colons%2 == 0 {
				break
			}
			continue
		}
		lx.advance()
	}

	text := lx.Src[start:lx.Position]
	if !lx.isDelim() {
		return Lexeme{}, errs.New(errs.LexMissingStringDelimiter, lx.File, line, text)
	}
	return Lexeme{Text: text, File: lx.File, Line: line}, nil
}

// readContinuation consumes a "..."/"…" line continuation and its
// trailing newline. It is invisible to the lexeme stream and fails when
// the following line is empty.
func (lx *Lexer) readContinuation(width int) *errs.Error {
	line := lx.Line
	lx.Position += width
	for lx.peek() == ' ' || lx.peek() == '\t' {
		lx.advance()
	}
	if lx.peek() != '\n' && lx.peek() != '\r' {
		return errs.New(errs.LexBadContinuation, lx.File, line, "")
	}
	if lx.peek() == '\r' {
		lx.advance()
	}
	if lx.peek() == '\n' {
		lx.advance()
	}
	lx.Line++

	probe := lx.Position
	for probe < lx.SrcLength && (lx.Src[probe] == ' ' || lx.Src[probe] == '\t') {
		probe++
	}
	if probe < lx.SrcLength && (lx.Src[probe] == '\n' || lx.Src[probe] == '\r') {
		return errs.New(errs.LexBadContinuation, lx.File, lx.Line, "")
	}
	return nil
}

func (lx *Lexer) skipLineComment() {
	for !lx.atEnd() && lx.peek() != '\n' && lx.peek() != '\r' {
		lx.advance()
	}
}

// skipBlockComment consumes an OBTW ... TLDR block. OBTW must be the
// first lexeme on its line and must be immediately followed by a newline.
func (lx *Lexer) skipBlockComment(line int) *errs.Error {
	for lx.peek() == ' ' || lx.peek() == '\t' {
		lx.advance()
	}
	if lx.peek() != '\n' && lx.peek() != '\r' {
		return errs.New(errs.LexBadMultilineComment, lx.File, line, "")
	}
	if lx.peek() == '\r' {
		lx.advance()
	}
	if lx.peek() == '\n' {
		lx.advance()
	}
	lx.Line++

	for !lx.atEnd() {
		lineStart := lx.Position
		for !lx.atEnd() && lx.peek() != '\n' && lx.peek() != '\r' {
			lx.advance()
		}
		content := strings.TrimSpace(lx.Src[lineStart:lx.Position])
		atEOF := lx.atEnd()
		if lx.peek() == '\r' {
			lx.advance()
		}
		if lx.peek() == '\n' {
			lx.advance()
		}
		lx.Line++
		if content == "TLDR" {
			return nil
		}
		if atEOF {
			break
		}
	}
	return errs.New(errs.LexUnterminatedBlockComment, lx.File, line, "")
}
