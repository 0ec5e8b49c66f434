package token

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/golci/lci/errs"
	"github.com/golci/lci/lexer"
)

var (
	floatRe = regexp.MustCompile(`^-?[0-9]+\.[0-9]*$`)
	intRe   = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// Tokenize classifies a lexeme stream into a Token stream, in the order:
// string shape, float literal, int literal, boolean literal, newline
// (with suppression), single-word keyword, identifier, EOF, else error.
// Multi-word keyword phrases are collapsed afterwards by TokenizeMultiword.
// The first and any immediately repeated NEWLINE is dropped. The result
// always ends with one EOF token.
func Tokenize(lexemes []lexer.Lexeme) ([]Token, *errs.Error) {
	var out []Token
	lastWasNewline := true // true so a leading newline is dropped too

	for _, lx := range lexemes {
		tok, isNewline, ok, err := classify(lx)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if isNewline {
			if lastWasNewline {
				continue
			}
			lastWasNewline = true
			out = append(out, tok)
			continue
		}
		lastWasNewline = false
		out = append(out, tok)
	}

	if len(out) == 0 || out[len(out)-1].Kind != EOF {
		out = append(out, Token{Kind: EOF, Image: lexer.EOFText})
	}
	return out, nil
}

// classify converts one lexeme into (at most) one token. ok is false for
// lexemes that classify to nothing emitted directly by this function
// (there currently are none, but the shape keeps room for future
// zero-width lexeme kinds).
func classify(lx lexer.Lexeme) (tok Token, isNewline bool, ok bool, err *errs.Error) {
	text := lx.Text

	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return Token{Kind: STRING, Image: text, File: lx.File, Line: lx.Line, Lit: text[1 : len(text)-1]}, false, true, nil
	}

	if floatRe.MatchString(text) {
		f, perr := strconv.ParseFloat(text, 64)
		if perr != nil {
			return Token{}, false, false, errs.New(errs.TokMalformedNumber, lx.File, lx.Line, text, text)
		}
		return Token{Kind: FLOAT, Image: text, File: lx.File, Line: lx.Line, Lit: f}, false, true, nil
	}

	if intRe.MatchString(text) {
		i, perr := strconv.ParseInt(text, 10, 64)
		if perr != nil {
			return Token{}, false, false, errs.New(errs.TokMalformedNumber, lx.File, lx.Line, text, text)
		}
		return Token{Kind: INT, Image: text, File: lx.File, Line: lx.Line, Lit: i}, false, true, nil
	}

	if text == "WIN" {
		return Token{Kind: BOOL, Image: text, File: lx.File, Line: lx.Line, Lit: true}, false, true, nil
	}
	if text == "FAIL" {
		return Token{Kind: BOOL, Image: text, File: lx.File, Line: lx.Line, Lit: false}, false, true, nil
	}

	if text == "\n" {
		return Token{Kind: NEWLINE, Image: text, File: lx.File, Line: lx.Line}, true, true, nil
	}

	if text == "!" {
		return Token{Kind: BANG, Image: text, File: lx.File, Line: lx.Line}, false, true, nil
	}
	if text == "?" {
		return Token{Kind: QUESTION, Image: text, File: lx.File, Line: lx.Line}, false, true, nil
	}

	for _, kw := range keywordTable {
		if len(kw.words) == 1 && kw.words[0] == text {
			return Token{Kind: kw.kind, Image: text, File: lx.File, Line: lx.Line}, false, true, nil
		}
	}

	if identRe.MatchString(text) {
		return Token{Kind: IDENT, Image: text, File: lx.File, Line: lx.Line}, false, true, nil
	}

	if text == lexer.EOFText {
		return Token{Kind: EOF, Image: text, File: lx.File, Line: lx.Line}, false, true, nil
	}

	return Token{}, false, false, errs.New(errs.TokUnknownLexeme, lx.File, lx.Line, text, text)
}

// TokenizeMultiword runs Tokenize and then collapses runs of single-word
// keyword tokens into the multi-word phrases in keywordTable, preferring
// the longest match at each position. Single-word classification in
// classify() and multi-word collapsing here together implement spec.md's
// "longest-prefix-first" keyword rule without the tokenizer needing a
// lookahead buffer of lexemes.
func TokenizeMultiword(lexemes []lexer.Lexeme) ([]Token, *errs.Error) {
	flat, err := Tokenize(lexemes)
	if err != nil {
		return nil, err
	}

	byWords := make([]keywordDef, 0, len(keywordTable))
	for _, kw := range keywordTable {
		if len(kw.words) > 1 {
			byWords = append(byWords, kw)
		}
	}
	sort.Slice(byWords, func(i, j int) bool { return len(byWords[i].words) > len(byWords[j].words) })

	var out []Token
	for i := 0; i < len(flat); {
		matched := false
		for _, kw := range byWords {
			n := len(kw.words)
			if i+n > len(flat) {
				continue
			}
			if matchesWords(flat[i:i+n], kw.words) {
				out = append(out, Token{Kind: kw.kind, Image: joinImages(flat[i : i+n]), File: flat[i].File, Line: flat[i].Line})
				i += n
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, flat[i])
			i++
		}
	}
	return out, nil
}

// matchesWords compares each constituent token's surface image against
// the keyword phrase's words (the closing "?" of phrases like "O RLY ?"
// and "WTF ?" is a QUESTION token whose Image is already "?").
func matchesWords(toks []Token, words []string) bool {
	for i, w := range words {
		if toks[i].Kind == NEWLINE || toks[i].Kind == EOF {
			return false
		}
		if toks[i].Image != w {
			return false
		}
	}
	return true
}

func joinImages(toks []Token) string {
	s := ""
	for i, t := range toks {
		if i > 0 {
			s += " "
		}
		s += t.Image
	}
	return s
}
