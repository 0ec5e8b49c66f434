// Package parser implements a recursive-descent parser for LOLCODE,
// routed by leading keyword phrase rather than by operator precedence
// (spec.md §4.3). It reports the first mismatch and unwinds; there is no
// error-recovery pass.
package parser

import (
	"github.com/golci/lci/ast"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/lexer"
	"github.com/golci/lci/token"
)

// Parser holds the token cursor, mirroring the teacher's two-token
// lookahead (CurrToken/NextToken) as a flat index into a pre-tokenized
// slice, since spec.md's grammar needs no re-lexing mid-parse.
type Parser struct {
	toks []token.Token
	pos  int
	file string
}

// New wraps an already-tokenized stream.
func New(toks []token.Token, file string) *Parser {
	return &Parser{toks: toks, pos: 0, file: file}
}

// Parse lexes, tokenizes, and parses src in one call.
func Parse(src, file string) (*ast.Main, *errs.Error) {
	lexemes, lerr := lexer.NewLexer(src, file).Lex()
	if lerr != nil {
		return nil, lerr
	}
	toks, terr := token.TokenizeMultiword(lexemes)
	if terr != nil {
		return nil, terr
	}
	return New(toks, file).ParseMain()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) pos_() ast.Pos {
	return ast.Pos{File: p.cur().File, Line: p.cur().Line}
}

func (p *Parser) expect(k token.Kind) (token.Token, *errs.Error) {
	if p.cur().Kind != k {
		if k == token.IDENT {
			return token.Token{}, errs.New(errs.ParseExpectedIdentifier, p.file, p.cur().Line, p.cur().Image, p.cur().Image)
		}
		return token.Token{}, errs.New(errs.ParseUnexpectedToken, p.file, p.cur().Line, p.cur().Image, string(k), p.cur().Image)
	}
	return p.advance(), nil
}

// expectEndOfExpr consumes the MKAY that closes an n-ary operator's
// argument list or a function call's YR...MKAY argument list.
func (p *Parser) expectEndOfExpr() *errs.Error {
	if p.cur().Kind != token.KwMKAY {
		return errs.New(errs.ParseExpectedEndOfExpression, p.file, p.cur().Line, p.cur().Image, p.cur().Image)
	}
	p.advance()
	return nil
}

func (p *Parser) skipNewlines() {
	for p.cur().Kind == token.NEWLINE {
		p.advance()
	}
}

// endStatement consumes the newline that should terminate a statement,
// tolerating the case where the next token is already a block closer or
// EOF (the tokenizer's newline suppression can leave none there).
func (p *Parser) endStatement(closers map[token.Kind]bool) *errs.Error {
	if p.cur().Kind == token.NEWLINE {
		p.advance()
		return nil
	}
	if p.cur().Kind == token.EOF || closers[p.cur().Kind] {
		return nil
	}
	return errs.New(errs.ParseExpectedEndOfStatement, p.file, p.cur().Line, p.cur().Image, p.cur().Image)
}

// ParseMain parses the whole `HAI <version> ... KTHXBYE` program.
func (p *Parser) ParseMain() (*ast.Main, *errs.Error) {
	p.skipNewlines()
	start := p.pos_()
	if _, err := p.expect(token.KwHAI); err != nil {
		return nil, err
	}
	version := ""
	if p.cur().Kind == token.FLOAT || p.cur().Kind == token.INT {
		version = p.cur().Image
		p.advance()
	}
	if err := p.endStatement(nil); err != nil {
		return nil, err
	}

	closers := map[token.Kind]bool{token.KwKTHXBYE: true}
	body, err := p.parseBlock(closers)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwKTHXBYE); err != nil {
		return nil, err
	}
	p.skipNewlines()
	return &ast.Main{Pos: start, Version: version, Body: body}, nil
}

// parseBlock parses statements until a closer keyword or EOF.
func (p *Parser) parseBlock(closers map[token.Kind]bool) (*ast.Block, *errs.Error) {
	block := &ast.Block{}
	for {
		p.skipNewlines()
		if p.cur().Kind == token.EOF || closers[p.cur().Kind] {
			return block, nil
		}
		stmt, err := p.parseStatement(closers)
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
		if err := p.endStatement(closers); err != nil {
			return nil, err
		}
	}
}
