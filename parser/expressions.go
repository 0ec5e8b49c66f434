package parser

import (
	"github.com/golci/lci/ast"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/token"
)

type opDef struct {
	op    ast.OpKind
	arity int // 1 = unary, 2 = binary, -1 = n-ary terminated by MKAY
}

var opTable = map[token.Kind]opDef{
	token.KwSUMOF:      {ast.OpAdd, 2},
	token.KwDIFFOF:     {ast.OpSub, 2},
	token.KwPRODUKTOF:  {ast.OpMul, 2},
	token.KwQUOSHUNTOF: {ast.OpDiv, 2},
	token.KwMODOF:      {ast.OpMod, 2},
	token.KwBIGGROF:    {ast.OpMax, 2},
	token.KwSMALLROF:   {ast.OpMin, 2},
	token.KwBOTHOF:     {ast.OpAnd, 2},
	token.KwEITHEROF:   {ast.OpOr, 2},
	token.KwWONOF:      {ast.OpXor, 2},
	token.KwBOTHSAEM:   {ast.OpEq, 2},
	token.KwDIFFRINT:   {ast.OpNeq, 2},
	token.KwNOT:        {ast.OpNot, 1},
	token.KwALLOF:      {ast.OpAllOf, -1},
	token.KwANYOF:      {ast.OpAnyOf, -1},
	token.KwSMOOSH:     {ast.OpConcat, -1},
}

func canStartExpr(k token.Kind) bool {
	switch k {
	case token.STRING, token.INT, token.FLOAT, token.BOOL, token.KwIT, token.KwMAEK, token.KwSRS, token.KwIDUZ, token.IDENT:
		return true
	}
	_, ok := opTable[k]
	return ok
}

// parseExpr parses exactly one expression and no more, per spec.md
// §4.3's keyword-routed expression dispatch.
func (p *Parser) parseExpr() (ast.Expr, *errs.Error) {
	pos := p.pos_()
	cur := p.cur()

	switch cur.Kind {
	case token.STRING:
		p.advance()
		return &ast.ConstExpr{Pos: pos, Value: ast.Constant{Pos: pos, Kind: ast.StringConst, Str: cur.Lit.(string)}}, nil
	case token.INT:
		p.advance()
		return &ast.ConstExpr{Pos: pos, Value: ast.Constant{Pos: pos, Kind: ast.IntConst, Int: cur.Lit.(int64)}}, nil
	case token.FLOAT:
		p.advance()
		return &ast.ConstExpr{Pos: pos, Value: ast.Constant{Pos: pos, Kind: ast.FloatConst, Float: cur.Lit.(float64)}}, nil
	case token.BOOL:
		p.advance()
		return &ast.ConstExpr{Pos: pos, Value: ast.Constant{Pos: pos, Kind: ast.BoolConst, Bool: cur.Lit.(bool)}}, nil
	case token.KwIT:
		p.advance()
		return &ast.ItExpr{Pos: pos}, nil
	case token.KwMAEK:
		p.advance()
		target, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind == token.KwA {
			p.advance()
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.CastExpr{Pos: pos, Target: target, NewType: t}, nil
	case token.KwSRS:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ident := &ast.Identifier{Pos: pos, Kind: ast.IndirectIdent, Expr: inner}
		if err := p.parseSlotChain(ident); err != nil {
			return nil, err
		}
		return &ast.IdentExpr{Pos: pos, Ident: ident}, nil
	case token.KwIDUZ:
		p.advance()
		cmd, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.SysCmdExpr{Pos: pos, Cmd: cmd}, nil
	case token.IDENT:
		return p.parseIdentOrCallExpr()
	}

	if def, ok := opTable[cur.Kind]; ok {
		return p.parseOpExpr(cur.Kind, def)
	}

	return nil, errs.New(errs.ParseExpectedExpression, p.file, cur.Line, cur.Image, cur.Image)
}

func (p *Parser) parseOpExpr(kind token.Kind, def opDef) (ast.Expr, *errs.Error) {
	pos := p.pos_()
	p.advance()

	switch def.arity {
	case 1:
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.OpExpr{Pos: pos, Op: def.op, Args: []ast.Expr{arg}}, nil

	case 2:
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind == token.KwAN {
			p.advance()
		}
		b, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.OpExpr{Pos: pos, Op: def.op, Args: []ast.Expr{a, b}}, nil

	default: // n-ary, MKAY-terminated, AN-separated
		var args []ast.Expr
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.cur().Kind == token.KwAN {
			p.advance()
			next, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
		}
		if err := p.expectEndOfExpr(); err != nil {
			return nil, err
		}
		return &ast.OpExpr{Pos: pos, Op: def.op, Args: args}, nil
	}
}

// parseIdentOrCallExpr handles a leading identifier that may start a
// function call (`<scope> IZ <name> YR a AN YR b MKAY`), a slot-qualified
// identifier read, or a bare identifier read.
func (p *Parser) parseIdentOrCallExpr() (ast.Expr, *errs.Error) {
	pos := p.pos_()
	first := p.advance()

	if p.cur().Kind == token.KwIZ {
		p.advance()
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{Pos: pos, Scope: scopeExprFor(first.Image, pos), Name: nameTok.Image, Args: args}, nil
	}

	ident := &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: first.Image}
	if err := p.parseSlotChain(ident); err != nil {
		return nil, err
	}
	return &ast.IdentExpr{Pos: pos, Ident: ident}, nil
}

// parseCallArgs parses the optional `YR a AN YR b ... MKAY` argument list.
// With no YR, a lone MKAY (`I IZ <name> MKAY`) is consumed if present.
func (p *Parser) parseCallArgs() ([]ast.Expr, *errs.Error) {
	var args []ast.Expr
	if p.cur().Kind != token.KwYR {
		if p.cur().Kind == token.KwMKAY {
			p.advance()
		}
		return args, nil
	}
	p.advance()
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args = append(args, first)
	for p.cur().Kind == token.KwAN {
		p.advance()
		if _, err := p.expect(token.KwYR); err != nil {
			return nil, err
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	if err := p.expectEndOfExpr(); err != nil {
		return nil, err
	}
	return args, nil
}

// parseSlotChain consumes zero or more `'Z <name>` accessors onto ident.
func (p *Parser) parseSlotChain(ident *ast.Identifier) *errs.Error {
	tail := ident
	for p.cur().Kind == token.KwSLOT {
		p.advance()
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return err
		}
		slot := &ast.Identifier{Pos: tail.Pos, Kind: ast.DirectIdent, Name: nameTok.Image}
		tail.Slot = slot
		tail = slot
	}
	return nil
}

func scopeExprFor(name string, pos ast.Pos) ast.Expr {
	if name == "I" {
		return nil
	}
	return &ast.IdentExpr{Pos: pos, Ident: &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: name}}
}

func (p *Parser) parseType() (ast.TypeKind, *errs.Error) {
	switch p.cur().Kind {
	case token.KwNOOB:
		p.advance()
		return ast.NilType, nil
	case token.KwTROOF:
		p.advance()
		return ast.BoolType, nil
	case token.KwNUMBR:
		p.advance()
		return ast.IntType, nil
	case token.KwNUMBAR:
		p.advance()
		return ast.FloatType, nil
	case token.KwYARN:
		p.advance()
		return ast.StringType, nil
	case token.KwBUKKIT:
		p.advance()
		return ast.ArrayType, nil
	}
	return 0, errs.New(errs.ParseExpectedType, p.file, p.cur().Line, p.cur().Image, p.cur().Image)
}
