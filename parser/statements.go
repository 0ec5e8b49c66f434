package parser

import (
	"math"

	"github.com/golci/lci/ast"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/token"
)

func (p *Parser) parseStatement(closers map[token.Kind]bool) (ast.Stmt, *errs.Error) {
	switch p.cur().Kind {
	case token.IDENT:
		return p.parseIdentStatement()
	case token.KwSRS:
		return p.parseSrsStatement()
	case token.KwVISIBLE:
		return p.parsePrintStatement()
	case token.KwGIMMEH:
		return p.parseInputStatement()
	case token.KwORLY:
		return p.parseIfStatement()
	case token.KwWTF:
		return p.parseSwitchStatement()
	case token.KwGTFO:
		pos := p.pos_()
		p.advance()
		return &ast.BreakStmt{Pos: pos}, nil
	case token.KwFOUNDYR:
		pos := p.pos_()
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Pos: pos, Value: val}, nil
	case token.KwIMINYR:
		return p.parseLoopStatement()
	case token.KwHOWIZ:
		return p.parseFuncDefStatement()
	case token.KwOHHAIIM:
		return p.parseAltArrayDefStatement()
	case token.KwCANHAS:
		return p.parseImportStatement()
	}

	if canStartExpr(p.cur().Kind) {
		pos := p.pos_()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Pos: pos, Expr: expr}, nil
	}

	return nil, errs.New(errs.ParseExpectedStatement, p.file, p.cur().Line, p.cur().Image, p.cur().Image)
}

// parseIdentStatement handles every statement shape that starts with a
// bare identifier: declare (via HAS A), call (via IZ), or an
// assign/deallocate/cast/bare-read continuation after an optional slot
// chain.
func (p *Parser) parseIdentStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	first := p.advance()

	if p.cur().Kind == token.KwHASA {
		return p.parseDeclareStatement(pos, first.Image)
	}
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
		call := &ast.CallExpr{Pos: pos, Scope: scopeExprFor(first.Image, pos), Name: nameTok.Image, Args: args}
		return &ast.ExprStmt{Pos: pos, Expr: call}, nil
	}

	ident := &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: first.Image}
	return p.parseIdentTailStatement(pos, ident)
}

func (p *Parser) parseSrsStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance()
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	ident := &ast.Identifier{Pos: pos, Kind: ast.IndirectIdent, Expr: inner}
	return p.parseIdentTailStatement(pos, ident)
}

// parseIdentTailStatement consumes an optional slot chain on ident, then
// dispatches on what follows: R (assign), R NOOB (deallocate),
// IS NOW A (cast), or nothing recognizable (a bare expression read).
func (p *Parser) parseIdentTailStatement(pos ast.Pos, ident *ast.Identifier) (ast.Stmt, *errs.Error) {
	if err := p.parseSlotChain(ident); err != nil {
		return nil, err
	}

	switch p.cur().Kind {
	case token.KwR:
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Pos: pos, Target: ident, Value: val}, nil
	case token.KwRNOOB:
		p.advance()
		return &ast.DeallocStmt{Pos: pos, Target: ident}, nil
	case token.KwISNOWA:
		p.advance()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.CastStmt{Pos: pos, Target: ident, NewType: t}, nil
	default:
		return &ast.ExprStmt{Pos: pos, Expr: &ast.IdentExpr{Pos: pos, Ident: ident}}, nil
	}
}

func (p *Parser) parseDeclareStatement(pos ast.Pos, scopeName string) (ast.Stmt, *errs.Error) {
	p.advance() // HAS A
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	target := &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: nameTok.Image}

	var scopeExpr ast.Expr = scopeExprFor(scopeName, pos)
	var init ast.Expr
	var initType *ast.TypeKind

	if p.cur().Kind == token.KwITZ {
		p.advance()
		if p.cur().Kind == token.KwA {
			p.advance()
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			initType = &t
		} else {
			val, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			init = val
		}
	}

	return &ast.DeclareStmt{Pos: pos, Scope: scopeExpr, Target: target, Init: init, InitType: initType}, nil
}

func (p *Parser) parsePrintStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance()
	var args []ast.Expr
	for canStartExpr(p.cur().Kind) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	suppress := false
	if p.cur().Kind == token.BANG {
		p.advance()
		suppress = true
	}
	return &ast.PrintStmt{Pos: pos, Args: args, Suppress: suppress}, nil
}

func (p *Parser) parseInputStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance()
	target, err := p.parseIdentifierTarget()
	if err != nil {
		return nil, err
	}
	return &ast.InputStmt{Pos: pos, Target: target}, nil
}

// parseIdentifierTarget parses a plain or SRS-indirect identifier with an
// optional slot chain, used where a statement needs a storage location
// but no further dispatch (GIMMEH's target).
func (p *Parser) parseIdentifierTarget() (*ast.Identifier, *errs.Error) {
	pos := p.pos_()
	if p.cur().Kind == token.KwSRS {
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ident := &ast.Identifier{Pos: pos, Kind: ast.IndirectIdent, Expr: inner}
		if err := p.parseSlotChain(ident); err != nil {
			return nil, err
		}
		return ident, nil
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	ident := &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: nameTok.Image}
	if err := p.parseSlotChain(ident); err != nil {
		return nil, err
	}
	return ident, nil
}

func (p *Parser) parseImportStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance()
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == token.QUESTION {
		p.advance()
	}
	return &ast.ImportStmt{Pos: pos, Name: nameTok.Image}, nil
}

func (p *Parser) parseIfStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance() // O RLY
	if _, err := p.expect(token.QUESTION); err != nil {
		return nil, err
	}
	if err := p.endStatement(nil); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwYARLY); err != nil {
		return nil, err
	}
	if err := p.endStatement(nil); err != nil {
		return nil, err
	}

	branchClosers := map[token.Kind]bool{token.KwMEBBE: true, token.KwNOWAI: true, token.KwOIC: true}
	yes, err := p.parseBlock(branchClosers)
	if err != nil {
		return nil, err
	}

	var guards []ast.Expr
	var blocks []*ast.Block
	for p.cur().Kind == token.KwMEBBE {
		p.advance()
		guard, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.endStatement(nil); err != nil {
			return nil, err
		}
		blk, err := p.parseBlock(branchClosers)
		if err != nil {
			return nil, err
		}
		guards = append(guards, guard)
		blocks = append(blocks, blk)
	}

	var elseBlock *ast.Block
	if p.cur().Kind == token.KwNOWAI {
		p.advance()
		if err := p.endStatement(nil); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock(map[token.Kind]bool{token.KwOIC: true})
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KwOIC); err != nil {
		return nil, err
	}
	return &ast.IfStmt{Pos: pos, Yes: yes, Guards: guards, Blocks: blocks, Else: elseBlock}, nil
}

func (p *Parser) parseSwitchStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance() // WTF
	if _, err := p.expect(token.QUESTION); err != nil {
		return nil, err
	}
	if err := p.endStatement(nil); err != nil {
		return nil, err
	}

	caseClosers := map[token.Kind]bool{token.KwOMG: true, token.KwOMGWTF: true, token.KwOIC: true}
	var cases []ast.SwitchCase
	for p.cur().Kind == token.KwOMG {
		p.advance()
		lit, err := p.parseCaseLiteral()
		if err != nil {
			return nil, err
		}
		for _, c := range cases {
			if constantsEqual(c.Literal, lit) {
				return nil, errs.New(errs.ParseDuplicateSwitchLiteral, p.file, lit.Pos.Line, "", lit)
			}
		}
		if err := p.endStatement(nil); err != nil {
			return nil, err
		}
		body, err := p.parseBlock(caseClosers)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.SwitchCase{Literal: lit, Body: body})
	}

	var def *ast.Block
	if p.cur().Kind == token.KwOMGWTF {
		p.advance()
		var err *errs.Error
		if err = p.endStatement(nil); err != nil {
			return nil, err
		}
		def, err = p.parseBlock(map[token.Kind]bool{token.KwOIC: true})
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KwOIC); err != nil {
		return nil, err
	}
	return &ast.SwitchStmt{Pos: pos, Cases: cases, Default: def}, nil
}

// parseCaseLiteral parses an OMG case's literal constant, rejecting
// interpolated-string cases (spec.md: case literals must compare by exact
// type+value, which an interpolated string cannot guarantee statically).
func (p *Parser) parseCaseLiteral() (ast.Constant, *errs.Error) {
	pos := p.pos_()
	cur := p.cur()
	switch cur.Kind {
	case token.STRING:
		p.advance()
		s := cur.Lit.(string)
		if containsInterpolation(s) {
			return ast.Constant{}, errs.New(errs.ParseInterpolatedSwitchCase, p.file, cur.Line, s)
		}
		return ast.Constant{Pos: pos, Kind: ast.StringConst, Str: s}, nil
	case token.INT:
		p.advance()
		return ast.Constant{Pos: pos, Kind: ast.IntConst, Int: cur.Lit.(int64)}, nil
	case token.FLOAT:
		p.advance()
		return ast.Constant{Pos: pos, Kind: ast.FloatConst, Float: cur.Lit.(float64)}, nil
	case token.BOOL:
		p.advance()
		return ast.Constant{Pos: pos, Kind: ast.BoolConst, Bool: cur.Lit.(bool)}, nil
	}
	return ast.Constant{}, errs.New(errs.ParseExpectedExpression, p.file, cur.Line, cur.Image, cur.Image)
}

func containsInterpolation(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && s[i+1] == '{' {
			return true
		}
	}
	return false
}

var switchEpsilon = float64(math.Nextafter32(1, 2) - 1)

func constantsEqual(a, b ast.Constant) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ast.NilConst:
		return true
	case ast.BoolConst:
		return a.Bool == b.Bool
	case ast.IntConst:
		return a.Int == b.Int
	case ast.FloatConst:
		d := a.Float - b.Float
		if d < 0 {
			d = -d
		}
		return d <= switchEpsilon
	case ast.StringConst:
		return a.Str == b.Str
	}
	return false
}

func (p *Parser) parseLoopStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance() // IM IN YR
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	name := nameTok.Image

	var update *ast.LoopUpdate
	var loopVar *ast.Identifier
	switch {
	case p.cur().Kind == token.KwUPPINYR:
		p.advance()
		varTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		loopVar = &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: varTok.Image}
		update = &ast.LoopUpdate{Kind: ast.UppinUpdate}
	case p.cur().Kind == token.KwNERFINYR:
		p.advance()
		varTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		loopVar = &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: varTok.Image}
		update = &ast.LoopUpdate{Kind: ast.NerfinUpdate}
	case p.cur().Kind == token.IDENT && p.peek().Kind == token.KwYR:
		funcTok := p.advance()
		p.advance() // YR
		varTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		loopVar = &ast.Identifier{Pos: pos, Kind: ast.DirectIdent, Name: varTok.Image}
		update = &ast.LoopUpdate{Kind: ast.UnaryCallUpdate, FuncName: funcTok.Image}
	}

	var guard *ast.LoopGuard
	switch p.cur().Kind {
	case token.KwWILE:
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		guard = &ast.LoopGuard{Til: false, Cond: cond}
	case token.KwTIL:
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		guard = &ast.LoopGuard{Til: true, Cond: cond}
	}

	if err := p.endStatement(nil); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(map[token.Kind]bool{token.KwIMOUTTAYR: true})
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KwIMOUTTAYR); err != nil {
		return nil, err
	}
	endTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if endTok.Image != name {
		return nil, errs.New(errs.ParseMismatchedLoopName, p.file, endTok.Line, endTok.Image, endTok.Image, name)
	}

	return &ast.LoopStmt{Pos: pos, Name: name, Var: loopVar, Update: update, Guard: guard, Body: body}, nil
}

func (p *Parser) parseFuncDefStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance() // HOW IZ
	scopeTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	var params []string
	if p.cur().Kind == token.KwYR {
		p.advance()
		first, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, first.Image)
		for p.cur().Kind == token.KwAN {
			p.advance()
			if _, err := p.expect(token.KwYR); err != nil {
				return nil, err
			}
			next, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			params = append(params, next.Image)
		}
	}

	if err := p.endStatement(nil); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(map[token.Kind]bool{token.KwIFUSAYSO: true})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwIFUSAYSO); err != nil {
		return nil, err
	}

	return &ast.FuncDefStmt{Pos: pos, Scope: scopeExprFor(scopeTok.Image, pos), Name: nameTok.Image, Params: params, Body: body}, nil
}

func (p *Parser) parseAltArrayDefStatement() (ast.Stmt, *errs.Error) {
	pos := p.pos_()
	p.advance() // OH HAI IM
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	var parent ast.Expr
	if p.cur().Kind == token.IDENT && p.cur().Image == "IM" && p.peek().Kind == token.KwLIEK {
		p.advance()
		p.advance()
		parent, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if err := p.endStatement(nil); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(map[token.Kind]bool{token.KwKTHX: true})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwKTHX); err != nil {
		return nil, err
	}

	return &ast.AltArrayDefStmt{Pos: pos, Name: nameTok.Image, Parent: parent, Body: body}, nil
}
