// Package eval walks the AST the parser produces, threading a scope chain,
// the implicit variable IT, and I/O through every statement and expression
// per spec.md §4.4.
package eval

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/golci/lci/ast"
	"github.com/golci/lci/config"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/scope"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("lci.eval")

// Evaluator holds everything a running program needs besides the AST
// itself: the global scope, the I/O streams GIMMEH/VISIBLE use, and the
// run configuration gating I DUZ.
type Evaluator struct {
	Global  *scope.Scope
	Out     io.Writer
	In      *bufio.Reader
	Cfg     *config.Config
	File    string
	Natives map[string]*objects.Native
}

// New builds an Evaluator. A nil cfg is treated as config.Default().
func New(out io.Writer, in io.Reader, cfg *config.Config, file string) *Evaluator {
	if cfg == nil {
		cfg = config.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	if in == nil {
		in = os.Stdin
	}
	return &Evaluator{
		Global:  scope.New(nil),
		Out:     out,
		In:      bufio.NewReader(in),
		Cfg:     cfg,
		File:    file,
		Natives: defaultNatives(),
	}
}

// defaultNatives is the closed table of binding(native-fn-pointer)
// statements Run injects into the global scope before a program's own
// body executes. LEN is the only one: spec.md's BUKKIT and YARN have no
// LOLCODE-level way to ask their own size.
func defaultNatives() map[string]*objects.Native {
	length := &objects.Native{
		Name:  "LEN",
		Arity: 1,
		Fn: func(args []objects.Value, file string, line int) (objects.Value, *errs.Error) {
			switch v := args[0].(type) {
			case objects.String:
				return objects.Int{V: int64(utf8.RuneCountInString(v.V))}, nil
			case *objects.Array:
				return objects.Int{V: int64(len(v.Names()))}, nil
			default:
				return nil, errs.New(errs.RuntimeBadCast, file, line, "", v.Type(), "YARN or BUKKIT")
			}
		},
	}
	return map[string]*objects.Native{length.Name: length}
}

// flowKind tags how a block's execution was interrupted, if at all.
type flowKind int

const (
	flowNormal flowKind = iota
	flowBreak
	flowReturn
)

// flow is the control-flow signal that unwinds a block's statement loop:
// normal completion, GTFO breaking the innermost loop, or FOUND YR
// carrying its value back to the call site.
type flow struct {
	kind  flowKind
	value objects.Value
}

// Run executes a parsed program to completion in the global scope. Before
// main.Body runs, it injects one BindingStmt per registered native the
// global scope does not already hold, so a program can call LEN without
// the grammar ever having produced a binding(native-fn-pointer) statement
// itself, and an Evaluator can Run several programs (as the REPL does).
func (e *Evaluator) Run(main *ast.Main) *errs.Error {
	if e.Cfg.Verbose {
		logger.Infof("running %s (HAI %s)", e.File, main.Version)
	}
	for name := range e.Natives {
		if _, bound := e.Global.GetMember(name); bound {
			continue
		}
		if _, err := e.execStmt(&ast.BindingStmt{Pos: ast.Pos{File: e.File}, Name: name}, e.Global); err != nil {
			return err
		}
	}
	_, err := e.execBlock(main.Body, e.Global)
	return err
}

// execBlock runs stmts in order, stopping at the first error or the first
// non-normal flow signal (break/return), which it passes up unchanged.
func (e *Evaluator) execBlock(b *ast.Block, s *scope.Scope) (flow, *errs.Error) {
	for _, stmt := range b.Stmts {
		f, err := e.execStmt(stmt, s)
		if err != nil {
			return flow{}, err
		}
		if f.kind != flowNormal {
			return f, nil
		}
	}
	return flow{kind: flowNormal}, nil
}
