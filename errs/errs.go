// Package errs centralizes every diagnostic the lci pipeline can raise.
//
// Each stage (file I/O, lexing, tokenizing, parsing, evaluation) raises
// errors by Kind rather than by ad hoc fmt.Sprintf call sites, so every
// diagnostic carries a stable exit code and a uniform
// "<file>:<line>: <message> at: <near>" rendering.
package errs

import (
	"fmt"

	"github.com/juju/errors"
)

// Kind identifies one diagnostic shape in the registry below.
type Kind int

const (
	_ Kind = iota

	// 100s: file I/O
	FileOpenFailed
	FileReadFailed
	FileCloseFailed
	ConfigLoadFailed

	// 200s: lexing
	LexBadContinuation
	LexBadMultilineComment
	LexUnterminatedString
	LexMissingStringDelimiter
	LexUnterminatedBlockComment

	// 300s: tokenizing
	TokMalformedNumber
	TokUnknownLexeme

	// 400s: parsing
	ParseUnexpectedToken
	ParseExpectedType
	ParseExpectedIdentifier
	ParseExpectedExpression
	ParseExpectedStatement
	ParseExpectedEndOfBlock
	ParseDuplicateSwitchLiteral
	ParseInterpolatedSwitchCase
	ParseMismatchedLoopName
	ParseExpectedUnaryUpdateFunc
	ParseUnknownKeyword
	ParseExpectedEndOfExpression
	ParseExpectedEndOfStatement

	// 500s: runtime
	RuntimeRedefinition
	RuntimeUndefinedName
	RuntimeUndefinedFunction
	RuntimeWrongArgCount
	RuntimeDivisionByZero
	RuntimeBadCast
	RuntimeBooleanCast
	RuntimeIntegerCast
	RuntimeFloatCast
	RuntimeIncomparableTypes
	RuntimeBadEscape
	RuntimeUnclosedEscape
	RuntimeNonPositiveCodepoint
	RuntimeUnknownCodepointName
	RuntimeNotAnArray
	RuntimeSystemCommandDisabled
	RuntimeSystemCommandFailed
)

type entry struct {
	format   string
	exitCode int
}

var table = map[Kind]entry{
	FileOpenFailed:   {"could not open %s: %v", 101},
	FileReadFailed:   {"could not read %s: %v", 102},
	FileCloseFailed:  {"could not close %s: %v", 103},
	ConfigLoadFailed: {"could not load config %s: %v", 110},

	LexBadContinuation:         {"line continuation must be followed by a non-empty line", 201},
	LexBadMultilineComment:     {"OBTW must begin a line and be followed by a newline", 202},
	LexUnterminatedString:      {"unterminated string literal", 203},
	LexMissingStringDelimiter:  {"string literal must be followed by a delimiter", 204},
	LexUnterminatedBlockComment: {"OBTW comment has no matching TLDR", 205},

	TokMalformedNumber: {"malformed numeric literal %q", 301},
	TokUnknownLexeme:   {"unrecognized lexeme %q", 302},

	ParseUnexpectedToken:         {"expected %s, got %q", 401},
	ParseExpectedType:            {"expected a type name, got %q", 402},
	ParseExpectedIdentifier:      {"expected an identifier, got %q", 403},
	ParseExpectedExpression:      {"expected an expression, got %q", 404},
	ParseExpectedStatement:       {"expected a statement, got %q", 405},
	ParseExpectedEndOfBlock:      {"expected a block-closing keyword, got %q", 406},
	ParseDuplicateSwitchLiteral:  {"duplicate OMG case literal %v", 407},
	ParseInterpolatedSwitchCase:  {"OMG case literal may not contain interpolation", 408},
	ParseMismatchedLoopName:      {"IM OUTTA YR %s does not match enclosing loop %s", 409},
	ParseExpectedUnaryUpdateFunc: {"loop update function %s must take exactly one argument", 410},
	ParseUnknownKeyword:          {"unexpected keyword %q", 411},
	ParseExpectedEndOfExpression: {"expected end of expression, got %q", 412},
	ParseExpectedEndOfStatement:  {"expected end of statement, got %q", 413},

	RuntimeRedefinition:          {"%s is already declared in this scope", 501},
	RuntimeUndefinedName:         {"%s is not declared", 502},
	RuntimeUndefinedFunction:     {"%s is not a defined function", 503},
	RuntimeWrongArgCount:         {"%s expects %d argument(s), got %d", 504},
	RuntimeDivisionByZero:        {"division by zero", 505},
	RuntimeBadCast:               {"cannot cast %s to %s", 506},
	RuntimeBooleanCast:           {"%s has no boolean representation", 507},
	RuntimeIntegerCast:           {"%s has no integer representation", 508},
	RuntimeFloatCast:             {"%s has no float representation", 509},
	RuntimeIncomparableTypes:     {"cannot compare %s with %s", 510},
	RuntimeBadEscape:             {"bad escape sequence %q", 511},
	RuntimeUnclosedEscape:        {"unclosed %s escape", 512},
	RuntimeNonPositiveCodepoint:  {"codepoint escape must be positive", 513},
	RuntimeUnknownCodepointName:  {"unknown unicode codepoint name %q", 514},
	RuntimeNotAnArray:            {"%s is not an array", 515},
	RuntimeSystemCommandDisabled: {"I DUZ is disabled; set allow_system_commands: true in .lci.yaml", 516},
	RuntimeSystemCommandFailed:   {"system command failed: %v", 517},
}

// Error is a positioned diagnostic with a stable exit code.
type Error struct {
	Kind  Kind
	File  string
	Line  int
	Near  string
	cause error
}

// New builds a positioned diagnostic of the given kind.
func New(kind Kind, file string, line int, near string, args ...interface{}) *Error {
	return &Error{Kind: kind, File: file, Line: line, Near: near, cause: fmt.Errorf(table[kind].format, args...)}
}

// Wrap annotates an existing error (often from an earlier pipeline stage)
// with a new positioned diagnostic, preserving the cause chain.
func Wrap(kind Kind, cause error, file string, line int, near string, args ...interface{}) *Error {
	msg := fmt.Sprintf(table[kind].format, args...)
	return &Error{Kind: kind, File: file, Line: line, Near: near, cause: errors.Annotate(cause, msg)}
}

// ExitCode returns the stable process exit code for this diagnostic's kind.
func (e *Error) ExitCode() int {
	if ent, ok := table[e.Kind]; ok {
		return ent.exitCode
	}
	return 1
}

// Error implements the error interface with the "<file>:<line>: <message> at: <near>" shape.
func (e *Error) Error() string {
	msg := e.cause.Error()
	if e.Near == "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	}
	return fmt.Sprintf("%s:%d: %s at: %s", e.File, e.Line, msg, e.Near)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }
