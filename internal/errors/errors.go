// Package errors provides the single tagged error type shared across the
// lexer, parser, evaluator, and standard library, along with the fixed
// block renderer the CLI uses to report failures.
package errors

import (
	"fmt"
	"strings"

	"github.com/nibscript/nib/internal/token"
)

// Kind is a fixed, finite enum of error categories, grouped by the
// pipeline stage that raises them.
type Kind string

const (
	// Lexer kinds.
	InvalidChar              Kind = "InvalidChar"
	UnterminatedStringLiteral Kind = "UnterminatedStringLiteral"
	InvalidIntLiteral         Kind = "InvalidIntLiteral"
	InvalidFloatLiteral       Kind = "InvalidFloatLiteral"
	InvalidOperator           Kind = "InvalidOperator"
	UnexpectedEOF             Kind = "UnexpectedEOF"

	// Parser kinds.
	UnexpectedTokenType          Kind = "UnexpectedTokenType"
	FunctionShouldEndWithReturn Kind = "FunctionShouldEndWithReturn"

	// Evaluator kinds.
	InvalidSymbol           Kind = "InvalidSymbol"
	UnexpectedStatementType Kind = "UnexpectedStatementType"
	InvalidReturnLocation   Kind = "InvalidReturnLocation"
	UnexpectedExecResult    Kind = "UnexpectedExecResult"
	InvalidOperand          Kind = "InvalidOperand"
	InvalidParams           Kind = "InvalidParams"
	InvalidFunctionBody     Kind = "InvalidFunctionBody"
	TypeMismatch            Kind = "TypeMismatch"

	// Stdlib kinds.
	StdRead             Kind = "StdRead"
	StdMissingArgs      Kind = "StdMissingArgs"
	StdAssertionFailure Kind = "StdAssertionFailure"
	EmptyList           Kind = "EmptyList"

	// Shared fallback.
	Default Kind = "Default"
)

// Error is the single tagged-record error type. Every failure anywhere in
// the pipeline — lexer, parser, evaluator, stdlib — is one of these.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Found   string // offending lexeme or type name, "" if not applicable
	Message string // optional human-readable detail, "" if none
}

// New constructs an Error. found and message may be empty strings.
func New(kind Kind, pos token.Position, found, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Found: found, Message: message}
}

// Error implements the error interface by rendering the fixed block form.
func (e *Error) Error() string {
	return e.Format()
}

// Format renders the fixed diagnostic block specified for the CLI:
//
//	---
//	error: <KindName> at line <L>, col <C>
//	found: '<lexeme-or-type-name>'
//	info: <message or "none">
//	---
func (e *Error) Format() string {
	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "error: %s at line %d, col %d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	fmt.Fprintf(&sb, "found: '%s'\n", e.Found)
	info := e.Message
	if info == "" {
		info = "none"
	}
	fmt.Fprintf(&sb, "info: %s\n", info)
	sb.WriteString("---")
	return sb.String()
}

// FormatErrors renders a sequence of errors back to back, each as its own
// block, for callers (such as the lexer CLI subcommand) that accumulate
// more than one error before reporting.
func FormatErrors(errs []*Error) string {
	var sb strings.Builder
	for i, e := range errs {
		sb.WriteString(e.Format())
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
