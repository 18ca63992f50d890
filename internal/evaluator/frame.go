package evaluator

import (
	"fmt"
	"os"

	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/runtime"
)

// Frame is the statement-level unit of iteration: a statement list
// together with a position cursor. Frame.pos is monotonically
// non-decreasing and bounded by len(Body).
//
// Design note: spec.md describes run_frame as returning Unit once pos
// reaches len(Body). Taken completely literally that would discard the
// value of a brace block used as an if-branch (e.g. `{ 1 }`), which the
// seed scenarios require to produce 1. Function bodies never actually
// reach that branch — the parser's implicit-return rewrite guarantees
// every function body ends in an explicit Return, so a call's frame
// always exits via the Returned-propagation path — so the two readings
// agree for calls. For non-function statement lists (if-branch blocks,
// the top-level program) a Frame instead completes with the ExecResult
// of its last executed statement, which is what lets a brace block serve
// as an expression's value.
type Frame struct {
	Body ast.StatementList
	pos  int
}

// NewFrame creates a Frame over body, positioned at its first statement.
func NewFrame(body ast.StatementList) *Frame {
	return &Frame{Body: body}
}

// Run executes Body sequentially against scope, threading each
// Assignment's extended scope to subsequent statements, and returns the
// frame's result plus any evaluation error. A Returned result propagates
// immediately, stopping at pos < len(Body).
func (e *Evaluator) Run(f *Frame, scope *runtime.Scope) (ExecResult, *errors.Error) {
	result := Unit()
	for f.pos < len(f.Body) {
		stmt := f.Body[f.pos]
		if e.Trace {
			pos := stmt.Pos()
			fmt.Fprintf(os.Stderr, "[trace] %T at line %d, col %d\n", stmt, pos.Line, pos.Column)
		}
		stmtResult, nextScope, err := e.execStatement(stmt, scope)
		if err != nil {
			return ExecResult{}, err
		}
		if stmtResult.IsReturned() {
			return stmtResult, nil
		}
		result = stmtResult
		scope = nextScope
		f.pos++
	}
	return result, nil
}
