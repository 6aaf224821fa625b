// Package errs implements the Errors collaborator: the only
// entry point the Symbols Pass calls when it rejects a duplicate
// identifier. Formatting the user-facing message lives here, not in the
// pass itself, so the pass stays focused on scope/decoration bookkeeping.
package errs

import (
	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/logging"
)

// DeclaredIdent reports that the identifier held by leaf is already
// declared in its scope. Compilation continues afterward: this is a
// declaration error, not a fatal fault. The first binding
// wins; the caller is responsible for not inserting the duplicate.
func DeclaredIdent(leaf *ast.Leaf) {
	logging.LogCompileError(
		"identifier `"+leaf.Text+"` is already declared in this scope",
		logging.LMKName,
		leaf.Position(),
	)
}
