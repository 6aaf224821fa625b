// Package driver wires one compilation end to end: load the project
// file, obtain a parsed tree from an injected frontend, run the Symbols
// Pass, the type-decoration pass, and the Codegen Pass in order, and
// write the assembled program out.
package driver

import (
	"io/ioutil"

	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/check"
	"github.com/hegalit/aslc/internal/codegen"
	"github.com/hegalit/aslc/internal/decor"
	"github.com/hegalit/aslc/internal/logging"
	"github.com/hegalit/aslc/internal/project"
	"github.com/hegalit/aslc/internal/symbols"
	"github.com/hegalit/aslc/internal/symtab"
	"github.com/hegalit/aslc/internal/types"
)

// Compile runs one full compilation of cfg's entry file, using src to
// obtain the parsed tree. It reports diagnostics through the logging
// package as it goes. Declaration errors from the Symbols Pass do not
// stop it: the (possibly partial) program is still written out. It
// returns false if parsing or writing failed or if any errors were
// logged.
func Compile(cfg *project.Config, src ast.TreeSource) bool {
	tree, err := src.Parse(cfg.EntryPath)
	if err != nil {
		logging.PrintErrorMessage("Parse Error", err)
		return false
	}

	tm := types.NewManager()
	st := symtab.New()
	dec := decor.New()

	symbols.NewPass(tm, st, dec).Run(tree)
	logging.LogCompilationSummary()

	check.NewPass(tm, st, dec).Run(tree)

	prog := codegen.NewPass(tm, st, dec).Run(tree)

	if err := ioutil.WriteFile(cfg.OutputPath, []byte(prog.String()), 0644); err != nil {
		logging.PrintErrorMessage("Write Error", err)
		return false
	}
	return logging.ShouldProceed()
}
