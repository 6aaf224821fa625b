// Command aslc is the command-line driver for the ASL compiler.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/common"
	"github.com/hegalit/aslc/internal/driver"
	"github.com/hegalit/aslc/internal/logging"
	"github.com/hegalit/aslc/internal/project"
)

var errNoFrontend = errors.New("no ast.TreeSource is wired into this build of aslc")

func main() {
	cli := olive.NewCLI("aslc", "aslc compiles ASL projects to abstract-machine assembly", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warning", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a project", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	cli.AddSubcommand("version", "print the aslc version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		logging.PrintInfoMessage("aslc version", common.CompilerVersion)
	}
}

// execBuildCommand loads the project file at the given path and runs the
// compilation; failures are reported through the logging package.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	cfg, err := project.Load(projectPath)
	if err != nil {
		logging.PrintErrorMessage("Project Load Error", err)
		return
	}

	level := loglevel
	if cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	logging.Initialize(level)

	// The lexer/parser that turns source text into an *ast.Branch tree is not
	// part of this module; wire a real ast.TreeSource implementation in
	// to make `build` produce output.
	var src ast.TreeSource
	if src == nil {
		logging.PrintErrorMessage("Build Error", errNoFrontend)
		return
	}

	driver.Compile(cfg, src)
}
