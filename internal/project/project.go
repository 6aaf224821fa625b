// Package project loads a compilation's TOML project file, the way the
// teaching compiler's module system loads a module file, scaled down to
// the handful of settings this compiler actually needs.
package project

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/hegalit/aslc/internal/common"
)

// tomlProjectFile mirrors the on-disk shape of aslmod.toml.
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

type tomlProject struct {
	Name       string `toml:"name"`
	Entry      string `toml:"entry"`
	OutputPath string `toml:"output,omitempty"`
	LogLevel   string `toml:"log-level,omitempty"`
}

// Config is a loaded, validated project configuration.
type Config struct {
	// Name is the project's name, used only for display.
	Name string

	// Root is the directory the project file was loaded from.
	Root string

	// EntryPath is the absolute path to the source file to compile.
	EntryPath string

	// OutputPath is where the assembled program's textual form is
	// written. Defaults to the entry file's name with the source
	// extension stripped and ".asm" appended.
	OutputPath string

	// LogLevel names the logging verbosity ("silent", "error",
	// "warning", "verbose"); empty means the default.
	LogLevel string
}

// Load reads and validates the project file at dir/aslmod.toml.
func Load(dir string) (*Config, error) {
	f, err := os.Open(filepath.Join(dir, common.ProjectFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buf, tpf); err != nil {
		return nil, fmt.Errorf("malformed project file: %w", err)
	}
	if tpf.Project == nil {
		return nil, errors.New("project file is missing its [project] table")
	}
	tp := tpf.Project

	if tp.Entry == "" {
		return nil, errors.New("project file must set `entry`")
	}
	if filepath.Ext(tp.Entry) != common.SrcFileExtension {
		return nil, fmt.Errorf("entry file must have a %s extension", common.SrcFileExtension)
	}
	switch tp.LogLevel {
	case "", "silent", "error", "warning", "verbose":
	default:
		return nil, fmt.Errorf("unknown log level `%s`", tp.LogLevel)
	}

	entryPath := filepath.Join(dir, tp.Entry)
	if _, err := os.Stat(entryPath); err != nil {
		return nil, fmt.Errorf("entry file not found: %w", err)
	}

	outputPath := tp.OutputPath
	if outputPath == "" {
		base := filepath.Base(tp.Entry)
		outputPath = base[:len(base)-len(common.SrcFileExtension)] + ".asm"
	}

	return &Config{
		Name:       tp.Name,
		Root:       dir,
		EntryPath:  entryPath,
		OutputPath: filepath.Join(dir, outputPath),
		LogLevel:   tp.LogLevel,
	}, nil
}
