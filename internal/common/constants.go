// Package common holds constants shared across the compiler's packages.
package common

const (
	// SrcFileExtension is the extension expected of ASL source files.
	SrcFileExtension = ".asl"

	// ProjectFileName is the name of a project's TOML configuration file.
	ProjectFileName = "aslmod.toml"

	// CompilerVersion is the version of this compiler.
	CompilerVersion = "0.1.0"

	// ResultAddress is the name of the implicit out-parameter added to
	// non-void subroutines; a function's return value is stored here rather
	// than returned on a value stack.
	ResultAddress = "_result"
)
