// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

// Well-known macro names that affect substitution priority.
const (
	// UserHomeMacro names the user home directory macro.
	UserHomeMacro = "USER_HOME"
	// ApplicationHomeMacro names the application installation directory macro.
	ApplicationHomeMacro = "APPLICATION_HOME_DIR"
	// ProjectDirMacro names the project directory macro.
	ProjectDirMacro = "PROJECT_DIR"
	// MavenRepositoryMacro names the local repository location macro.
	MavenRepositoryMacro = "MAVEN_REPOSITORY"
	// DeprecatedModuleDir is the legacy module directory reference.
	DeprecatedModuleDir = "$MODULE_DIR$"
)

// Priority categories of a macro reference.
const (
	// categoryFallback is used for home-like and relative ("..") references.
	categoryFallback = 1
	// categoryDefault is used for every other reference.
	categoryDefault = 2
	// categoryProject is used for project, module and repository references.
	categoryProject = 3

	// categoryStride separates categories so path depth never outweighs category.
	categoryStride = 512
)

// Entry is one registered path-to-macro mapping.
type Entry struct {
	// Path is a path prefix, optionally protocol-qualified, without trailing separator.
	Path string `json:"path" yaml:"path"`
	// Macro is the reference substituted verbatim in place of Path.
	Macro string `json:"macro" yaml:"macro"`
}

// MacroRef returns the macro reference form of a macro name, e.g. "$PROJECT_DIR$".
func MacroRef(name string) string {
	return "$" + name + "$"
}
