// Package kisslint checks KISS Linux package recipes against the community
// style guide.
//
// A recipe is a directory holding a version file, a POSIX shell build
// script, and optionally sources and depends lists. kisslint runs the
// package manager's own check and shellcheck, then reports every style
// violation with the file, line and rule code.
//
// # Linting
//
//	result, err := kisslint.Lint(ctx, kisslint.LintConfig{
//		Recipes: []string{"repo/extra/*"},
//	})
//	if err != nil {
//		// a precheck failed or a required file is missing
//	}
//	fmt.Println(result.Passed)
//
// Diagnostics are collected in the result and, when LintConfig.Sink is
// set, streamed as they are found.
//
// # CLI Tool
//
//	go install github.com/yacobolo/kisslint/cmd/kisslint@latest
package kisslint

// Public API is exported via linter.go:
// - Lint(ctx, config LintConfig) (*LintResult, error)
// - LintDirs(ctx, config LintConfig, dirs []*recipe.Dir) (*LintResult, error)
// - ExpandRecipes(args []string) ([]string, error)
// - DetermineOutputFormat(formatFlag string, quiet bool) (OutputFormat, error)
// - WriteOutput(w io.Writer, result *LintResult, format OutputFormat, useColors bool) error
