package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/yacobolo/kisslint"
	"github.com/yacobolo/kisslint/internal/precheck"
	"github.com/yacobolo/kisslint/internal/report"
)

// errViolations makes main exit 1 in strict mode. The diagnostics were
// already printed, so main prints nothing more.
var errViolations = errors.New("style violations found")

// addLintFlags registers the flags of the default lint command.
func addLintFlags(f *pflag.FlagSet) {
	f.Bool("strict", false, "Exit 1 when any violation is found (CI mode)")
	f.String("output-format", "", "Output format: text|json (default: text)")
	f.Bool("skip-prechecks", false, "Do not run kiss c and shellcheck before linting")
	f.String("kiss", "kiss", "Package manager used for the kiss c precheck")
	f.String("shellcheck", "shellcheck", "shellcheck binary used for the build precheck")
}

// runLint lints the recipes named by args. Text diagnostics and the summary
// go to stderr; a JSON document goes to stdout.
func runLint(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	format, err := kisslint.DetermineOutputFormat(
		getStringWithFallback("output-format", "lint.output-format", ""), quiet)
	if err != nil {
		return err
	}

	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false), asFile(stderr))
	color.NoColor = !useColors

	config := buildLintConfig(args)
	config.Logger = newLogger(stderr, getBoolWithFallback("verbose", "verbose", false))

	// Precheck output must never end up in the JSON document
	switch format {
	case kisslint.OutputText:
		config.Sink = report.NewTextSink(stderr, useColors)
		config.Runner = precheck.ExecRunner{Stdout: stdout, Stderr: stderr}
	case kisslint.OutputJSON:
		config.Runner = precheck.ExecRunner{Stdout: stderr, Stderr: stderr}
	case kisslint.OutputQuiet:
		config.Runner = precheck.ExecRunner{Stdout: io.Discard, Stderr: io.Discard}
	}

	result, err := kisslint.Lint(ctx, config)
	if err != nil {
		return err
	}

	out := stderr
	if format == kisslint.OutputJSON {
		out = stdout
	}
	if err := kisslint.WriteOutput(out, result, format, useColors); err != nil {
		return err
	}

	// Exit code logic - "Soft Gate" approach: violations only fail in strict mode
	if getBoolWithFallback("strict", "lint.strict", false) && !result.Passed {
		return errViolations
	}
	return nil
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
