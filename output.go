package kisslint

import (
	"fmt"
	"io"

	"github.com/yacobolo/kisslint/internal/report"
)

// OutputFormat selects how results are written
type OutputFormat string

const (
	// OutputText streams diagnostics to stderr and prints the summary line
	OutputText OutputFormat = "text"
	// OutputJSON writes a single JSON document after the run
	OutputJSON OutputFormat = "json"
	// OutputQuiet prints nothing; the exit code carries the result
	OutputQuiet OutputFormat = "quiet"
)

// DetermineOutputFormat selects the output format from flags.
func DetermineOutputFormat(formatFlag string, quiet bool) (OutputFormat, error) {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputQuiet, nil
	}

	switch formatFlag {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", formatFlag)
	}
}

// Streams reports whether diagnostics are written while linting runs.
func (f OutputFormat) Streams() bool {
	return f == OutputText
}

// WriteOutput writes what remains of a result once the run finished: the
// summary line for text, the whole document for JSON.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, useColors bool) error {
	switch format {
	case OutputText:
		report.PrintSummary(w, result.Passed, useColors)
	case OutputJSON:
		return WriteJSON(w, result)
	}
	return nil
}
