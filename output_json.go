package kisslint

import (
	"encoding/json"
	"io"

	"github.com/yacobolo/kisslint/internal/rules"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string           `json:"version"`
	Summary     JSONSummary      `json:"summary"`
	Recipes     []string         `json:"recipes"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	StyleGuide  string           `json:"style_guide"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Passed     bool `json:"passed"`
	Violations int  `json:"violations"`
	Advisories int  `json:"advisories"`
	Recipes    int  `json:"recipes"`
}

// JSONDiagnostic represents a single finding
type JSONDiagnostic struct {
	Recipe   string `json:"recipe"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Code     string `json:"code,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	diagnostics := make([]JSONDiagnostic, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		diagnostics[i] = JSONDiagnostic{
			Recipe:   d.Recipe,
			File:     d.File,
			Line:     d.Line,
			Code:     string(d.Code),
			Severity: string(d.Severity),
			Message:  d.Message,
		}
	}

	recipes := result.Recipes
	if recipes == nil {
		recipes = []string{}
	}

	return JSONOutput{
		Version: "1.0",
		Summary: JSONSummary{
			Passed:     result.Passed,
			Violations: result.Violations,
			Advisories: result.Advisories,
			Recipes:    len(result.Recipes),
		},
		Recipes:     recipes,
		Diagnostics: diagnostics,
		StyleGuide:  rules.StyleGuideURL,
	}
}
