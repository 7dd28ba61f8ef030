// Package rules implements the KISS recipe rulebook: the rule tables, the
// diagnostic reporter and the per-file rule sets for sources, depends, build
// and version files.
package rules

import "fmt"

// Code is the stable identifier of a style rule, as used in the style guide
// (e.g. "0202").
type Code string

// Build file rules.
const (
	CodeIndent     Code = "0202"
	CodeLineLength Code = "0203"
	CodeShebang    Code = "0204"
	CodeQuoting    Code = "0209"
	CodeCompiler   Code = "0212"
	CodeMkdir      Code = "0213"
	CodeEcho       Code = "0214"
)

// Depends file rules.
const (
	CodeDependsAlwaysAvailable Code = "1202"
	CodeDependsMakeAsRuntime   Code = "1203"
	CodeDependsUnsorted        Code = "1205"
	CodeDependsEmpty           Code = "1206"
)

// Sources file rules.
const (
	CodeSourcesInsecure    Code = "1401"
	CodeSourcesRemotePatch Code = "1402"
	CodeSourcesGit         Code = "1403"
	CodeSourcesCanonical   Code = "1404"
)

// Version file rules.
const (
	CodeVersion9999   Code = "1602"
	CodeVersionFields Code = "1603"
)

// Severity separates failing violations from advisories.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single finding. Line is 1-based; it is 0 for advisories
// that are not tied to a line.
type Diagnostic struct {
	Recipe   string   `json:"recipe,omitempty"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Code     Code     `json:"code,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// String formats the diagnostic the way the text output prints it, without
// colour or recipe prefix.
func (d Diagnostic) String() string {
	var s string
	switch {
	case d.File != "" && d.Line > 0:
		s = fmt.Sprintf("%s @ line %d: %s", d.File, d.Line, d.Message)
	case d.File != "":
		s = fmt.Sprintf("%s: %s", d.File, d.Message)
	default:
		s = d.Message
	}
	if d.Code != "" {
		s += fmt.Sprintf(" (#%s)", d.Code)
	}
	return s
}
