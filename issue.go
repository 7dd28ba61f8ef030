package kisslint

import "github.com/yacobolo/kisslint/internal/rules"

// Diagnostic is a single style finding.
type Diagnostic = rules.Diagnostic

// Code identifies a rule, e.g. "0214".
type Code = rules.Code

// Severity constants
const (
	SeverityError   = rules.SeverityError
	SeverityWarning = rules.SeverityWarning
)

// Sink receives diagnostics as they are reported.
type Sink = rules.Sink

// Tables holds the configurable rule tables.
type Tables = rules.Tables

// DefaultTables returns the built-in rule tables.
func DefaultTables() Tables {
	return rules.DefaultTables()
}
