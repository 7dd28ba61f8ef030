package kisslint

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/kisslint/internal/rules"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
		wantErr    bool
	}{
		{name: "default is text", expected: OutputText},
		{name: "explicit text", formatFlag: "text", expected: OutputText},
		{name: "explicit json", formatFlag: "json", expected: OutputJSON},
		{name: "quiet", quiet: true, expected: OutputQuiet},
		{name: "quiet overrides format flag", formatFlag: "json", quiet: true, expected: OutputQuiet},
		{name: "unknown format", formatFlag: "markdown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetermineOutputFormat(tt.formatFlag, tt.quiet)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOutputFormat_Streams(t *testing.T) {
	assert.True(t, OutputText.Streams())
	assert.False(t, OutputJSON.Streams())
	assert.False(t, OutputQuiet.Streams())
}

func sampleResult() *LintResult {
	return &LintResult{
		Passed:  false,
		Recipes: []string{"extra/curl"},
		Diagnostics: []rules.Diagnostic{
			{Recipe: "extra/curl", File: "build", Line: 3, Code: rules.CodeEcho, Message: "use printf instead of echo", Severity: rules.SeverityError},
			{Recipe: "extra/curl", Message: "no sources file found.", Severity: rules.SeverityWarning},
		},
		Violations: 1,
		Advisories: 1,
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.False(t, out.Summary.Passed)
	assert.Equal(t, 1, out.Summary.Violations)
	assert.Equal(t, 1, out.Summary.Advisories)
	assert.Equal(t, 1, out.Summary.Recipes)
	assert.Equal(t, rules.StyleGuideURL, out.StyleGuide)

	require.Len(t, out.Diagnostics, 2)
	assert.Equal(t, JSONDiagnostic{
		Recipe:   "extra/curl",
		File:     "build",
		Line:     3,
		Code:     "0214",
		Severity: "error",
		Message:  "use printf instead of echo",
	}, out.Diagnostics[0])

	// Empty location fields are omitted
	assert.Contains(t, buf.String(), `"severity": "warning"`)
	assert.NotContains(t, buf.String(), `"line": 0`)
}

func TestWriteJSON_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &LintResult{Passed: true}))
	assert.Contains(t, buf.String(), `"recipes": []`)
	assert.Contains(t, buf.String(), `"diagnostics": []`)
}

func TestWriteOutput(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		contains string
		empty    bool
	}{
		{name: "text prints summary", format: OutputText, contains: "Some issues found."},
		{name: "json prints document", format: OutputJSON, contains: `"violations": 1`},
		{name: "quiet prints nothing", format: OutputQuiet, empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, sampleResult(), tt.format, false))
			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}
