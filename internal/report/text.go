// Package report renders diagnostics for terminals.
package report

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/yacobolo/kisslint/internal/rules"
)

// TextSink writes diagnostics as lines of text, the format users and
// editors expect:
//
//	build @ line 3: use printf instead of echo (#0214)
type TextSink struct {
	w         io.Writer
	useColors bool
}

// NewTextSink creates a TextSink writing to w.
func NewTextSink(w io.Writer, useColors bool) *TextSink {
	return &TextSink{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled for f.
func ShouldUseColors(force bool, f *os.File) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Auto-detect TTY
	if f == nil {
		return false
	}
	if fileInfo, err := f.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Report implements rules.Sink.
func (s *TextSink) Report(d rules.Diagnostic) {
	fmt.Fprintln(s.w, s.format(d))
}

// Separate implements rules.Sink.
func (s *TextSink) Separate() {
	fmt.Fprintln(s.w)
}

func (s *TextSink) format(d rules.Diagnostic) string {
	code := ""
	if d.Code != "" {
		code = RenderStyle(StyleGray, fmt.Sprintf(" (#%s)", d.Code), s.useColors)
	}

	if d.File == "" {
		msg := d.Message
		if p := recipePrefix(d.Recipe); p != "" {
			msg = p + ": " + msg
		}
		return RenderStyle(StyleYellow, "WARNING", s.useColors) + " " + msg + code
	}

	loc := d.File
	if p := recipePrefix(d.Recipe); p != "" {
		loc = path.Join(p, d.File)
	}
	if d.Line > 0 {
		loc = fmt.Sprintf("%s @ line %d", loc, d.Line)
	}
	return fmt.Sprintf("%s: %s%s", RenderStyle(StyleCyan, loc, s.useColors), d.Message, code)
}

// recipePrefix returns the directory to show before file names. The
// current directory is left implicit.
func recipePrefix(dir string) string {
	if dir == "" || dir == "." {
		return ""
	}
	return dir
}

// PrintSummary writes the closing pass/fail line.
func PrintSummary(w io.Writer, passed, useColors bool) {
	if passed {
		fmt.Fprintln(w, RenderStyle(StyleGreen, "All checks passed.", useColors))
		return
	}
	fmt.Fprintf(w, "%s See %s for more information.\n",
		RenderStyle(StyleRed, "Some issues found.", useColors), rules.StyleGuideURL)
}

// PrintRules writes the rule catalog as an aligned table.
func PrintRules(w io.Writer, catalog []rules.RuleInfo, useColors bool) {
	for _, r := range catalog {
		kind := ""
		if r.Advisory {
			kind = " (advisory)"
		}
		fmt.Fprintf(w, "%s  %-8s %s%s\n",
			RenderStyle(StyleCyan, "#"+string(r.Code), useColors), r.File, r.Summary,
			RenderStyle(StyleGray, kind, useColors))
	}
}
