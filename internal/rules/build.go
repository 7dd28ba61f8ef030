package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BuildFile is the name of the build script in a recipe directory.
const BuildFile = "build"

const (
	// Shebang is the required first line prefix of a build script.
	Shebang = "#!/bin/sh -e"
	// MaxLineLength is the longest allowed build script line, in characters.
	MaxLineLength = 80
)

// BuildRules checks a POSIX shell build script.
type BuildRules struct {
	Tables Tables
}

// File implements FileRules.
func (BuildRules) File() string { return BuildFile }

// Check implements FileRules. Indentation state is created per call.
func (b BuildRules) Check(text string, rep *Reporter) {
	scan(text, rep,
		IndentCheck(),
		checkLineLength,
		checkShebang,
		checkShebangBlank,
		checkQuoting,
		b.checkCommands,
	)
}

func checkLineLength(l Line, rep *Reporter) {
	if utf8.RuneCountInString(l.Text) > MaxLineLength {
		rep.Violation(CodeLineLength, fmt.Sprintf("line exceeds %d chars", MaxLineLength))
	}
}

func checkShebang(l Line, rep *Reporter) {
	if l.Index == 0 && !strings.HasPrefix(l.Text, Shebang) {
		rep.Violation(CodeShebang, "missing or incorrect POSIX shebang")
	}
}

func checkShebangBlank(l Line, rep *Reporter) {
	if l.Index == 1 && l.Text != "" {
		rep.Violation(CodeShebang, "missing newline after shebang")
	}
}

// checkQuoting flags words that quote a variable expansion without quoting
// the whole word, e.g. "$x"/bin.
func checkQuoting(l Line, rep *Reporter) {
	for _, tok := range strings.Fields(l.Text) {
		if !strings.Contains(tok, `"$`) {
			continue
		}
		if !(strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`)) {
			rep.Violation(CodeQuoting, "quote entire string instead of variable")
		}
	}
}

func (b BuildRules) checkCommands(l Line, rep *Reporter) {
	for _, cmd := range strings.FieldsFunc(l.Text, b.Tables.isSeparator) {
		cmd = strings.TrimSpace(cmd)

		for _, cc := range b.Tables.CCompilers {
			if strings.HasPrefix(cmd, cc) {
				rep.Violation(CodeCompiler, fmt.Sprintf("use $CC instead of %s", cc))
			}
		}

		if strings.HasPrefix(cmd, "mkdir") && !hasParentsFlag(cmd) {
			rep.Violation(CodeMkdir, "use mkdir with -p flag")
		}

		if strings.HasPrefix(cmd, "echo") {
			rep.Violation(CodeEcho, "use printf instead of echo")
		}
	}
}

// hasParentsFlag reports whether the first argument of a mkdir command is an
// option cluster containing p.
func hasParentsFlag(cmd string) bool {
	parts := strings.Fields(cmd)
	if len(parts) < 2 {
		return false
	}
	return strings.HasPrefix(parts[1], "-") && strings.Contains(parts[1], "p")
}
