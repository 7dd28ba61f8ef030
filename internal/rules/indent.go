package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndentUnit is the column width of one nesting level in a build script.
const IndentUnit = 4

const (
	msgIndentUnaligned = "incorrect indentation; use four spaces"
	msgIndentStep      = "incorrect indentation: use four spaces"
)

// Indentation records the column at which each successive indented line
// started. It belongs to a single build file scan.
//
// When a line steps by something other than zero or one unit, the recorded
// offset is pulled back by the step so that only the offending line is
// reported, not every line after it.
type Indentation struct {
	offsets []int
}

// Offsets returns the recorded offsets, oldest first.
func (in *Indentation) Offsets() []int {
	return in.offsets
}

// Observe feeds one line to the tracker and reports indentation violations.
// Lines made only of spaces are ignored.
func (in *Indentation) Observe(line string, rep *Reporter) {
	j := strings.IndexFunc(line, func(r rune) bool { return r != ' ' })
	if j < 0 {
		return
	}

	if j%IndentUnit != 0 {
		rep.Violation(CodeIndent, msgIndentUnaligned)
		in.offsets = append(in.offsets, 0)
		return
	}

	// A tab (or other whitespace) after aligned spaces is flagged but not
	// recorded as a level.
	if c, _ := utf8.DecodeRuneInString(line[j:]); unicode.IsSpace(c) {
		rep.Violation(CodeIndent, msgIndentUnaligned)
	} else {
		in.offsets = append(in.offsets, j)
	}

	n := len(in.offsets)
	if n < 2 || j == 0 {
		return
	}
	step := in.offsets[n-1] - in.offsets[n-2]
	if step < 0 {
		step = -step
	}
	if step != 0 && step != IndentUnit {
		rep.Violation(CodeIndent, msgIndentStep)
		in.offsets[n-1] = j - step
	}
}

// IndentCheck returns a line check backed by a fresh Indentation.
func IndentCheck() LineCheck {
	in := &Indentation{}
	return func(l Line, rep *Reporter) {
		in.Observe(l.Text, rep)
	}
}
