package rules

import "strings"

// Line is one line of an input file, handed to every line check.
type Line struct {
	Index int    // 0-based
	Text  string // without the line terminator
}

// LineCheck inspects a single line and reports any violations. Checks must
// not depend on each other; all of them run for every line.
type LineCheck func(l Line, rep *Reporter)

// FileRules is a rule set for one recipe file.
type FileRules interface {
	// File is the recipe file name the rules apply to.
	File() string
	// Check lints the whole text of the file.
	Check(text string, rep *Reporter)
}

// SplitLines splits text on "\n", dropping a trailing "\r" from each line
// and the empty remainder after a final newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// scan runs checks in order against every line of text.
func scan(text string, rep *Reporter, checks ...LineCheck) {
	for i, t := range SplitLines(text) {
		rep.SetLine(i)
		l := Line{Index: i, Text: t}
		for _, check := range checks {
			check(l, rep)
		}
	}
}
