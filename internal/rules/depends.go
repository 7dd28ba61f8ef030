package rules

import (
	"fmt"
	"slices"
	"strings"
)

// DependsFile is the name of the dependency list in a recipe directory.
const DependsFile = "depends"

// makeMarker marks a dependency as needed at build time only.
const makeMarker = " make"

// DependsRules checks one dependency per line.
type DependsRules struct {
	Tables Tables
}

// File implements FileRules.
func (DependsRules) File() string { return DependsFile }

// Check implements FileRules.
func (d DependsRules) Check(text string, rep *Reporter) {
	rep.SetLine(0)
	if strings.TrimSpace(text) == "" {
		rep.Violation(CodeDependsEmpty, "empty depends file")
		return
	}

	scan(text, rep, d.checkAlwaysAvailable, d.checkMakeOnly)

	lines := SplitLines(text)
	if !isSortedFold(lines) {
		rep.SetLine(0)
		rep.Violation(CodeDependsUnsorted, "depends file not sorted")
	}
}

func (d DependsRules) checkAlwaysAvailable(l Line, rep *Reporter) {
	for _, dep := range d.Tables.AlwaysAvailable {
		if strings.HasPrefix(l.Text, dep) {
			rep.Violation(CodeDependsAlwaysAvailable,
				fmt.Sprintf("dependency %s is always available", dep))
		}
	}
}

func (d DependsRules) checkMakeOnly(l Line, rep *Reporter) {
	for _, dep := range d.Tables.MakeOnly {
		if strings.HasPrefix(l.Text, dep) && !strings.HasSuffix(l.Text, makeMarker) {
			rep.Violation(CodeDependsMakeAsRuntime,
				fmt.Sprintf("build dependency %s is listed as runtime", dep))
		}
	}
}

// isSortedFold reports whether lines equal their stable, lower-cased sort.
func isSortedFold(lines []string) bool {
	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return slices.Equal(sorted, lines)
}
