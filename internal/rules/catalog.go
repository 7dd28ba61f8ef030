package rules

import (
	"slices"
	"strings"
)

// StyleGuideURL documents every rule code.
const StyleGuideURL = "https://kisscommunity.bvnf.space/kiss/style-guide"

// RuleInfo describes one rule of the rulebook.
type RuleInfo struct {
	Code     Code
	File     string
	Summary  string
	Advisory bool
}

var catalog = []RuleInfo{
	{CodeIndent, BuildFile, "indent with multiples of four spaces, one level at a time", false},
	{CodeLineLength, BuildFile, "keep lines within 80 characters", false},
	{CodeShebang, BuildFile, "start with #!/bin/sh -e followed by an empty line", false},
	{CodeQuoting, BuildFile, "quote whole words, not just the variable", false},
	{CodeCompiler, BuildFile, "call the compiler through $CC", false},
	{CodeMkdir, BuildFile, "always pass -p to mkdir", false},
	{CodeEcho, BuildFile, "use printf instead of echo", false},
	{CodeDependsAlwaysAvailable, DependsFile, "do not list packages that are always available", false},
	{CodeDependsMakeAsRuntime, DependsFile, "mark build tooling with \"make\"", false},
	{CodeDependsUnsorted, DependsFile, "sort dependencies case-insensitively", false},
	{CodeDependsEmpty, DependsFile, "remove empty depends files", false},
	{CodeSourcesInsecure, SourcesFile, "fetch sources over https", false},
	{CodeSourcesRemotePatch, SourcesFile, "ship patches with the recipe", false},
	{CodeSourcesGit, SourcesFile, "prefer release tarballs over git checkouts", false},
	{CodeSourcesCanonical, SourcesFile, "use canonical URLs without www. or .git", false},
	{CodeVersion9999, VersionFile, "use git instead of 9999 as the upstream version", true},
	{CodeVersionFields, VersionFile, "give exactly an upstream and a relative version", true},
}

// Catalog returns every rule, ordered by code.
func Catalog() []RuleInfo {
	out := slices.Clone(catalog)
	slices.SortStableFunc(out, func(a, b RuleInfo) int {
		return strings.Compare(string(a.Code), string(b.Code))
	})
	return out
}

// Lookup returns the rules registered under code.
func Lookup(code Code) []RuleInfo {
	var out []RuleInfo
	for _, r := range catalog {
		if r.Code == code {
			out = append(out, r)
		}
	}
	return out
}
