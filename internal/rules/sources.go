package rules

import "strings"

// SourcesFile is the name of the source list in a recipe directory.
const SourcesFile = "sources"

// SourcesRules checks one source URI per line.
type SourcesRules struct{}

// File implements FileRules.
func (SourcesRules) File() string { return SourcesFile }

// Check implements FileRules.
func (SourcesRules) Check(text string, rep *Reporter) {
	scan(text, rep,
		checkSourceTransport,
		checkSourceRemotePatch,
		checkSourceGit,
		checkSourceWWW,
		checkSourceGitSuffix,
	)
}

func checkSourceTransport(l Line, rep *Reporter) {
	if !strings.HasPrefix(l.Text, "https") && !strings.HasPrefix(l.Text, "git+https") {
		rep.Violation(CodeSourcesInsecure, "found non-https source")
	}
}

func checkSourceRemotePatch(l Line, rep *Reporter) {
	remote := strings.HasPrefix(l.Text, "https") || strings.HasPrefix(l.Text, "http")
	if remote && strings.HasSuffix(l.Text, ".patch") {
		rep.Violation(CodeSourcesRemotePatch, "patches should not be remote")
	}
}

func checkSourceGit(l Line, rep *Reporter) {
	if strings.HasPrefix(l.Text, "git+") {
		rep.Violation(CodeSourcesGit, "found git source; prefer release tarball if available")
	}
}

func checkSourceWWW(l Line, rep *Reporter) {
	if strings.Contains(l.Text, "://www.") {
		rep.Violation(CodeSourcesCanonical, "found www.")
	}
}

func checkSourceGitSuffix(l Line, rep *Reporter) {
	if strings.HasSuffix(l.Text, ".git") {
		rep.Violation(CodeSourcesCanonical, "found .git")
	}
}
