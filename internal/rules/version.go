package rules

import "strings"

// VersionFile is the name of the version file in a recipe directory.
const VersionFile = "version"

// VersionRules checks the version file. Its findings are advisories and
// never fail a run.
type VersionRules struct{}

// File implements FileRules.
func (VersionRules) File() string { return VersionFile }

// Check implements FileRules.
func (VersionRules) Check(text string, rep *Reporter) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		rep.Advise(VersionFile, CodeVersionFields,
			"too many fields; expected upstream and relative version number")
		return
	}
	if fields[0] == "9999" {
		rep.Advise(VersionFile, CodeVersion9999, "use git instead of 9999")
	}
}
