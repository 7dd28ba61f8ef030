package rules

import "slices"

// Tables is the reference data the rule sets consult. Values are built once
// at start-up and treated as read-only afterwards.
type Tables struct {
	// AlwaysAvailable lists packages every KISS system already has.
	AlwaysAvailable []string
	// MakeOnly lists tooling that is only needed while building.
	MakeOnly []string
	// CommandSeparators split a build line into commands.
	CommandSeparators []rune
	// CCompilers are compiler names that should be invoked through $CC.
	CCompilers []string
}

var (
	defaultAlwaysAvailable = []string{
		"b3sum",
		"baselayout",
		"binutils",
		"bison",
		"busybox",
		"bzip2",
		"certs",
		"curl",
		"flex",
		"gcc",
		"git",
		"gmp",
		"kiss",
		"libmpc",
		"linux-headers",
		"m4",
		"make",
		"mpfr",
		"musl",
		"openssl",
		"pigz",
		"xz",
		"zlib",
	}

	defaultMakeOnly = []string{
		"autoconf",
		"automake",
		"cmake",
		"meson",
		"nasm",
		"rust",
		"samurai",
	}

	defaultCommandSeparators = []rune{';', '&'}

	defaultCCompilers = []string{"gcc", "g++"}
)

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		AlwaysAvailable:   slices.Clone(defaultAlwaysAvailable),
		MakeOnly:          slices.Clone(defaultMakeOnly),
		CommandSeparators: slices.Clone(defaultCommandSeparators),
		CCompilers:        slices.Clone(defaultCCompilers),
	}
}

func (t Tables) isSeparator(r rune) bool {
	return slices.Contains(t.CommandSeparators, r)
}
