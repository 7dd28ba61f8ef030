package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lints text with rules and returns the collected diagnostics.
func run(t *testing.T, fr FileRules, text string) (*Collector, *Reporter) {
	t.Helper()
	c := &Collector{}
	rep := NewReporter(c)
	rep.SwitchFile(fr.File())
	fr.Check(text, rep)
	return c, rep
}

func codesOf(ds []Diagnostic) []Code {
	out := make([]Code, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}
	return out
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestSourcesRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Code
	}{
		{"https tarball", "https://example.org/foo-1.0.tar.gz", nil},
		{"http tarball", "http://example.org/foo-1.0.tar.gz", []Code{CodeSourcesInsecure}},
		{"ftp", "ftp://example.org/foo.tar.gz", []Code{CodeSourcesInsecure}},
		{"local patch", "patches/fix.patch", []Code{CodeSourcesInsecure}},
		{"remote https patch", "https://example.org/fix.patch", []Code{CodeSourcesRemotePatch}},
		{"remote http patch", "http://example.org/fix.patch", []Code{CodeSourcesInsecure, CodeSourcesRemotePatch}},
		{"git https", "git+https://example.org/foo", []Code{CodeSourcesGit}},
		{"git plain", "git+git://example.org/foo", []Code{CodeSourcesInsecure, CodeSourcesGit}},
		{"www", "https://www.example.org/foo.tar.gz", []Code{CodeSourcesCanonical}},
		{
			"everything at once",
			"git+https://www.example.org/foo.git",
			[]Code{CodeSourcesGit, CodeSourcesCanonical, CodeSourcesCanonical},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rep := run(t, SourcesRules{}, tt.line+"\n")
			if tt.want == nil {
				assert.Empty(t, c.Diagnostics)
				assert.True(t, rep.Passed())
				return
			}
			assert.Equal(t, tt.want, codesOf(c.Diagnostics))
			assert.False(t, rep.Passed())
			for _, d := range c.Diagnostics {
				assert.Equal(t, 1, d.Line)
				assert.Equal(t, SourcesFile, d.File)
			}
		})
	}
}

func TestSourcesRules_RemotePatchAlwaysFlagged(t *testing.T) {
	lines := []string{
		"https://example.org/a.patch",
		"http://example.org/b.patch",
		"https://www.example.org/c.patch",
		"http://www.example.org/d.git/e.patch",
	}
	for _, line := range lines {
		c, _ := run(t, SourcesRules{}, line)
		assert.Contains(t, codesOf(c.Diagnostics), CodeSourcesRemotePatch, line)
	}
}

func TestSourcesRules_LineNumbers(t *testing.T) {
	text := "https://example.org/a.tar.gz\nhttp://example.org/b.tar.gz\nhttps://example.org/c.tar.gz\nfiles/d\n"

	c, _ := run(t, SourcesRules{}, text)
	require.Len(t, c.Diagnostics, 2)
	assert.Equal(t, 2, c.Diagnostics[0].Line)
	assert.Equal(t, 4, c.Diagnostics[1].Line)
	assert.Equal(t, "sources @ line 2: found non-https source (#1401)", c.Diagnostics[0].String())
}

func TestDependsRules(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name string
		text string
		want []Diagnostic
	}{
		{
			name: "clean sorted list",
			text: "expat\nlibffi\npython\n",
		},
		{
			name: "empty file",
			text: "  \n\n",
			want: []Diagnostic{{Line: 1, Code: CodeDependsEmpty, Message: "empty depends file"}},
		},
		{
			name: "always available",
			text: "expat\nzlib\n",
			want: []Diagnostic{{Line: 2, Code: CodeDependsAlwaysAvailable, Message: "dependency zlib is always available"}},
		},
		{
			name: "build tool marked make",
			text: "cmake make\nexpat\n",
		},
		{
			name: "build tool as runtime",
			text: "expat\nmeson\n",
			want: []Diagnostic{{Line: 2, Code: CodeDependsMakeAsRuntime, Message: "build dependency meson is listed as runtime"}},
		},
		{
			name: "prefix match",
			text: "rustup\n",
			want: []Diagnostic{{Line: 1, Code: CodeDependsMakeAsRuntime, Message: "build dependency rust is listed as runtime"}},
		},
		{
			name: "unsorted",
			text: "python\nexpat\n",
			want: []Diagnostic{{Line: 1, Code: CodeDependsUnsorted, Message: "depends file not sorted"}},
		},
		{
			name: "case-insensitive order",
			text: "expat\nLibffi\npython\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := run(t, DependsRules{Tables: tables}, tt.text)
			require.Len(t, c.Diagnostics, len(tt.want))
			for i, want := range tt.want {
				got := c.Diagnostics[i]
				assert.Equal(t, want.Line, got.Line)
				assert.Equal(t, want.Code, got.Code)
				assert.Equal(t, want.Message, got.Message)
				assert.Equal(t, SeverityError, got.Severity)
			}
		})
	}
}

func TestDependsRules_AlwaysAvailableMatchesTable(t *testing.T) {
	tables := DefaultTables()
	lines := []string{"zlib", "python", "musl", "expat", "xz", "libffi"}
	var text string
	for _, l := range lines {
		text += l + "\n"
	}

	c, _ := run(t, DependsRules{Tables: tables}, text)

	var flagged []int
	for _, d := range c.Diagnostics {
		if d.Code == CodeDependsAlwaysAvailable {
			flagged = append(flagged, d.Line)
		}
	}
	assert.Equal(t, []int{1, 3, 5}, flagged)
}

func TestDependsRules_SortingFiresOnce(t *testing.T) {
	tables := DefaultTables()

	sorted := "alsa-lib\nexpat\nlibffi\nncurses\npython\n"
	c, _ := run(t, DependsRules{Tables: tables}, sorted)
	assert.Empty(t, c.Diagnostics)

	swapped := "alsa-lib\nlibffi\nexpat\nncurses\npython\n"
	c, _ = run(t, DependsRules{Tables: tables}, swapped)
	assert.Equal(t, []Code{CodeDependsUnsorted}, codesOf(c.Diagnostics))
}

func TestVersionRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Code
	}{
		{"release", "1.2.3 1\n", nil},
		{"git placeholder", "9999 1\n", []Code{CodeVersion9999}},
		{"missing revision", "1.2.3\n", []Code{CodeVersionFields}},
		{"too many fields", "1.2.3 1 extra\n", []Code{CodeVersionFields}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rep := run(t, VersionRules{}, tt.text)
			if tt.want == nil {
				assert.Empty(t, c.Diagnostics)
			} else {
				assert.Equal(t, tt.want, codesOf(c.Diagnostics))
				assert.Equal(t, SeverityWarning, c.Diagnostics[0].Severity)
			}
			assert.True(t, rep.Passed(), "version findings are advisory")
		})
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.NotEmpty(t, cat)
	for i := 1; i < len(cat); i++ {
		assert.LessOrEqual(t, string(cat[i-1].Code), string(cat[i].Code))
	}

	assert.Len(t, Lookup(CodeSourcesCanonical), 1)
	assert.Len(t, Lookup(CodeShebang), 1)
	assert.Empty(t, Lookup("9999"))
}
