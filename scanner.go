package kisslint

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/kisslint/internal/rules"
)

// ScanStats tracks recipe discovery statistics
type ScanStats struct {
	Matched int // Paths matched by glob patterns
	Recipes int // Recipe directories selected
	Skipped int // Matches dropped by .gitignore or because they are not recipes
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isPattern reports whether arg contains glob syntax.
func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// ExpandRecipes turns command line arguments into recipe directories.
// Plain arguments are taken as directories unchanged. Patterns are
// expanded with doublestar; a match is kept when it is a directory holding
// a build file, and a matched build file selects its parent. Relative
// matches ignored by ./.gitignore are skipped. No arguments means ".".
func ExpandRecipes(args []string) ([]string, error) {
	dirs, _, err := expandRecipes(args, loadGitIgnore())
	return dirs, err
}

// ExpandRecipesWithStats is ExpandRecipes that also reports statistics.
func ExpandRecipesWithStats(args []string) ([]string, ScanStats, error) {
	return expandRecipes(args, loadGitIgnore())
}

func expandRecipes(args []string, gi *ignore.GitIgnore) ([]string, ScanStats, error) {
	stats := ScanStats{}
	if len(args) == 0 {
		args = []string{"."}
	}

	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
		stats.Recipes++
	}

	for _, arg := range args {
		if !isPattern(arg) {
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			stats.Matched++
			dir, ok := recipeFor(match)
			if !ok || shouldSkip(gi, dir) {
				stats.Skipped++
				continue
			}
			add(dir)
		}
	}

	return dirs, stats, nil
}

// recipeFor maps a glob match to the recipe directory it designates.
func recipeFor(match string) (string, bool) {
	info, err := os.Stat(match)
	if err != nil {
		return "", false
	}
	if !info.IsDir() {
		if filepath.Base(match) == rules.BuildFile {
			return filepath.Dir(match), true
		}
		return "", false
	}
	if _, err := os.Stat(filepath.Join(match, rules.BuildFile)); err != nil {
		return "", false
	}
	return match, true
}

// shouldSkip applies .gitignore to relative paths only. Absolute paths
// (like /tmp/...) are outside the project.
func shouldSkip(gi *ignore.GitIgnore, path string) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(path)
}
