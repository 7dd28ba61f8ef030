package kisslint

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yacobolo/kisslint/internal/precheck"
	"github.com/yacobolo/kisslint/internal/recipe"
	"github.com/yacobolo/kisslint/internal/rules"
)

// LintConfig holds linting configuration
type LintConfig struct {
	Recipes []string     // Recipe directories or doublestar patterns (default ".")
	Tables  rules.Tables // Rule tables; zero value means rules.DefaultTables()

	SkipPrechecks bool             // Do not run kiss c / shellcheck
	Prechecks     []precheck.Check // nil means precheck.Defaults("", "")
	Runner        precheck.Runner  // nil means precheck.ExecRunner{}

	Sink   rules.Sink   // Streams diagnostics as they are found (optional)
	Logger *slog.Logger // Debug logging (optional)
}

// LintResult contains the outcome of a run
type LintResult struct {
	Passed      bool
	Recipes     []string           // Recipe directories that were linted
	Diagnostics []rules.Diagnostic // Violations and advisories, in report order
	Violations  int                // Number of failing diagnostics
	Advisories  int                // Number of advisories
}

// Lint discovers the configured recipes and lints each of them.
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	config = withDefaults(config)

	paths, stats, err := ExpandRecipesWithStats(config.Recipes)
	if err != nil {
		return nil, fmt.Errorf("failed to expand recipes: %w", err)
	}
	config.Logger.Debug("discovered recipes",
		"recipes", stats.Recipes, "matched", stats.Matched, "skipped", stats.Skipped)

	dirs := make([]*recipe.Dir, 0, len(paths))
	for _, p := range paths {
		d, err := recipe.Open(p)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}

	return LintDirs(ctx, config, dirs)
}

// LintDirs lints already opened recipe directories in order. The first
// fatal error stops the run; diagnostics already streamed to config.Sink
// stay emitted.
func LintDirs(ctx context.Context, config LintConfig, dirs []*recipe.Dir) (*LintResult, error) {
	config = withDefaults(config)

	collector := &rules.Collector{}
	sink := rules.Sink(collector)
	if config.Sink != nil {
		sink = rules.Tee{collector, config.Sink}
	}
	rep := rules.NewReporter(sink)

	result := &LintResult{}
	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := lintRecipe(ctx, config, rep, d); err != nil {
			return nil, wrapRecipe(d.Path, err)
		}
		result.Recipes = append(result.Recipes, d.Path)
	}

	result.Passed = rep.Passed()
	result.Diagnostics = collector.Diagnostics
	result.Violations = len(collector.Violations())
	result.Advisories = len(collector.Diagnostics) - result.Violations
	return result, nil
}

// lintRecipe runs the prechecks and every rule set against one directory.
// Files are read in the order they are checked.
func lintRecipe(ctx context.Context, config LintConfig, rep *rules.Reporter, d *recipe.Dir) error {
	log := config.Logger.With("recipe", d.Path)
	rep.SetRecipe(d.Path)

	if config.SkipPrechecks {
		log.Debug("skipping prechecks")
	} else {
		log.Debug("running prechecks", "count", len(config.Prechecks))
		if err := precheck.RunAll(ctx, config.Runner, d.Path, config.Prechecks); err != nil {
			return err
		}
	}

	version, err := d.Read(rules.VersionFile)
	if err != nil {
		return err
	}
	rules.VersionRules{}.Check(version, rep)

	sources, ok, err := d.ReadOptional(rules.SourcesFile)
	if err != nil {
		return err
	}
	if ok {
		check(log, rep, rules.SourcesRules{}, sources)
	} else {
		rep.Advise("", "", "no sources file found.")
	}

	depends, ok, err := d.ReadOptional(rules.DependsFile)
	if err != nil {
		return err
	}
	if ok {
		check(log, rep, rules.DependsRules{Tables: config.Tables}, depends)
	}

	build, err := d.Read(rules.BuildFile)
	if err != nil {
		return err
	}
	check(log, rep, rules.BuildRules{Tables: config.Tables}, build)

	return nil
}

func check(log *slog.Logger, rep *rules.Reporter, fr rules.FileRules, text string) {
	log.Debug("checking file", "file", fr.File())
	rep.SwitchFile(fr.File())
	fr.Check(text, rep)
}

func withDefaults(config LintConfig) LintConfig {
	if config.Tables.AlwaysAvailable == nil && config.Tables.MakeOnly == nil &&
		config.Tables.CommandSeparators == nil && config.Tables.CCompilers == nil {
		config.Tables = rules.DefaultTables()
	}
	if config.Prechecks == nil {
		config.Prechecks = precheck.Defaults("", "")
	}
	if config.Runner == nil {
		config.Runner = precheck.ExecRunner{}
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return config
}

// wrapRecipe names the recipe in fatal errors, leaving the current
// directory implicit.
func wrapRecipe(dir string, err error) error {
	if dir == "" || dir == "." {
		return err
	}
	return fmt.Errorf("%s: %w", dir, err)
}
