package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/kisslint"
	"github.com/yacobolo/kisslint/internal/precheck"
)

const defaultConfigPath = ".kisslint.yaml"

var k = koanf.New(".")

// configSections are the nested blocks of the config file. The first
// underscore of an env var after one of these becomes the key separator.
var configSections = []string{"lint", "precheck", "rules"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence; only flags that were explicitly set,
	// so flag defaults never shadow the file or env)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (KISSLINT_* prefix)
	if err := k.Load(env.ProviderWithValue("KISSLINT_", ".", func(key, value string) (string, interface{}) {
		key = envKey(key)
		// Rule tables are space separated lists
		if strings.HasPrefix(key, "rules.") {
			return key, strings.Fields(value)
		}
		return key, value
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable name to a config key:
//
//	KISSLINT_LINT_OUTPUT_FORMAT -> lint.output-format
//	KISSLINT_PRECHECK_SKIP      -> precheck.skip
//	KISSLINT_VERBOSE            -> verbose
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, "KISSLINT_"))
	section, rest, ok := strings.Cut(key, "_")
	if ok && slices.Contains(configSections, section) {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig(recipes []string) kisslint.LintConfig {
	tables := kisslint.DefaultTables()
	if v := k.Strings("rules.always-available"); len(v) > 0 {
		tables.AlwaysAvailable = v
	}
	if v := k.Strings("rules.make-only"); len(v) > 0 {
		tables.MakeOnly = v
	}
	if v := k.Strings("rules.compilers"); len(v) > 0 {
		tables.CCompilers = v
	}

	return kisslint.LintConfig{
		Recipes:       recipes,
		Tables:        tables,
		SkipPrechecks: getBoolWithFallback("skip-prechecks", "precheck.skip", false),
		Prechecks: precheck.Defaults(
			getStringWithFallback("kiss", "precheck.kiss", "kiss"),
			getStringWithFallback("shellcheck", "precheck.shellcheck", "shellcheck"),
		),
	}
}

// newLogger returns the CLI logger: debug events with --verbose, warnings
// and errors otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
