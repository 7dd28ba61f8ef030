// Package precheck runs the external tools that must pass before a recipe is
// linted: the package manager's own check and shellcheck.
package precheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrFailed is wrapped by every error returned for a failing check.
var ErrFailed = errors.New("precheck failed")

// Check is an external command whose exit status gates linting.
type Check struct {
	Name    string // shown in messages, e.g. "kiss c"
	Program string
	Args    []string
}

// Defaults returns the standard checks using the given program names.
// Empty names fall back to "kiss" and "shellcheck".
func Defaults(kiss, shellcheck string) []Check {
	if kiss == "" {
		kiss = "kiss"
	}
	if shellcheck == "" {
		shellcheck = "shellcheck"
	}
	return []Check{
		{Name: "kiss c", Program: kiss, Args: []string{"c"}},
		{Name: "shellcheck", Program: shellcheck, Args: []string{"build"}},
	}
}

// Runner executes a check in a recipe directory.
type Runner interface {
	Run(ctx context.Context, dir string, c Check) error
}

// ExecRunner runs checks as child processes. Output of the child goes to
// Stdout and Stderr, which default to the process's own streams.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir string, c Check) error {
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Error{Check: c, ExitCode: exitErr.ExitCode()}
		}
		return &Error{Check: c, ExitCode: -1, Err: err}
	}
	return nil
}

// Error describes a check that did not succeed.
type Error struct {
	Check    Check
	ExitCode int   // -1 when the program could not be started
	Err      error // start failure, if any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed. Fix issues then try again.", e.Check.Name)
}

// Unwrap exposes ErrFailed and the underlying start error.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFailed, e.Err}
	}
	return []error{ErrFailed}
}

// Command returns the command line of the check.
func (c Check) Command() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// RunAll runs checks in order and stops at the first failure.
func RunAll(ctx context.Context, r Runner, dir string, checks []Check) error {
	for _, c := range checks {
		if err := r.Run(ctx, dir, c); err != nil {
			return err
		}
	}
	return nil
}
