// Package recipe gives read access to the files of a KISS recipe directory.
package recipe

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// ErrMissing is returned by Read when a required file does not exist.
var ErrMissing = errors.New("file not found")

// Dir is a recipe directory backed by a billy filesystem rooted at it.
type Dir struct {
	Path string
	fs   billy.Filesystem
}

// Open returns the recipe directory at path on the host filesystem.
func Open(path string) (*Dir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("recipe: %q is not a directory", path)
	}
	return New(path, osfs.New(path)), nil
}

// New wraps fs, which must be rooted at the recipe directory. path is only
// used for reporting.
func New(path string, fs billy.Filesystem) *Dir {
	return &Dir{Path: path, fs: fs}
}

// Exists reports whether name exists in the recipe directory.
func (d *Dir) Exists(name string) (bool, error) {
	_, err := d.fs.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("recipe: stat %q: %w", name, err)
	}
}

// Read returns the content of a required file. A missing file yields an
// error wrapping ErrMissing.
func (d *Dir) Read(name string) (string, error) {
	text, ok, err := d.ReadOptional(name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("recipe: %s: %w", name, ErrMissing)
	}
	return text, nil
}

// ReadOptional returns the content of name and whether it exists.
func (d *Dir) ReadOptional(name string) (string, bool, error) {
	ok, err := d.Exists(name)
	if err != nil || !ok {
		return "", false, err
	}
	b, err := util.ReadFile(d.fs, name)
	if err != nil {
		return "", false, fmt.Errorf("recipe: read %q: %w", name, err)
	}
	return string(b), true, nil
}
