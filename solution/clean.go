package solution

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/slnclean/slnclean/tools"
)

// TargetOutcome is the result of cleaning one target subdirectory
// under one project root.
type TargetOutcome struct {
	Name    string
	Path    string
	Removed int
	Skipped bool
	Err     error
}

// Cleaner deletes the contents of the configured target
// subdirectories under a project root. Targets is an immutable
// snapshot for the lifetime of one batch.
type Cleaner struct {
	Targets []string
}

func NewCleaner(targets []string) *Cleaner {
	snapshot := make([]string, 0, len(targets))
	for _, t := range targets {
		if tools.SliceContainsString(snapshot, t) {
			continue
		}
		snapshot = append(snapshot, t)
	}
	return &Cleaner{Targets: snapshot}
}

// Clean removes every direct entry of root/<name> for each target
// name, leaving the target directory itself in place. A missing
// target is not an error. Failures are aggregated per target and
// never abort the remaining targets.
func (c *Cleaner) Clean(root string) ([]TargetOutcome, error) {
	if root == "" || len(c.Targets) == 0 {
		return nil, nil
	}

	outcomes := make([]TargetOutcome, 0, len(c.Targets))
	var errs []error
	for _, name := range c.Targets {
		o := cleanTarget(root, name)
		outcomes = append(outcomes, o)
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return outcomes, multierr.Combine(errs...)
}

func cleanTarget(root, name string) TargetOutcome {
	o := TargetOutcome{Name: name, Path: filepath.Join(root, name)}

	info, err := os.Lstat(o.Path)
	if err != nil {
		// most projects are missing one or both targets at times
		o.Skipped = true
		return o
	}
	if info.Mode()&os.ModeSymlink != 0 {
		o.Err = fmt.Errorf("refusing to clean %s: target is a symlink", o.Path)
		return o
	}
	if !info.IsDir() {
		o.Skipped = true
		return o
	}
	if err := ensureWithin(root, o.Path); err != nil {
		o.Err = err
		return o
	}

	entries, err := ioutil.ReadDir(o.Path)
	if err != nil {
		o.Err = fmt.Errorf("unable to read %s: %w", o.Path, err)
		return o
	}

	var errs []error
	for _, entry := range entries {
		entryPath := filepath.Join(o.Path, entry.Name())
		if err := removeAllForce(entryPath); err != nil {
			errs = append(errs, fmt.Errorf("unable to remove %s: %w", entryPath, err))
			continue
		}
		o.Removed++
	}
	o.Err = multierr.Combine(errs...)
	return o
}

// ensureWithin re-validates that path actually lives under root once
// symlinks are resolved, so a link or junction can never redirect
// the deletion outside the project tree.
func ensureWithin(root, path string) error {
	rootReal, err := filepath.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf("unable to resolve %s: %w", root, err)
	}
	pathReal, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("unable to resolve %s: %w", path, err)
	}
	rel, err := filepath.Rel(rootReal, pathReal)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("refusing to clean %s: outside of project root %s", path, root)
	}
	return nil
}

// removeAllForce is os.RemoveAll with a second chance for read-only
// entries: on failure the subtree is made writable once and the
// removal retried.
func removeAllForce(path string) error {
	if err := os.RemoveAll(path); err == nil {
		return nil
	}
	filepath.Walk(path, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		// chmod follows symlinks, the link target may live anywhere
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}
		if info.IsDir() {
			os.Chmod(p, 0700)
		} else {
			os.Chmod(p, 0600)
		}
		return nil
	})
	return os.RemoveAll(path)
}
