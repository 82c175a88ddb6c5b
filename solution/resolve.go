package solution

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// ResolveRoot determines the on-disk root directory of a project.
// Absence is a normal outcome, never an error: projects still
// loading or of unsupported kinds simply resolve to nothing and are
// skipped by callers.
func ResolveRoot(p Project) (string, bool) {
	name := p.UniqueName()
	if name == "" {
		return "", false
	}

	var path string
	for _, c := range p.PathCandidates() {
		v, err := c.Lookup()
		if err != nil {
			logrus.Tracef("path candidate %s unsupported on %s: %v", c.Name, name, err)
			continue
		}
		if v != "" {
			path = v
			break
		}
	}

	if path == "" {
		return resolveFromFileReference(p)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return path, true
	}
	return filepath.Dir(path), true
}

func resolveFromFileReference(p Project) (string, bool) {
	ref := p.FileReferencePath()
	if ref == "" {
		return "", false
	}
	info, err := os.Stat(ref)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return ref, true
	}
	return filepath.Dir(ref), true
}
