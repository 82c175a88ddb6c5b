// Package walk discovers projects by scanning a directory tree for
// project files, for solutions that carry no .sln container.
package walk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/slnclean/slnclean/solution"
)

// directories that never contain project roots worth descending into
var ignoreDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	"packages":     true,
	".nuget":       true,
	".git":         true,
	".hg":          true,
	".svn":         true,
	".vs":          true,
	".idea":        true,
	".vscode":      true,
	"node_modules": true,
	"vendor":       true,
	"testdata":     true,
}

type Host struct {
	Root     string
	Patterns []string
	Selected []string
}

func New(root string, patterns []string, selected []string) *Host {
	return &Host{
		Root:     root,
		Patterns: patterns,
		Selected: selected,
	}
}

func (h *Host) Projects() ([]solution.Project, error) {
	var out []solution.Project
	err := filepath.Walk(h.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logrus.Debugf("skipping unreadable path %s: %v", path, err)
			return nil
		}
		if info.IsDir() {
			if path != h.Root && ignoreDirs[strings.ToLower(info.Name())] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(h.Root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range h.Patterns {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				logrus.Debugf("invalid project pattern %q: %v", pattern, err)
				continue
			}
			if ok {
				out = append(out, &fileProject{abs: path, rel: rel})
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (h *Host) SelectedProjects() ([]solution.Project, error) {
	if len(h.Selected) == 0 {
		return nil, nil
	}
	all, err := h.Projects()
	if err != nil {
		return nil, err
	}
	var out []solution.Project
	for _, p := range all {
		if h.matches(p.UniqueName()) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (h *Host) matches(uniqueName string) bool {
	base := strings.TrimSuffix(filepath.Base(uniqueName), filepath.Ext(uniqueName))
	for _, s := range h.Selected {
		if strings.EqualFold(s, uniqueName) || strings.EqualFold(s, base) {
			return true
		}
	}
	return false
}

// fileProject is a leaf discovered on disk. It has no children and
// no grouping semantics.
type fileProject struct {
	abs string
	rel string
}

func (p *fileProject) UniqueName() string                    { return p.rel }
func (p *fileProject) Kind() solution.Kind                   { return solution.KindLeaf }
func (p *fileProject) Children() ([]solution.Project, error) { return nil, nil }

func (p *fileProject) PathCandidates() []solution.PathCandidate {
	return []solution.PathCandidate{
		{
			Name: "ProjectDir",
			Lookup: func() (string, error) {
				return filepath.Dir(p.abs), nil
			},
		},
	}
}

func (p *fileProject) FileReferencePath() string { return p.abs }
