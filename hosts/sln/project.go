package sln

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/slnclean/slnclean/solution"
)

// node is one Project(...) entry of a .sln file.
type node struct {
	typeID   string
	name     string
	relPath  string
	id       string
	slnDir   string
	children []*node
}

func (n *node) isFolder() bool {
	return n.typeID == folderTypeID
}

// UniqueName is the solution-relative project file path for real
// projects and the display name for folders, mirroring how the IDE
// names projects uniquely within a solution.
func (n *node) UniqueName() string {
	if n.isFolder() {
		return n.name
	}
	return filepath.ToSlash(n.relPath)
}

func (n *node) Kind() solution.Kind {
	if n.isFolder() {
		return solution.KindFolder
	}
	return solution.KindLeaf
}

func (n *node) Children() ([]solution.Project, error) {
	out := make([]solution.Project, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out, nil
}

func (n *node) PathCandidates() []solution.PathCandidate {
	return []solution.PathCandidate{
		{
			Name: "FullPath",
			Lookup: func() (string, error) {
				if n.relPath == "" {
					return "", fmt.Errorf("project %s has no path", n.name)
				}
				return n.absPath(), nil
			},
		},
	}
}

func (n *node) FileReferencePath() string {
	if n.relPath == "" {
		return ""
	}
	return n.absPath()
}

func (n *node) absPath() string {
	if filepath.IsAbs(n.relPath) {
		return n.relPath
	}
	return filepath.Join(n.slnDir, n.relPath)
}

// matches reports whether the node answers to one of the given
// selection names, by unique name or display name.
func (n *node) matches(selection []string) bool {
	for _, s := range selection {
		if strings.EqualFold(s, n.name) || strings.EqualFold(s, n.UniqueName()) {
			return true
		}
	}
	return false
}
