// Package sln exposes a Visual Studio solution file as a project
// source. Only the .sln container format is read, the referenced
// project files themselves are never parsed.
package sln

import (
	"github.com/slnclean/slnclean/solution"
)

type Host struct {
	Path     string
	Selected []string

	roots []*node
}

func New(path string, selected []string) (*Host, error) {
	roots, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return &Host{
		Path:     path,
		Selected: selected,
		roots:    roots,
	}, nil
}

func (h *Host) Projects() ([]solution.Project, error) {
	out := make([]solution.Project, 0, len(h.roots))
	for _, n := range h.roots {
		out = append(out, n)
	}
	return out, nil
}

func (h *Host) SelectedProjects() ([]solution.Project, error) {
	if len(h.Selected) == 0 {
		return nil, nil
	}
	var out []solution.Project
	var walk func(n *node)
	walk = func(n *node) {
		if n.matches(h.Selected) {
			out = append(out, n)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, n := range h.roots {
		walk(n)
	}
	return out, nil
}
