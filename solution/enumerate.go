package solution

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// maxDepth bounds the expansion of anonymous grouping nodes, the
// host-owned graph is not guaranteed acyclic.
const maxDepth = 64

// Enumerate flattens a solution into its deduplicated list of leaf
// projects, sorted by unique name so the order is reproducible
// across runs regardless of host-reported iteration order.
func Enumerate(src Source) ([]Project, error) {
	seeds, err := src.SelectedProjects()
	if err != nil {
		logrus.Debugf("selected projects unavailable: %v", err)
		seeds = nil
	}
	if len(seeds) == 0 {
		seeds, err = src.Projects()
		if err != nil {
			return nil, err
		}
	}

	leaves := make(map[string]Project)
	seen := make(map[string]bool)
	for _, p := range seeds {
		expand(p, leaves, seen, 0)
	}

	names := make([]string, 0, len(leaves))
	for name := range leaves {
		names = append(names, name)
	}
	sort.Strings(names)

	projects := make([]Project, 0, len(names))
	for _, name := range names {
		projects = append(projects, leaves[name])
	}
	return projects, nil
}

func expand(p Project, leaves map[string]Project, seen map[string]bool, depth int) {
	if p == nil || depth > maxDepth {
		return
	}

	name := p.UniqueName()
	if name != "" {
		if seen[name] {
			return
		}
		seen[name] = true
	}

	if p.Kind() == KindFolder || name == "" {
		children, err := p.Children()
		if err != nil {
			logrus.Debugf("skipping unreadable node %q: %v", name, err)
			return
		}
		for _, c := range children {
			expand(c, leaves, seen, depth+1)
		}
		return
	}

	// a node with a resolvable identity is a leaf even if it
	// nominally has children
	leaves[name] = p
}
