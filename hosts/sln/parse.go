package sln

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// solution folders carry this project type id
const folderTypeID = "2150E333-8FDC-42A3-9474-1A3956D46DE8"

var (
	projectRe = regexp.MustCompile(`^Project\("\{([0-9A-Fa-f-]+)\}"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"\{([0-9A-Fa-f-]+)\}"`)
	nestedRe  = regexp.MustCompile(`^\{([0-9A-Fa-f-]+)\}\s*=\s*\{([0-9A-Fa-f-]+)\}$`)
)

func parseFile(path string) ([]*node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir := filepath.Dir(path)

	byID := make(map[string]*node)
	var order []*node
	parents := make(map[string]string)

	inNested := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "GlobalSection(NestedProjects)"):
			inNested = true
		case line == "EndGlobalSection":
			inNested = false
		case inNested:
			if m := nestedRe.FindStringSubmatch(line); m != nil {
				parents[strings.ToUpper(m[1])] = strings.ToUpper(m[2])
			}
		default:
			if m := projectRe.FindStringSubmatch(line); m != nil {
				n := &node{
					typeID:  strings.ToUpper(m[1]),
					name:    m[2],
					relPath: normalizePath(m[3]),
					id:      strings.ToUpper(m[4]),
					slnDir:  dir,
				}
				byID[n.id] = n
				order = append(order, n)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	var roots []*node
	for _, n := range order {
		parentID, nested := parents[n.id]
		if !nested {
			roots = append(roots, n)
			continue
		}
		parent, ok := byID[parentID]
		if !ok {
			// dangling nesting entry, treat as top-level
			roots = append(roots, n)
			continue
		}
		parent.children = append(parent.children, n)
	}
	return roots, nil
}

// normalizePath converts the Windows-style separators a .sln carries
// into native ones.
func normalizePath(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, "\\", "/"))
}
