package walk

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slnclean/slnclean/solution"
)

var patterns = []string{"**/*.csproj", "**/*.fsproj", "**/*.vbproj"}

func seed(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, ioutil.WriteFile(path, []byte("<Project/>"), 0644))
	}
}

func TestWalkFindsProjectFiles(t *testing.T) {
	root := t.TempDir()
	seed(t, root,
		"src/App/App.csproj",
		"src/Lib/Lib.fsproj",
		"src/Lib/readme.md",
	)

	h := New(root, patterns, nil)
	projects, err := solution.Enumerate(h)
	require.NoError(t, err)

	var got []string
	for _, p := range projects {
		got = append(got, p.UniqueName())
	}
	assert.Equal(t, []string{"src/App/App.csproj", "src/Lib/Lib.fsproj"}, got)
}

func TestWalkSkipsOutputAndMetadataDirs(t *testing.T) {
	root := t.TempDir()
	seed(t, root,
		"src/App/App.csproj",
		"src/App/obj/Debug/App.csproj",
		"packages/Some.Dep/Some.Dep.csproj",
		".git/refs/App.csproj",
	)

	h := New(root, patterns, nil)
	projects, err := h.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "src/App/App.csproj", projects[0].UniqueName())
}

func TestWalkProjectsResolveToTheirDir(t *testing.T) {
	root := t.TempDir()
	seed(t, root, "src/App/App.csproj")

	h := New(root, patterns, nil)
	projects, err := h.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)

	dir, ok := solution.ResolveRoot(projects[0])
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src", "App"), dir)
}

func TestWalkSelectionByBaseName(t *testing.T) {
	root := t.TempDir()
	seed(t, root,
		"src/App/App.csproj",
		"src/Lib/Lib.csproj",
	)

	h := New(root, patterns, []string{"lib"})
	selected, err := h.SelectedProjects()
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "src/Lib/Lib.csproj", selected[0].UniqueName())
}
