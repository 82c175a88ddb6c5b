package solution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateSortsByUniqueName(t *testing.T) {
	src := &fakeSource{
		projects: []Project{leaf("zeta"), leaf("alpha"), leaf("mid")},
	}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names(projects))
}

func TestEnumerateIsDeterministic(t *testing.T) {
	src := &fakeSource{
		projects: []Project{
			folder("grp", leaf("b"), leaf("a")),
			leaf("c"),
		},
	}

	first, err := Enumerate(src)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Enumerate(src)
		require.NoError(t, err)
		assert.Equal(t, names(first), names(again))
	}
}

func TestEnumerateExpandsFoldersTransparently(t *testing.T) {
	src := &fakeSource{
		projects: []Project{
			folder("solution items", leaf("one"), leaf("two"), leaf("three")),
		},
	}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "three", "two"}, names(projects))
	for _, p := range projects {
		assert.NotEqual(t, "solution items", p.UniqueName())
	}
}

func TestEnumerateDeduplicatesSelectedAndExpanded(t *testing.T) {
	shared := leaf("app/app.csproj")
	src := &fakeSource{
		projects: []Project{folder("grp", shared), leaf("lib/lib.csproj")},
		selected: []Project{shared, folder("grp", shared)},
	}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"app/app.csproj"}, names(projects))
}

func TestEnumerateSelectedSubsetSeedsTheSet(t *testing.T) {
	src := &fakeSource{
		projects: []Project{leaf("a"), leaf("b"), leaf("c")},
		selected: []Project{leaf("b")},
	}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(projects))
}

func TestEnumerateToleratesBrokenChildren(t *testing.T) {
	broken := &fakeProject{
		name:        "broken",
		kind:        KindFolder,
		childrenErr: errors.New("RPC server unavailable"),
	}
	src := &fakeSource{
		projects: []Project{broken, leaf("ok")},
	}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, names(projects))
}

func TestEnumerateExcludesNamelessNodes(t *testing.T) {
	src := &fakeSource{
		projects: []Project{leaf(""), leaf("named")},
	}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"named"}, names(projects))
}

func TestEnumerateDoesNotDescendIntoNamedLeaves(t *testing.T) {
	nested := leaf("nested")
	parent := &fakeProject{
		name:     "parent",
		kind:     KindLeaf,
		children: []Project{nested},
	}
	src := &fakeSource{projects: []Project{parent}}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"parent"}, names(projects))
}

func TestEnumerateSurvivesCycles(t *testing.T) {
	a := &fakeProject{name: "a", kind: KindFolder}
	b := &fakeProject{name: "b", kind: KindFolder, children: []Project{a, leaf("inner")}}
	a.children = []Project{b}
	src := &fakeSource{projects: []Project{a}}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"inner"}, names(projects))
}

func TestEnumerateFallsBackWhenSelectionUnavailable(t *testing.T) {
	src := &fakeSource{
		projects:    []Project{leaf("x")},
		selectedErr: errors.New("no selection service"),
	}

	projects, err := Enumerate(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, names(projects))
}

func TestEnumerateProjectsFailureIsFatal(t *testing.T) {
	src := &fakeSource{projectsErr: errors.New("solution not loaded")}

	_, err := Enumerate(src)
	assert.Error(t, err)
}
