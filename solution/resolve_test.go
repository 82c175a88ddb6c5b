package solution

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name, value string, err error) PathCandidate {
	return PathCandidate{Name: name, Lookup: func() (string, error) {
		return value, err
	}}
}

func TestResolveRootUsesFirstWorkingCandidate(t *testing.T) {
	dir := t.TempDir()
	p := leaf("proj")
	p.candidates = []PathCandidate{
		candidate("FullPath", "", errors.New("property not supported")),
		candidate("LocalPath", dir, nil),
	}

	root, ok := ResolveRoot(p)
	require.True(t, ok)
	assert.Equal(t, dir, root)
}

func TestResolveRootSkipsEmptyCandidates(t *testing.T) {
	dir := t.TempDir()
	p := leaf("proj")
	p.candidates = []PathCandidate{
		candidate("FullPath", "", nil),
		candidate("LocalPath", dir, nil),
	}

	root, ok := ResolveRoot(p)
	require.True(t, ok)
	assert.Equal(t, dir, root)
}

func TestResolveRootReturnsDirOfProjectFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.csproj")
	require.NoError(t, ioutil.WriteFile(file, []byte("<Project/>"), 0644))

	p := leaf("proj")
	p.candidates = []PathCandidate{candidate("FullPath", file, nil)}

	root, ok := ResolveRoot(p)
	require.True(t, ok)
	assert.Equal(t, dir, root)
}

func TestResolveRootFallsBackToFileReference(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.csproj")
	require.NoError(t, ioutil.WriteFile(file, []byte("<Project/>"), 0644))

	p := leaf("proj")
	p.fileRef = file

	root, ok := ResolveRoot(p)
	require.True(t, ok)
	assert.Equal(t, dir, root)
}

func TestResolveRootAbsentWhenNothingResolves(t *testing.T) {
	p := leaf("proj")
	p.candidates = []PathCandidate{
		candidate("FullPath", "", errors.New("nope")),
	}

	_, ok := ResolveRoot(p)
	assert.False(t, ok)
}

func TestResolveRootAbsentForMissingPath(t *testing.T) {
	p := leaf("proj")
	p.candidates = []PathCandidate{
		candidate("FullPath", filepath.Join(t.TempDir(), "gone", "app.csproj"), nil),
	}

	_, ok := ResolveRoot(p)
	assert.False(t, ok)
}

func TestResolveRootAbsentForEmptyName(t *testing.T) {
	dir := t.TempDir()
	p := leaf("")
	p.candidates = []PathCandidate{candidate("FullPath", dir, nil)}

	_, ok := ResolveRoot(p)
	assert.False(t, ok)
}
