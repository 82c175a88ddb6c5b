package solution

// Kind discriminates purely organizational grouping nodes from real
// projects.
type Kind int

const (
	KindLeaf Kind = iota
	KindFolder
)

// PathCandidate is one fallible metadata field from which a project
// root directory may be derived. Lookup failing is expected for
// non-standard project kinds and simply advances resolution to the
// next candidate.
type PathCandidate struct {
	Name   string
	Lookup func() (string, error)
}

// Project is the capability surface the engine needs from a
// host-provided project node. Handles are supplied fresh by the host
// per invocation, treated as read-only and never persisted.
type Project interface {
	UniqueName() string
	Kind() Kind
	Children() ([]Project, error)
	PathCandidates() []PathCandidate
	FileReferencePath() string
}
