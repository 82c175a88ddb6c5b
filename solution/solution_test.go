package solution

type fakeProject struct {
	name        string
	kind        Kind
	children    []Project
	childrenErr error
	candidates  []PathCandidate
	fileRef     string
}

func (p *fakeProject) UniqueName() string { return p.name }
func (p *fakeProject) Kind() Kind         { return p.kind }
func (p *fakeProject) Children() ([]Project, error) {
	if p.childrenErr != nil {
		return nil, p.childrenErr
	}
	return p.children, nil
}
func (p *fakeProject) PathCandidates() []PathCandidate { return p.candidates }
func (p *fakeProject) FileReferencePath() string       { return p.fileRef }

func leaf(name string) *fakeProject {
	return &fakeProject{name: name, kind: KindLeaf}
}

func folder(name string, children ...Project) *fakeProject {
	return &fakeProject{name: name, kind: KindFolder, children: children}
}

type fakeSource struct {
	projects    []Project
	selected    []Project
	projectsErr error
	selectedErr error
}

func (s *fakeSource) Projects() ([]Project, error) {
	if s.projectsErr != nil {
		return nil, s.projectsErr
	}
	return s.projects, nil
}

func (s *fakeSource) SelectedProjects() ([]Project, error) {
	if s.selectedErr != nil {
		return nil, s.selectedErr
	}
	return s.selected, nil
}

func names(projects []Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.UniqueName())
	}
	return out
}
