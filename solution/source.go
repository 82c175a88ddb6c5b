package solution

// Source supplies the project nodes of one solution.
type Source interface {
	Projects() ([]Project, error)
	// SelectedProjects returns the pre-selected subset seeding the
	// enumeration, nil meaning no selection.
	SelectedProjects() ([]Project, error)
}
