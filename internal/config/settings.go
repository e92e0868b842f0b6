package config

// Settings is a resolved snapshot of every recognised property.
type Settings struct {
	Path                string            `yaml:"path"`
	Repositories        []RepositoryEntry `yaml:"repositories"`
	ProcessPlugins      bool              `yaml:"process_plugins"`
	ExcludedScopes      []string          `yaml:"excluded_scopes"`
	ExcludedClassifiers []string          `yaml:"excluded_classifiers"`
	IncludeOptional     bool              `yaml:"include_optional"`
}

// Settings evaluates every getter and returns the first validation error.
func (p *Properties) Settings() (Settings, error) {
	repositories, err := p.RepositoryEntries()
	if err != nil {
		return Settings{}, err
	}

	processPlugins, err := p.ProcessPlugins()
	if err != nil {
		return Settings{}, err
	}

	includeOptional, err := p.IncludeOptional()
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Path:                p.path,
		Repositories:        repositories,
		ProcessPlugins:      processPlugins,
		ExcludedScopes:      p.ExcludedScopes(),
		ExcludedClassifiers: p.ExcludedClassifiers(),
		IncludeOptional:     includeOptional,
	}, nil
}
