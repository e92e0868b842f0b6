package config

// Property keys recognised in the generator properties file.
const (
	KeyRepositoryNames     = "repository.names"
	KeyRepositoryURLs      = "repository.urls"
	KeyProcessPlugins      = "process.plugins"
	KeyExcludedScopes      = "excluded.scopes"
	KeyExcludedClassifiers = "excluded.classifiers"
	KeyIncludeOptional     = "include.optional"
)

// PropertyKeys lists every recognised key in the order they are documented.
func PropertyKeys() []string {
	return []string{
		KeyRepositoryNames,
		KeyRepositoryURLs,
		KeyProcessPlugins,
		KeyExcludedScopes,
		KeyExcludedClassifiers,
		KeyIncludeOptional,
	}
}
