package config

const (
	defaultFilePath            = "generator.properties"
	defaultRepositoryName      = "Maven Central"
	defaultRepositoryURL       = "http://repo1.maven.org/maven2"
	defaultExcludedScopes      = "test,system,provided"
	defaultExcludedClassifiers = "tests"
)

// Defaults holds the values used when a key is absent from the properties file.
// List values are kept in their comma-joined form and split the same way file
// values are.
type Defaults struct {
	FilePath            string
	RepositoryNames     string
	RepositoryURLs      string
	ProcessPlugins      bool
	ExcludedScopes      string
	ExcludedClassifiers string
	IncludeOptional     bool
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		FilePath:            defaultFilePath,
		RepositoryNames:     defaultRepositoryName,
		RepositoryURLs:      defaultRepositoryURL,
		ProcessPlugins:      false,
		ExcludedScopes:      defaultExcludedScopes,
		ExcludedClassifiers: defaultExcludedClassifiers,
		IncludeOptional:     false,
	}
}
