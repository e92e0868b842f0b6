package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// RepositoryEntry is a named remote artifact repository.
type RepositoryEntry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Properties is a read-only view over a loaded generator properties file.
type Properties struct {
	path     string
	store    *properties.Properties
	defaults Defaults
	logger   *zap.Logger
}

// Option configures New.
type Option func(*Properties)

// WithLogger sets the logger used to report load diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Properties) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDefaults replaces the built-in defaults, including the default file path.
func WithDefaults(defaults Defaults) Option {
	return func(p *Properties) {
		p.defaults = defaults
	}
}

// NewDefault loads the properties file from the default path.
func NewDefault(opts ...Option) (*Properties, error) {
	return New("", opts...)
}

// New loads the properties file at path. An empty path selects the default
// file path, resolved relative to the working directory. The file is read in
// full and closed before New returns.
func New(path string, opts ...Option) (*Properties, error) {
	p := &Properties{
		defaults: DefaultDefaults(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if path == "" {
		path = p.defaults.FilePath
	}
	p.path = path

	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	store, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigLoad, path, err)
	}
	p.store = store

	p.logger.Debug("application properties loaded",
		zap.String("path", path),
		zap.Int("keys", store.Len()),
	)
	for _, key := range store.Keys() {
		if !slices.Contains(PropertyKeys(), key) {
			p.logger.Warn("unrecognised property ignored", zap.String("path", path), zap.String("key", key))
		}
	}

	return p, nil
}

// Path returns the file the properties were loaded from.
func (p *Properties) Path() string {
	return p.path
}

// Keys returns the keys defined in the file, in file order.
func (p *Properties) Keys() []string {
	return p.store.Keys()
}

// Repositories returns repository URLs keyed by repository name. When a name
// repeats, the URL of the later entry wins.
func (p *Properties) Repositories() (map[string]string, error) {
	entries, err := p.RepositoryEntries()
	if err != nil {
		return nil, err
	}

	repositories := make(map[string]string, len(entries))
	for _, entry := range entries {
		repositories[entry.Name] = entry.URL
	}
	return repositories, nil
}

// RepositoryEntries returns the configured repositories in file order,
// duplicates included.
func (p *Properties) RepositoryEntries() ([]RepositoryEntry, error) {
	names := splitList(p.getString(KeyRepositoryNames, p.defaults.RepositoryNames))
	urls := splitList(p.getString(KeyRepositoryURLs, p.defaults.RepositoryURLs))

	if len(names) != len(urls) {
		return nil, fmt.Errorf("%w: same number of repository names and urls is expected, got %d names and %d urls",
			ErrConfigValidation, len(names), len(urls))
	}

	entries := make([]RepositoryEntry, len(names))
	for i := range names {
		entries[i] = RepositoryEntry{Name: names[i], URL: urls[i]}
	}
	return entries, nil
}

// ProcessPlugins reports whether build plugins are processed alongside dependencies.
func (p *Properties) ProcessPlugins() (bool, error) {
	return p.getBool(KeyProcessPlugins, p.defaults.ProcessPlugins)
}

// ExcludedScopes returns the dependency scopes to skip, in configured order.
func (p *Properties) ExcludedScopes() []string {
	return splitList(p.getString(KeyExcludedScopes, p.defaults.ExcludedScopes))
}

// ExcludedClassifiers returns the artifact classifiers to skip, in configured order.
func (p *Properties) ExcludedClassifiers() []string {
	return splitList(p.getString(KeyExcludedClassifiers, p.defaults.ExcludedClassifiers))
}

// IncludeOptional reports whether optional dependencies are included.
func (p *Properties) IncludeOptional() (bool, error) {
	return p.getBool(KeyIncludeOptional, p.defaults.IncludeOptional)
}

// lookup returns the raw file value for key with trailing blanks removed.
// Blanks inside the value, including around separators, are kept.
func (p *Properties) lookup(key string) (string, bool) {
	value, ok := p.store.Get(key)
	if !ok {
		return "", false
	}
	return strings.TrimRight(value, trailingBlanks), true
}

// getString returns the value for key, or def when the file does not define it.
func (p *Properties) getString(key, def string) string {
	if value, ok := p.lookup(key); ok {
		return value
	}
	return def
}

// getBool coerces the value for key into a boolean, or returns def when the file does not define it.
func (p *Properties) getBool(key string, def bool) (bool, error) {
	value, ok := p.lookup(key)
	if !ok {
		return def, nil
	}
	return parseBool(key, value)
}
