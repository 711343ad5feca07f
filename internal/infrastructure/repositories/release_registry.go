package repositories

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	domainRepos "github.com/rios0rios0/versionsync/internal/domain/repositories"
)

// ErrUnknownSource is returned when no release source is registered under a name.
var ErrUnknownSource = errors.New("unknown release source")

// ReleaseFactory creates a ReleaseRepository for the given connection options.
type ReleaseFactory func(opts entities.ReleaseSourceOptions) (domainRepos.ReleaseRepository, error)

// ReleaseRegistry manages all registered release source implementations.
type ReleaseRegistry struct {
	factories map[string]ReleaseFactory
}

// NewReleaseRegistry creates an empty release registry.
func NewReleaseRegistry() *ReleaseRegistry {
	return &ReleaseRegistry{
		factories: make(map[string]ReleaseFactory),
	}
}

// Register adds a release factory under the given name (e.g. "github").
func (r *ReleaseRegistry) Register(name string, factory ReleaseFactory) {
	r.factories[name] = factory
}

// Get returns a configured release repository for the given source name.
func (r *ReleaseRegistry) Get(
	name string,
	opts entities.ReleaseSourceOptions,
) (domainRepos.ReleaseRepository, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return factory(opts)
}

// Names returns the sorted list of registered source names.
func (r *ReleaseRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
