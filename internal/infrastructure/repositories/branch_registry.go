package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// BranchFactory creates a BranchRepository for the working copy at dir.
type BranchFactory func(dir string) domainRepos.BranchRepository

// BranchRegistry manages all registered current-branch resolvers.
type BranchRegistry struct {
	resolvers map[string]BranchFactory
}

// NewBranchRegistry creates an empty branch resolver registry.
func NewBranchRegistry() *BranchRegistry {
	return &BranchRegistry{
		resolvers: make(map[string]BranchFactory),
	}
}

// Register adds a resolver factory under the given name (e.g. "git").
func (r *BranchRegistry) Register(name string, factory BranchFactory) {
	r.resolvers[name] = factory
}

// Get returns a resolver for the given name bound to dir.
func (r *BranchRegistry) Get(name, dir string) (domainRepos.BranchRepository, error) {
	factory, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown branch resolver: %q", name)
	}
	return factory(dir), nil
}

// Names returns the sorted list of registered resolver names.
func (r *BranchRegistry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
