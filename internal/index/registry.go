package index

import (
	"sync"
	"time"

	"github.com/holytrinity/portal/internal/domain"
)

// Registry provides in-memory lookup of configured communities.
// It is rebuilt wholesale on every reload of the communities file.
type Registry struct {
	mu            sync.RWMutex
	communities   map[string]*domain.Community // name -> community
	defaultServer string                       // fallback minecraft address
	lastReload    time.Time
}

// NewRegistry creates an empty community registry.
func NewRegistry() *Registry {
	return &Registry{
		communities: make(map[string]*domain.Community),
	}
}

// Update replaces all communities and the default server in the registry.
func (r *Registry) Update(communities []*domain.Community, defaultServer string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.communities = make(map[string]*domain.Community, len(communities))
	for _, c := range communities {
		r.communities[c.Name] = c
	}
	r.defaultServer = defaultServer
	r.lastReload = time.Now()
}

// Get retrieves a community by name.
func (r *Registry) Get(name string) (*domain.Community, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.communities[name]
	return c, ok
}

// Names returns the configured community names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.communities))
	for name := range r.communities {
		names = append(names, name)
	}
	return names
}

// Count returns the number of configured communities.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.communities)
}

// DefaultServer returns the fallback minecraft server address, which may
// be empty when none is configured.
func (r *Registry) DefaultServer() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.defaultServer
}

// GetLastReload returns the timestamp of the last registry rebuild.
func (r *Registry) GetLastReload() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lastReload
}
