package schema

import "fmt"

// Registry is the keyed lookup of loaded domain schemas. It is built once and
// read-only afterwards, so concurrent reads need no locking.
type Registry struct {
	byName map[string]Domain
	names  []string
}

// NewRegistry builds a registry from validated domains. Domain order is kept
// as given (loader passes them sorted by file name).
func NewRegistry(domains []Domain) (*Registry, error) {
	byName := make(map[string]Domain, len(domains))
	names := make([]string, 0, len(domains))

	for _, d := range domains {
		if _, exists := byName[d.Name]; exists {
			return nil, fmt.Errorf("duplicate domain %q", d.Name)
		}
		byName[d.Name] = d
		names = append(names, d.Name)
	}

	return &Registry{byName: byName, names: names}, nil
}

// Get returns the domain schema by id.
func (r *Registry) Get(name string) (Domain, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns the loaded domain ids in load order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Count returns the number of loaded domains.
func (r *Registry) Count() int {
	return len(r.names)
}
