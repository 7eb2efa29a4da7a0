package clients

import (
	"strings"
	"sync"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
)

// Registry is the catalog of client profiles. It is populated once by
// NewRegistry and never modified afterwards, so it needs no locking and is
// safe for concurrent use.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// NewRegistry validates profiles and builds a registry that keeps them in
// the given order. It returns ErrInvalidProfile or ErrDuplicateClient when
// a profile breaks the catalog invariants.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{
		profiles: make(map[string]*Profile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}
	for i := range profiles {
		p := profiles[i]
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.profiles[p.ID]; exists {
			return nil, errors.Wrapf(ErrDuplicateClient, "client %q", p.ID)
		}
		r.profiles[p.ID] = &p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(Catalog()...)
	if err != nil {
		panic(errors.Wrap(err, "built-in client catalog"))
	}
	return r
})

// Default returns the process-wide registry built from [Catalog].
func Default() *Registry {
	return defaultRegistry()
}

// CreateBuilder returns a builder for id from the default registry.
func CreateBuilder(id string) (*Builder, error) {
	return Default().CreateBuilder(id)
}

// CreateBuilder returns a builder bound to the profile for id.
//
// It returns an *UnknownClientError when id is not registered, and an
// *UnsupportedClientError when the client is web-UI-only or admin-managed.
// Ids are matched case-insensitively.
func (r *Registry) CreateBuilder(id string) (*Builder, error) {
	p, ok := r.Profile(id)
	if !ok {
		return nil, &UnknownClientError{
			ClientID:  id,
			Supported: r.Configurable(),
		}
	}
	if !p.IsConfigurable() {
		return nil, unsupportedError(p)
	}
	return &Builder{profile: p}, nil
}

// Profile looks up the profile for id, including non-configurable ones.
func (r *Registry) Profile(id string) (*Profile, bool) {
	p, ok := r.profiles[normalizeID(id)]
	return p, ok
}

// IDs returns every registered id in catalog order.
func (r *Registry) IDs() []string {
	if len(r.order) == 0 {
		return nil
	}
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Profiles returns every registered profile in catalog order.
func (r *Registry) Profiles() []*Profile {
	if len(r.order) == 0 {
		return nil
	}
	out := make([]*Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out
}

// Configurable returns the ids CreateBuilder succeeds for, in catalog order.
func (r *Registry) Configurable() []string {
	var ids []string
	for _, id := range r.order {
		if r.profiles[id].IsConfigurable() {
			ids = append(ids, id)
		}
	}
	return ids
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func unsupportedError(p *Profile) *UnsupportedClientError {
	return &UnsupportedClientError{
		ClientID:    p.ID,
		DisplayName: p.DisplayName,
		Kind:        p.Availability,
		Message:     p.Message,
	}
}
