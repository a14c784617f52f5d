package routingkit

import (
	"fmt"

	"github.com/tryfix/log"
)

// Registry maps routing slugs to param types. Registration happens once at
// startup; lookups afterwards are read-only and safe for concurrent use.
type Registry struct {
	types  map[string]Type
	logger log.Logger
}

type registryOption func(*Registry)

func RegistryWithLogger(l log.Logger) registryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

func NewRegistry(options ...registryOption) *Registry {
	r := &Registry{
		types:  map[string]Type{},
		logger: log.NewNoopLogger(),
	}

	for _, opt := range options {
		opt(r)
	}

	for _, t := range []Type{
		String,
		Int, Int8, Int16, Int32, Int64,
		Uint, Uint8, Uint16, Uint32, Uint64,
		Float32, Float64,
		UUID,
	} {
		r.Register(t)
	}

	return r
}

func (r *Registry) Register(t Type) {
	_, ok := r.types[t.slug]
	if ok {
		panic(fmt.Sprintf(`param type [%s] already registered for slug [%s]`, t.name, t.slug))
	}

	r.types[t.slug] = t
}

func (r *Registry) Lookup(slug string) (Type, bool) {
	t, ok := r.types[slug]
	return t, ok
}

func (r *Registry) Resolve(slug, raw string) (interface{}, error) {
	t, ok := r.types[slug]
	if !ok {
		return nil, UnknownSlugError{Slug: slug}
	}

	return t.Resolve(raw)
}

// ResolveVars resolves a full matched-vars map, eg. the output of mux.Vars,
// keyed by routing slug.
func (r *Registry) ResolveVars(vars map[string]string) (map[string]interface{}, error) {
	resolved := make(map[string]interface{}, len(vars))
	for slug, raw := range vars {
		v, err := r.Resolve(slug, raw)
		if err != nil {
			r.logger.Error(fmt.Sprintf(`route parameter [%s] resolve failed due to %s`, slug, err))
			return nil, err
		}

		resolved[slug] = v
	}

	return resolved, nil
}
