package routingkit

import (
	"fmt"
	"strings"
)

// ResolveFunc converts the raw text of a matched path segment into a typed value.
type ResolveFunc func(raw string) (interface{}, error)

// Type describes one kind of dynamic route parameter: a routing slug used as
// the placeholder key in route patterns, a raw-bytes codec for the route
// registration machinery and a resolver turning matched text into a value.
type Type struct {
	name    string
	slug    string
	codec   Encoder
	resolve ResolveFunc
}

type typeOption func(*Type)

func TypeWithSlug(slug string) typeOption {
	return func(t *Type) {
		t.slug = slug
	}
}

func TypeWithCodec(codec Encoder) typeOption {
	return func(t *Type) {
		t.codec = codec
	}
}

// NewType builds a param type. The routing slug defaults to the lowercased
// name, so most types need no options to participate in a route pattern.
func NewType(name string, resolve ResolveFunc, options ...typeOption) Type {
	t := Type{
		name:    name,
		slug:    strings.ToLower(name),
		codec:   stringCodec{},
		resolve: resolve,
	}

	for _, opt := range options {
		opt(&t)
	}

	return t
}

func (t Type) Name() string {
	return t.name
}

func (t Type) RoutingSlug() string {
	return t.slug
}

func (t Type) PathComponent() PathComponent {
	return PathComponent{
		Slug:  t.slug,
		Codec: t.codec,
	}
}

func (t Type) Resolve(raw string) (interface{}, error) {
	return t.resolve(raw)
}

// PathComponent pairs a routing slug with the codec needed to carry the
// segment's resolved value through route registration.
type PathComponent struct {
	Slug  string
	Codec Encoder
}

func (p PathComponent) String() string {
	return `{` + p.Slug + `}`
}

// Pattern assembles a route template from literal string segments, path
// components and param types, eg. Pattern(`users`, UUID, `posts`, Int)
// renders `/users/{uuid}/posts/{int}`.
func Pattern(segments ...interface{}) string {
	b := strings.Builder{}
	for _, seg := range segments {
		b.WriteByte('/')
		switch v := seg.(type) {
		case string:
			b.WriteString(v)
		case PathComponent:
			b.WriteString(v.String())
		case Type:
			b.WriteString(v.PathComponent().String())
		default:
			panic(fmt.Sprintf(`pattern segment [%v] is not a string, PathComponent or Type`, seg))
		}
	}

	if b.Len() == 0 {
		return `/`
	}

	return b.String()
}
