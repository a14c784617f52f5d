package routingkit

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/tryfix/log"
	traceable_context "github.com/tryfix/traceable-context"
)

type Param struct {
	name      string
	typ       Type
	whenEmpty func() string
}

type Values struct {
	params  map[string]interface{}
	headers map[string]interface{}
}

func (v Values) Param(name string) interface{} {
	return v.params[name]
}

func (v Values) Header(name string) interface{} {
	return v.headers[name]
}

type binderOption func(*Binder)

func BinderWithParam(name string, typ Type) binderOption {
	return func(b *Binder) {
		b.params = append(b.params, Param{
			name: name,
			typ:  typ,
		})
	}
}

func BinderWithOptionalParam(name string, typ Type, whenEmpty func() string) binderOption {
	return func(b *Binder) {
		b.params = append(b.params, Param{
			name:      name,
			typ:       typ,
			whenEmpty: whenEmpty,
		})
	}
}

func BinderWithHeader(name string, typ Type, whenEmpty func() string) binderOption {
	return func(b *Binder) {
		b.headers = append(b.headers, Param{
			name:      name,
			typ:       typ,
			whenEmpty: whenEmpty,
		})
	}
}

func BinderWithRegistry(r *Registry) binderOption {
	return func(b *Binder) {
		b.registry = r
	}
}

func BinderWithLogger(l log.Logger) binderOption {
	return func(b *Binder) {
		b.logger = l
	}
}

// Binder resolves the dynamic segments and typed headers of a matched request
// into values. Route matching itself belongs to the surrounding mux router.
type Binder struct {
	params   []Param
	headers  []Param
	registry *Registry
	logger   log.Logger
}

func NewBinder(options ...binderOption) *Binder {
	b := &Binder{
		logger: log.NewNoopLogger(),
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

func (b *Binder) Bind(r *http.Request) (Values, error) {
	ctx := r.Context()

	traceId := traceable_context.FromContext(ctx)
	if traceId == uuid.Nil {
		traceId = uuid.New()
	}

	values := Values{
		params:  map[string]interface{}{},
		headers: map[string]interface{}{},
	}

	// apply http request headers through the conversion contract
	for _, p := range b.headers {
		raw := r.Header.Get(p.name)
		if raw == `` {
			if p.whenEmpty == nil {
				return Values{}, InvalidHeaderError{
					Name: p.name,
				}
			}
			raw = p.whenEmpty()
		}

		v, err := p.typ.Resolve(raw)
		if err != nil {
			b.logger.ErrorContext(ctx, fmt.Sprintf(`http header [%s] resolve error on trace [%s] due to %s`, p.name, traceId, err))
			return Values{}, err
		}

		values.headers[p.name] = v
	}

	// apply matched route vars through the conversion contract
	vars := mux.Vars(r)
	for _, p := range b.params {
		raw, ok := vars[p.name]
		if !ok {
			if p.whenEmpty == nil {
				return Values{}, MissingParamError{
					Name: p.name,
				}
			}
			raw = p.whenEmpty()
		}

		v, err := p.typ.Resolve(raw)
		if err != nil {
			b.logger.ErrorContext(ctx, fmt.Sprintf(`route parameter [%s] resolve error on trace [%s] due to %s`, p.name, traceId, err))
			return Values{}, err
		}

		values.params[p.name] = v
	}

	// vars not claimed above resolve by slug through the registry
	if b.registry != nil {
		for slug, raw := range vars {
			if _, ok := values.params[slug]; ok {
				continue
			}

			v, err := b.registry.Resolve(slug, raw)
			if err != nil {
				b.logger.ErrorContext(ctx, fmt.Sprintf(`route parameter [%s] resolve error on trace [%s] due to %s`, slug, traceId, err))
				return Values{}, err
			}

			values.params[slug] = v
		}
	}

	return values, nil
}
