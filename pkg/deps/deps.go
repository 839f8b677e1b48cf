// Package deps composes small, named units of request-derived state.
//
// A Unit is a pure function of the incoming request (and the results of any
// prerequisite units it resolves internally). Units are memoized per request:
// a fresh Scope is injected into the request context by Middleware, and
// Resolve computes each unit at most once per request, caching both value and
// error. Because a dependent unit calls Resolve on its prerequisites inside
// its own function, prerequisites always resolve fully first and a
// prerequisite failure short-circuits the dependent.
package deps

import (
	"context"
	"net/http"
	"sync"
)

// Unit is a named, per-request-memoized piece of derived state.
// Construct with New; resolve with Resolve.
type Unit[T any] struct {
	name string
	fn   func(*http.Request) (T, error)
}

// New returns a Unit computed by fn. The name appears in logs and test
// failures only; identity for memoization is the Unit pointer itself.
func New[T any](name string, fn func(*http.Request) (T, error)) *Unit[T] {
	return &Unit[T]{name: name, fn: fn}
}

// Name returns the unit's diagnostic name.
func (u *Unit[T]) Name() string { return u.name }

// Resolve returns the unit's value for this request, computing it at most
// once per request scope. Errors are memoized too: a failed prerequisite
// fails every dependent without re-running.
//
// When the request carries no Scope (unit used outside the middleware stack,
// e.g. in isolation tests), the function runs unmemoized.
func (u *Unit[T]) Resolve(r *http.Request) (T, error) {
	sc := ScopeFrom(r.Context())
	if sc == nil {
		return u.fn(r)
	}

	if res, ok := sc.lookup(u); ok {
		if res.err != nil {
			var zero T
			return zero, res.err
		}
		return res.val.(T), nil
	}

	v, err := u.fn(r)
	sc.store(u, result{val: v, err: err})
	return v, err
}

type result struct {
	val any
	err error
}

// Scope is the per-request memoization cache. It is created by Middleware,
// keyed by unit identity, and discarded when the response is produced.
type Scope struct {
	mu      sync.Mutex
	results map[any]result
}

// NewScope returns an empty Scope. Handlers under Middleware never need
// this; it exists for tests that exercise units without a full router.
func NewScope() *Scope {
	return &Scope{results: make(map[any]result)}
}

func (s *Scope) lookup(key any) (result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[key]
	return res, ok
}

func (s *Scope) store(key any, res result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[key] = res
}

type ctxKey struct{}

// WithScope returns a context carrying the given Scope.
func WithScope(ctx context.Context, sc *Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// ScopeFrom extracts the request's Scope, or nil when none was injected.
func ScopeFrom(ctx context.Context) *Scope {
	sc, _ := ctx.Value(ctxKey{}).(*Scope)
	return sc
}

// Middleware injects a fresh Scope into each request's context so that all
// units resolved downstream share one memoization cache.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithScope(r.Context(), NewScope())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
