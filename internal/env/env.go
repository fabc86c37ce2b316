// Package env implements the scoped type environment spec.md §4.4
// describes: a stack of scopes with a save/restore checkpoint, so the
// inferencer can scope a whole block's bindings in one shot instead of
// popping one scope per binding.
package env

import "github.com/hark-lang/hark/internal/types"

type scope map[string]types.Scheme

// Env is a stack of scopes; at least one scope is always present.
type Env struct {
	scopes []scope
}

// New returns an environment with a single empty top-level scope.
func New() *Env {
	return &Env{scopes: []scope{{}}}
}

// Push adds a fresh empty scope on top.
func (e *Env) Push() {
	e.scopes = append(e.scopes, scope{})
}

// Pop removes the top scope. The caller must not pop the last scope.
func (e *Env) Pop() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Define binds name to scheme in the top scope.
func (e *Env) Define(name string, scheme types.Scheme) {
	e.scopes[len(e.scopes)-1][name] = scheme
}

// Lookup walks the scope stack top-to-bottom and returns the first match.
func (e *Env) Lookup(name string) (types.Scheme, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if scheme, ok := e.scopes[i][name]; ok {
			return scheme, true
		}
	}
	return types.Scheme{}, false
}

// Save returns the current depth as a restore point. Each call site owns
// its own marker, so nested saves (one block inside another) don't
// clobber each other the way a single shared checkpoint would.
func (e *Env) Save() int {
	return len(e.scopes)
}

// Restore drops every scope pushed after mark.
func (e *Env) Restore(mark int) {
	e.scopes = e.scopes[:mark]
}

// FTV is the union of ftv(scheme) across every scope currently on the
// stack, used by Let-generalization to know which variables are already
// fixed by the environment.
func (e *Env) FTV() map[uint64]struct{} {
	out := make(map[uint64]struct{})
	for _, s := range e.scopes {
		for _, scheme := range s {
			for id := range scheme.FTV() {
				out[id] = struct{}{}
			}
		}
	}
	return out
}
