/*
File   : tamarin/environment/environment.go
Package: environment

A flat name-to-value mapping. Unlike the conventional Monkey-style
environment, this one has no enclosing-scope pointer: a function
literal captures its environment by cloning it at evaluation time, and
a call clones the captured environment again before binding
parameters. Mutating an outer binding after a closure is created is
therefore never observable by that closure — capture is a snapshot,
not a reference.
*/
package environment

import "github.com/arvindr/tamarin/objects"

// Environment maps identifier names to runtime values.
type Environment struct {
	store map[string]objects.Object
}

// New returns an empty Environment.
func New() *Environment {
	return &Environment{store: make(map[string]objects.Object)}
}

// Get looks up name. An absent key is reported as an Error value
// rather than a Go-level (nil, false) pair, since every unresolved
// identifier surfaces to callers as a first-class runtime error.
func (e *Environment) Get(name string) objects.Object {
	if val, ok := e.store[name]; ok {
		return val
	}
	return &objects.Error{Message: "unknown identifier: " + name}
}

// Has reports whether name is bound, without producing an error value.
func (e *Environment) Has(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Set binds name to val, overwriting any previous binding.
func (e *Environment) Set(name string, val objects.Object) objects.Object {
	e.store[name] = val
	return val
}

// Keys returns the bound names in no particular order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.store))
	for k := range e.store {
		keys = append(keys, k)
	}
	return keys
}

// Clone returns a new Environment holding a copy of every binding.
// Bound values themselves are not deep-copied (objects.Object values
// are treated as immutable once constructed), only the name→value map.
func (e *Environment) Clone() *Environment {
	clone := New()
	for k, v := range e.store {
		clone.store[k] = v
	}
	return clone
}
