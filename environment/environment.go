/*
File    : minilang/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements MiniLang's lexical scope chain: a map of
// bindings plus an optional parent link, narrowed from the teacher's
// scope.Scope down to spec.md's four operations (Define/Get/Set/Exists).
// The Consts/LetVars/LetTypes machinery the teacher tracks for its
// var/let/const distinctions has no equivalent here — spec.md has a single
// untyped `let` with implicit declaration on bare assignment.
package environment

import "github.com/akashmaji946/minilang/values"

// Environment is a mapping from identifier to value, plus an optional
// parent link forming a chain. The chain is acyclic; the global
// environment has no parent.
type Environment struct {
	vars   map[string]values.Value
	Parent *Environment
}

// New creates an environment whose parent is parent (nil for the global
// environment).
func New(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]values.Value),
		Parent: parent,
	}
}

// Define always writes into the innermost (this) scope, shadowing any
// same-named binding in an enclosing scope.
func (e *Environment) Define(name string, value values.Value) {
	e.vars[name] = value
}

// Get walks toward the root looking for name, returning (value, true) at
// the first scope that owns it, or (nil, false) if no scope does.
func (e *Environment) Get(name string) (values.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set walks toward the root and updates the binding in the scope that owns
// name, returning true on success or false if no scope owns it (the caller
// decides whether that is an error or an implicit-declaration opportunity).
func (e *Environment) Set(name string, value values.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return true
		}
	}
	return false
}

// Exists reports whether name is bound anywhere on the chain.
func (e *Environment) Exists(name string) bool {
	_, ok := e.Get(name)
	return ok
}
