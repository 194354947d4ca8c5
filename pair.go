/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assignment

// Pair is a typed handle on the relationship from S to T in one Registry.
type Pair[S, T any] struct {
	registry *Registry
}

// For returns the handle for the S to T relationship in r.
func For[S, T any](r *Registry) Pair[S, T] {
	return Pair[S, T]{registry: r}
}

// DefineCreation registers the creator for the pair.
func (p Pair[S, T]) DefineCreation(fn func(source S) T) error {
	return DefineCreation(p.registry, fn)
}

// DefineAssignment registers the assigner for the pair.
func (p Pair[S, T]) DefineAssignment(fn func(source S, destination T) T) error {
	return DefineAssignment(p.registry, fn)
}

// From creates a new T from source.
func (p Pair[S, T]) From(source S) (T, error) {
	return From[S, T](p.registry, source)
}

// Assign merges source into destination.
func (p Pair[S, T]) Assign(source S, destination T) (T, error) {
	return Assign(p.registry, source, destination)
}

// CanCreate reports whether a creator is registered.
func (p Pair[S, T]) CanCreate() bool {
	key := keyFor[S, T]()
	return p.registry.Defined(key.source, key.target, ModeCreate)
}

// CanAssign reports whether an assigner is registered.
func (p Pair[S, T]) CanAssign() bool {
	key := keyFor[S, T]()
	return p.registry.Defined(key.source, key.target, ModeAssign)
}
