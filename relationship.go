/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assignment

import (
	"reflect"

	"github.com/suparena/assignment/errors"
)

// Creator builds a new T from an S.
type Creator[S, T any] func(source S) T

// Assigner merges an S into an existing T and returns the T.
type Assigner[S, T any] func(source S, destination T) T

func keyFor[S, T any]() typePair {
	return typePair{
		source: reflect.TypeFor[S](),
		target: reflect.TypeFor[T](),
	}
}

// DefineCreation registers how to create a T from an S.
// It fails with an AlreadyDefinedError if a creator is already registered for the pair.
func DefineCreation[S, T any](r *Registry, fn func(source S) T) error {
	if fn == nil {
		return errors.NewValidationError("fn", "creator must not be nil")
	}
	return r.define(keyFor[S, T](), ModeCreate, Creator[S, T](fn))
}

// DefineAssignment registers how to assign an S onto an existing T.
// It fails with an AlreadyDefinedError if an assigner is already registered for the pair.
func DefineAssignment[S, T any](r *Registry, fn func(source S, destination T) T) error {
	if fn == nil {
		return errors.NewValidationError("fn", "assigner must not be nil")
	}
	return r.define(keyFor[S, T](), ModeAssign, Assigner[S, T](fn))
}

// MustDefineCreation is DefineCreation for init-time wiring; it panics on error.
func MustDefineCreation[S, T any](r *Registry, fn func(source S) T) {
	if err := DefineCreation(r, fn); err != nil {
		panic(err)
	}
}

// MustDefineAssignment is DefineAssignment for init-time wiring; it panics on error.
func MustDefineAssignment[S, T any](r *Registry, fn func(source S, destination T) T) {
	if err := DefineAssignment(r, fn); err != nil {
		panic(err)
	}
}

// From creates a new T from source using the registered creator.
// It fails with an UndefinedError if no creator is registered for the pair.
func From[S, T any](r *Registry, source S) (T, error) {
	raw, err := r.lookup(keyFor[S, T](), ModeCreate)
	if err != nil {
		var zero T
		return zero, err
	}
	return raw.(Creator[S, T])(source), nil
}

// Assign merges source into destination using the registered assigner and
// returns the assigner's result.
// It fails with an UndefinedError if no assigner is registered for the pair.
func Assign[S, T any](r *Registry, source S, destination T) (T, error) {
	raw, err := r.lookup(keyFor[S, T](), ModeAssign)
	if err != nil {
		var zero T
		return zero, err
	}
	return raw.(Assigner[S, T])(source, destination), nil
}
