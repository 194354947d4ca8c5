/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assignment

import (
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/assignment/errors"
)

// Mode selects the creator or the assigner of a relationship.
type Mode = errors.Mode

const (
	// ModeCreate builds a new target from a source.
	ModeCreate = errors.ModeCreate
	// ModeAssign merges a source into an existing target.
	ModeAssign = errors.ModeAssign
)

// typePair is the ordered (source, target) lookup key.
type typePair struct {
	source reflect.Type
	target reflect.Type
}

// slot holds the functions registered for one type pair. The stored values are
// func(S) T and func(S, T) T for the pair's S and T.
type slot struct {
	create any
	assign any
}

// Relationship describes one registered function.
type Relationship struct {
	Source reflect.Type
	Target reflect.Type
	Mode   Mode
}

// Registry maps (source, target) type pairs to their creator and assigner.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	slots map[typePair]*slot
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		slots: make(map[typePair]*slot),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide Registry.
func Default() *Registry {
	return defaultRegistry
}

// Reset drops every registered relationship.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[typePair]*slot)
}

// Defined reports whether a function of the given mode is registered for the pair.
func (r *Registry) Defined(source, target reflect.Type, mode Mode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[typePair{source: source, target: target}]
	if !ok {
		return false
	}
	switch mode {
	case ModeCreate:
		return s.create != nil
	case ModeAssign:
		return s.assign != nil
	default:
		return false
	}
}

// Relationships returns every registered function, sorted by source, target and mode.
func (r *Registry) Relationships() []Relationship {
	r.mu.RLock()
	out := make([]Relationship, 0, len(r.slots)*2)
	for key, s := range r.slots {
		if s.create != nil {
			out = append(out, Relationship{Source: key.source, Target: key.target, Mode: ModeCreate})
		}
		if s.assign != nil {
			out = append(out, Relationship{Source: key.source, Target: key.target, Mode: ModeAssign})
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if as, bs := a.Source.String(), b.Source.String(); as != bs {
			return as < bs
		}
		if at, bt := a.Target.String(), b.Target.String(); at != bt {
			return at < bt
		}
		return a.Mode < b.Mode
	})
	return out
}

// define stores fn in the slot for key under mode, refusing to overwrite.
func (r *Registry) define(key typePair, mode Mode, fn any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[key]
	if !ok {
		s = &slot{}
		r.slots[key] = s
	}

	held := &s.create
	if mode == ModeAssign {
		held = &s.assign
	}
	if *held != nil {
		return errors.NewAlreadyDefinedError(mode, key.source.String(), key.target.String())
	}
	*held = fn
	return nil
}

// lookup returns the function stored for key under mode. The lock is released
// before the caller invokes it.
func (r *Registry) lookup(key typePair, mode Mode) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var fn any
	if s, ok := r.slots[key]; ok {
		if mode == ModeAssign {
			fn = s.assign
		} else {
			fn = s.create
		}
	}
	if fn == nil {
		return nil, errors.NewUndefinedError(mode, key.source.String(), key.target.String())
	}
	return fn, nil
}
