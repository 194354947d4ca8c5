/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wiring

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/assignment"
	"github.com/suparena/assignment/errors"
)

// Manifest lists the relationships an application expects to be registered.
type Manifest struct {
	Relationships []Entry `yaml:"relationships"`
}

// Entry names one source/target pair and the modes it needs. An entry with
// no modes expects both a creator and an assigner.
type Entry struct {
	Source string   `yaml:"source"`
	Target string   `yaml:"target"`
	Modes  []string `yaml:"modes,omitempty"`
}

// Expectation is a single required relationship.
type Expectation struct {
	Source string
	Target string
	Mode   assignment.Mode
}

// ParseMode converts "create" or "assign" (any case) to a Mode.
func ParseMode(s string) (assignment.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "create":
		return assignment.ModeCreate, nil
	case "assign":
		return assignment.ModeAssign, nil
	default:
		return 0, errors.NewValidationError("modes", fmt.Sprintf("unknown mode %q", s))
	}
}

// Parse decodes and validates a YAML manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, errors.NewValidationError("", "empty manifest")
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Validate checks that every entry names both types, uses known modes and
// does not repeat a pair or a mode. A pair is repeated when it names the same
// types, whether by short name or by import path.
func (m *Manifest) Validate() error {
	for i, e := range m.Relationships {
		field := fmt.Sprintf("relationships[%d]", i)
		if strings.TrimSpace(e.Source) == "" {
			return errors.NewValidationError(field+".source", "must not be empty")
		}
		if strings.TrimSpace(e.Target) == "" {
			return errors.NewValidationError(field+".target", "must not be empty")
		}

		for _, prev := range m.Relationships[:i] {
			if sameType(prev.Source, e.Source) && sameType(prev.Target, e.Target) {
				return errors.NewValidationError(field, fmt.Sprintf("duplicate pair %s -> %s", e.Source, e.Target))
			}
		}

		modes := make(map[assignment.Mode]bool, len(e.Modes))
		for _, s := range e.Modes {
			mode, err := ParseMode(s)
			if err != nil {
				return errors.NewValidationError(field+".modes", fmt.Sprintf("unknown mode %q", s))
			}
			if modes[mode] {
				return errors.NewValidationError(field+".modes", fmt.Sprintf("duplicate mode %q", s))
			}
			modes[mode] = true
		}
	}
	return nil
}

// Expectations flattens the manifest into one Expectation per required mode,
// in manifest order.
func (m *Manifest) Expectations() []Expectation {
	var out []Expectation
	for _, e := range m.Relationships {
		if len(e.Modes) == 0 {
			out = append(out,
				Expectation{Source: e.Source, Target: e.Target, Mode: assignment.ModeCreate},
				Expectation{Source: e.Source, Target: e.Target, Mode: assignment.ModeAssign},
			)
			continue
		}
		for _, s := range e.Modes {
			// Validate already rejected unknown modes.
			mode, _ := ParseMode(s)
			out = append(out, Expectation{Source: e.Source, Target: e.Target, Mode: mode})
		}
	}
	return out
}

// sameType reports whether two manifest type names can denote the same type.
// "testmodels.Person" matches "example.com/app/testmodels.Person"; two names
// that both carry an import path must match exactly.
func sameType(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == b {
		return true
	}
	if strings.Contains(a, "/") && strings.Contains(b, "/") {
		return false
	}
	return shortName(a) == shortName(b)
}

// shortName drops the import path from a type name, keeping any pointer stars.
func shortName(name string) string {
	bare := strings.TrimLeft(name, "*")
	stars := name[:len(name)-len(bare)]
	return stars + bare[strings.LastIndex(bare, "/")+1:]
}
