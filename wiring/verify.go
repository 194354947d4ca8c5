/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wiring

import (
	stderrors "errors"
	"reflect"

	"github.com/suparena/assignment"
	"github.com/suparena/assignment/errors"
)

type defined struct {
	source, target string
	mode           assignment.Mode
}

// Verify checks that r holds every relationship m expects. An invalid manifest
// fails validation first. Each missing relationship is reported as an
// errors.UndefinedError; all of them are joined into the result.
func Verify(r *assignment.Registry, m *Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	have := make(map[defined]bool)
	for _, rel := range r.Relationships() {
		for _, s := range typeNames(rel.Source) {
			for _, t := range typeNames(rel.Target) {
				have[defined{source: s, target: t, mode: rel.Mode}] = true
			}
		}
	}

	var errs []error
	for _, exp := range m.Expectations() {
		if !have[defined{source: exp.Source, target: exp.Target, mode: exp.Mode}] {
			errs = append(errs, errors.NewUndefinedError(exp.Mode, exp.Source, exp.Target))
		}
	}
	return stderrors.Join(errs...)
}

// typeNames returns the names a manifest may use for t: the short form
// reflect prints ("models.Person") and the import-path form
// ("example.com/app/models.Person"), each also for one level of pointer.
func typeNames(t reflect.Type) []string {
	names := []string{t.String()}
	switch {
	case t.Name() != "" && t.PkgPath() != "":
		names = append(names, t.PkgPath()+"."+t.Name())
	case t.Kind() == reflect.Pointer && t.Elem().Name() != "" && t.Elem().PkgPath() != "":
		names = append(names, "*"+t.Elem().PkgPath()+"."+t.Elem().Name())
	}
	return names
}
