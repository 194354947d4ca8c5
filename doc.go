/*
Package assignment provides a type-indexed registry of conversions between Go types.

For every ordered pair of types (S, T) a Registry holds at most two functions:
  - a creator, func(S) T, which builds a new T from an S
  - an assigner, func(S, T) T, which merges an S into an existing T

Functions are registered once, usually while wiring the application, and later
invoked by type pair alone:

	reg := assignment.NewRegistry()

	assignment.MustDefineCreation(reg, func(p Person) PersonDto {
	    return PersonDto{Name: p.Name}
	})
	assignment.MustDefineAssignment(reg, func(p Person, d *PersonDto) *PersonDto {
	    d.Name = p.Name
	    return d
	})

	dto, err := assignment.From[Person, PersonDto](reg, person)
	existing, err = assignment.Assign(reg, person, existing)

The same relationship can be handled through a typed Pair:

	people := assignment.For[Person, PersonDto](reg)
	dto, err := people.From(person)

Registering a creator or assigner twice for the same pair returns an
errors.AlreadyDefinedError and keeps the first function. Invoking a function that
was never registered returns an errors.UndefinedError naming both types. The
registry never falls back to a default conversion.

A Registry is safe for concurrent use. User functions run without any registry
lock held. Default returns a process-wide Registry for programs that prefer a
single table; tests should build their own with NewRegistry.

Subpackages:
  - errors: semantic error types
  - datastore, datastore/ddb, datastore/mock: record storage
  - persist: create or update stored records through a Registry
  - wiring: YAML manifests of the relationships an application expects
*/
package assignment
