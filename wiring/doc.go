/*
Package wiring checks an assignment.Registry against a YAML manifest.

A manifest lists the relationships an application relies on:

	relationships:
	  - source: testmodels.Person
	    target: testmodels.PersonRecord
	    modes: [create, assign]
	  - source: testmodels.Order
	    target: testmodels.OrderRecord
	    modes: [create]

Types are written as reflect prints them, or qualified by import path
("github.com/suparena/assignment/datastore/testmodels.Person"). An entry with no
modes expects both a creator and an assigner.

Call Verify once wiring is done to turn a missing registration into a startup
failure instead of an error at first use:

	m, err := wiring.Load("relationships.yaml")
	if err != nil {
	    return err
	}
	if err := wiring.Verify(assignment.Default(), m); err != nil {
	    return err // errors.IsUndefined(err) is true
	}
*/
package wiring
