/*
Package errors provides semantic error types for the assignment library.

Two errors describe misuse of a relationship between a source and a target type:

	var (
	    ErrRelationshipAlreadyDefined = errors.New("relationship already defined")
	    ErrRelationshipUndefined      = errors.New("relationship not defined")
	)

Both are carried by typed errors that record the Mode (ModeCreate or ModeAssign)
and the names of the source and target types:

	_, err := assignment.From[Person, PersonDto](reg, p)
	if errors.IsUndefined(err) {
	    var u *errors.UndefinedError
	    stderrors.As(err, &u)
	    log.Printf("missing %s for %s -> %s", u.Mode, u.Source, u.Target)
	}

The storage side of the library (datastore, persist, wiring) uses the remaining
errors:

	var (
	    ErrNotFound        = errors.New("record not found")
	    ErrAlreadyExists   = errors.New("already exists")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrConditionFailed = errors.New("condition check failed")
	    ErrNoIndexMap      = errors.New("no index map found for type")
	)

Every typed error implements Is, so the checks keep working through
fmt.Errorf("%w") and errors.Join.
*/
package errors
