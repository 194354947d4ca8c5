// Package persist stores records produced by assignment relationships.
//
// A Syncer pairs the S to T relationship of a Registry with a
// datastore.DataStore[T]. Create runs the creator and inserts the result,
// Apply loads a stored record and runs the assigner on it, and Sync picks
// between the two depending on whether the record exists:
//
//	people := persist.NewSyncer[Person, PersonRecord](reg, store, persist.WithLogger(logger))
//	record, err := people.Sync(ctx, person.ID, person)
//
// Registry errors are returned unchanged, so errors.IsUndefined reports a
// missing creator or assigner.
package persist
