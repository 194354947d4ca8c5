/*
Package datastore defines the storage interface for records produced by assignment relationships.

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Create(ctx context.Context, entity T) error
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation with macro-based keys
  - mock: In-memory mock implementation for testing

Missing records are reported as errors.NotFoundError and rejected conditional
creates as errors.ConditionFailedError, whatever the backend.
*/
package datastore
