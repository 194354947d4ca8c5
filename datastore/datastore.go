/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

type DataStore[T any] interface {
	// GetOne returns the record stored under key, or a NotFoundError.
	GetOne(ctx context.Context, key string) (*T, error)

	// Put writes the record, replacing any record with the same key.
	Put(ctx context.Context, entity T) error

	// Create writes the record only if its key is not taken yet and returns a
	// ConditionFailedError otherwise.
	Create(ctx context.Context, entity T) error

	Delete(ctx context.Context, key string) error
}
