/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package persist

import (
	"context"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/suparena/assignment"
	"github.com/suparena/assignment/datastore"
	"github.com/suparena/assignment/errors"
)

// Syncer writes records of type T built from sources of type S. New records
// come from the registered creator; stored records are updated through the
// registered assigner.
type Syncer[S, T any] struct {
	pair   assignment.Pair[S, T]
	store  datastore.DataStore[T]
	logger *zap.Logger
}

// Option configures a Syncer.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for write events. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewSyncer creates a Syncer for the S to T relationship in r.
func NewSyncer[S, T any](r *assignment.Registry, store datastore.DataStore[T], opts ...Option) *Syncer[S, T] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Syncer[S, T]{
		pair:  assignment.For[S, T](r),
		store: store,
		logger: o.logger.With(
			zap.Stringer("source", reflect.TypeFor[S]()),
			zap.Stringer("target", reflect.TypeFor[T]()),
		),
	}
}

// Create builds a new record from source and stores it. It fails if a record
// with the same key already exists.
func (s *Syncer[S, T]) Create(ctx context.Context, source S) (T, error) {
	record, err := s.pair.From(source)
	if err != nil {
		return record, err
	}

	if err := s.store.Create(ctx, record); err != nil {
		var zero T
		return zero, fmt.Errorf("create record: %w", err)
	}

	s.logger.Debug("record created")
	return record, nil
}

// Apply loads the record stored under key, assigns source onto it and stores
// the result. It fails with a NotFoundError when no record exists and with an
// UndefinedError when a record exists but no assigner is registered.
func (s *Syncer[S, T]) Apply(ctx context.Context, key string, source S) (T, error) {
	var zero T

	existing, err := s.store.GetOne(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("load record %q: %w", key, err)
	}

	record, err := s.pair.Assign(source, *existing)
	if err != nil {
		return zero, err
	}

	if err := s.store.Put(ctx, record); err != nil {
		return zero, fmt.Errorf("store record %q: %w", key, err)
	}

	s.logger.Debug("record updated", zap.String("key", key))
	return record, nil
}

// Sync updates the record stored under key when it exists and creates it
// otherwise. A creator alone is enough to sync a missing record. If another writer creates the record first, the update is
// applied to that record instead.
func (s *Syncer[S, T]) Sync(ctx context.Context, key string, source S) (T, error) {
	record, err := s.Apply(ctx, key, source)
	if err == nil || !errors.IsNotFound(err) {
		return record, err
	}

	s.logger.Debug("record missing, creating", zap.String("key", key))
	record, err = s.Create(ctx, source)
	if errors.IsConditionFailed(err) {
		s.logger.Debug("record created concurrently, updating", zap.String("key", key))
		record, err = s.Apply(ctx, key, source)
	}
	if err != nil {
		s.logger.Warn("sync failed", zap.String("key", key), zap.Error(err))
	}
	return record, err
}
