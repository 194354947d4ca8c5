/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package persist_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suparena/assignment"
	"github.com/suparena/assignment/datastore/mock"
	"github.com/suparena/assignment/datastore/testmodels"
	"github.com/suparena/assignment/errors"
	"github.com/suparena/assignment/persist"
)

var fixedTime = strfmt.DateTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

func newPeopleRegistry(t *testing.T) *assignment.Registry {
	t.Helper()
	reg := assignment.NewRegistry()

	require.NoError(t, assignment.DefineCreation(reg, func(p testmodels.Person) testmodels.PersonRecord {
		return testmodels.PersonRecord{
			ID:        aws.String(p.ID),
			Name:      aws.String(p.Name),
			Email:     p.Email,
			CreatedAt: &fixedTime,
			UpdatedAt: &fixedTime,
		}
	}))
	require.NoError(t, assignment.DefineAssignment(reg, func(p testmodels.Person, r testmodels.PersonRecord) testmodels.PersonRecord {
		r.Name = aws.String(p.Name)
		r.Email = p.Email
		r.Revision++
		return r
	}))
	return reg
}

func newPeopleStore() *mock.DataStore[testmodels.PersonRecord] {
	return mock.New[testmodels.PersonRecord]().
		WithGetKeyFunc(func(r testmodels.PersonRecord) string { return aws.ToString(r.ID) })
}

func TestSyncerCreate(t *testing.T) {
	ctx := context.Background()
	store := newPeopleStore()
	people := persist.NewSyncer[testmodels.Person, testmodels.PersonRecord](newPeopleRegistry(t), store)

	record, err := people.Create(ctx, testmodels.Person{ID: "1", Name: "Ann"})
	require.NoError(t, err)
	require.Equal(t, "Ann", aws.ToString(record.Name))
	require.Equal(t, 1, store.Count())

	_, err = people.Create(ctx, testmodels.Person{ID: "1", Name: "Again"})
	require.True(t, errors.IsConditionFailed(err))

	stored, err := store.GetOne(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "Ann", aws.ToString(stored.Name))
}

func TestSyncerApply(t *testing.T) {
	ctx := context.Background()
	store := newPeopleStore()
	people := persist.NewSyncer[testmodels.Person, testmodels.PersonRecord](newPeopleRegistry(t), store)

	_, err := people.Apply(ctx, "1", testmodels.Person{ID: "1", Name: "Bo"})
	require.True(t, errors.IsNotFound(err))

	store.SetData(map[string]testmodels.PersonRecord{
		"1": {ID: aws.String("1"), Name: aws.String("old"), CreatedAt: &fixedTime},
	})

	record, err := people.Apply(ctx, "1", testmodels.Person{ID: "1", Name: "Bo", Email: "bo@example.com"})
	require.NoError(t, err)
	require.Equal(t, "Bo", aws.ToString(record.Name))
	require.Equal(t, 1, record.Revision)
	require.Same(t, &fixedTime, record.CreatedAt)

	stored, err := store.GetOne(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "bo@example.com", stored.Email)
	require.Equal(t, 1, stored.Revision)
}

func TestSyncerSync(t *testing.T) {
	ctx := context.Background()
	store := newPeopleStore()
	people := persist.NewSyncer[testmodels.Person, testmodels.PersonRecord](newPeopleRegistry(t), store)

	record, err := people.Sync(ctx, "7", testmodels.Person{ID: "7", Name: "Cy"})
	require.NoError(t, err)
	require.Equal(t, 0, record.Revision)

	record, err = people.Sync(ctx, "7", testmodels.Person{ID: "7", Name: "Cyd"})
	require.NoError(t, err)
	require.Equal(t, 1, record.Revision)
	require.Equal(t, "Cyd", aws.ToString(record.Name))
	require.Equal(t, 1, store.Count())
}

func TestSyncerRegistryErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	store := mock.New[testmodels.OrderRecord]().
		WithGetKeyFunc(func(r testmodels.OrderRecord) string { return r.ID })
	orders := persist.NewSyncer[testmodels.Order, testmodels.OrderRecord](assignment.NewRegistry(), store)

	_, err := orders.Create(ctx, testmodels.Order{ID: "1"})
	require.True(t, errors.IsUndefined(err))

	// A missing record needs the creator, so Sync reports the create relationship.
	var u *errors.UndefinedError
	_, err = orders.Sync(ctx, "1", testmodels.Order{ID: "1"})
	require.True(t, stderrors.As(err, &u))
	require.Equal(t, assignment.ModeCreate, u.Mode)
	require.Zero(t, store.Count())

	store.SetData(map[string]testmodels.OrderRecord{"1": {ID: "1"}})

	_, err = orders.Apply(ctx, "1", testmodels.Order{ID: "1", Total: 5})
	require.True(t, stderrors.As(err, &u))
	require.Equal(t, assignment.ModeAssign, u.Mode)

	stored, err := store.GetOne(ctx, "1")
	require.NoError(t, err)
	require.Zero(t, stored.Total)
}

func TestSyncerSyncWithCreatorOnly(t *testing.T) {
	ctx := context.Background()
	reg := assignment.NewRegistry()
	require.NoError(t, assignment.DefineCreation(reg, func(o testmodels.Order) testmodels.OrderRecord {
		return testmodels.OrderRecord{ID: o.ID, Total: o.Total}
	}))
	store := mock.New[testmodels.OrderRecord]().
		WithGetKeyFunc(func(r testmodels.OrderRecord) string { return r.ID })
	orders := persist.NewSyncer[testmodels.Order, testmodels.OrderRecord](reg, store)

	record, err := orders.Sync(ctx, "1", testmodels.Order{ID: "1", Total: 12})
	require.NoError(t, err)
	require.Equal(t, 12.0, record.Total)
	require.Equal(t, 1, store.Count())

	// Once the record exists, updating it needs an assigner.
	_, err = orders.Sync(ctx, "1", testmodels.Order{ID: "1", Total: 13})
	require.True(t, errors.IsUndefined(err))
}

func TestSyncerStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := stderrors.New("store unavailable")
	store := newPeopleStore().WithGetError(boom)
	people := persist.NewSyncer[testmodels.Person, testmodels.PersonRecord](newPeopleRegistry(t), store)

	_, err := people.Sync(ctx, "1", testmodels.Person{ID: "1"})
	require.ErrorIs(t, err, boom)
	require.Zero(t, store.Count())
}

func TestSyncerLogs(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	store := newPeopleStore().WithCreateError(stderrors.New("throttled"))
	people := persist.NewSyncer[testmodels.Person, testmodels.PersonRecord](
		newPeopleRegistry(t), store, persist.WithLogger(zap.New(core)))

	_, err := people.Sync(ctx, "9", testmodels.Person{ID: "9"})
	require.Error(t, err)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	require.Equal(t, "sync failed", warnings[0].Message)

	fields := warnings[0].ContextMap()
	require.Equal(t, "9", fields["key"])
	require.Equal(t, "testmodels.Person", fields["source"])
	require.Equal(t, "testmodels.PersonRecord", fields["target"])
}
