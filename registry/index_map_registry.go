/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/assignment/errors"
)

// IndexMapRegistry maps Go record types to their DynamoDB key templates.

var (
	indexMapRegistry = make(map[reflect.Type]map[string]string)
	mu               sync.RWMutex
)

// RegisterIndexMap associates record type T with a DynamoDB index map (PK, SK, GSI keys).
// PK and SK are required; a second registration for the same T is rejected.
func RegisterIndexMap[T any](idxMap map[string]string) error {
	for _, k := range []string{"PK", "SK"} {
		if idxMap[k] == "" {
			return errors.NewValidationError(k, "index map requires a non-empty template")
		}
	}

	t := reflect.TypeFor[T]()
	copied := make(map[string]string, len(idxMap))
	for k, v := range idxMap {
		copied[k] = v
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := indexMapRegistry[t]; exists {
		return errors.NewAlreadyExistsError("index map", t.String())
	}
	indexMapRegistry[t] = copied
	return nil
}

// MustRegisterIndexMap is RegisterIndexMap for init-time wiring; it panics on error.
func MustRegisterIndexMap[T any](idxMap map[string]string) {
	if err := RegisterIndexMap[T](idxMap); err != nil {
		panic(err)
	}
}

// GetIndexMap retrieves the index map for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	t := reflect.TypeFor[T]()

	mu.RLock()
	defer mu.RUnlock()
	m, ok := indexMapRegistry[t]
	return m, ok
}
