/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrRelationshipAlreadyDefined is returned when a creator or assigner is registered twice for a type pair
	ErrRelationshipAlreadyDefined = errors.New("relationship already defined")

	// ErrRelationshipUndefined is returned when a creator or assigner is used before it is registered
	ErrRelationshipUndefined = errors.New("relationship not defined")

	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when attempting to register or create something that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional write fails
	ErrConditionFailed = errors.New("condition check failed")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// Mode identifies which function of a relationship an operation refers to.
type Mode int

const (
	// ModeCreate is the creator: build a new target from a source.
	ModeCreate Mode = iota
	// ModeAssign is the assigner: merge a source into an existing target.
	ModeAssign
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "Create"
	case ModeAssign:
		return "Assign"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// AlreadyDefinedError is returned by a define operation when the relationship
// for that mode already has a function.
type AlreadyDefinedError struct {
	Mode   Mode
	Source string
	Target string
}

func (e *AlreadyDefinedError) Error() string {
	return fmt.Sprintf("relationship to %s from %q to %q is already defined", e.Mode, e.Source, e.Target)
}

func (e *AlreadyDefinedError) Is(target error) bool {
	return target == ErrRelationshipAlreadyDefined
}

// UndefinedError is returned when a relationship is invoked before its
// function was registered.
type UndefinedError struct {
	Mode   Mode
	Source string
	Target string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("relationship to %s from %q to %q is not defined; define it using %s first",
		e.Mode, e.Source, e.Target, e.hint())
}

func (e *UndefinedError) Is(target error) bool {
	return target == ErrRelationshipUndefined
}

func (e *UndefinedError) hint() string {
	if e.Mode == ModeAssign {
		return "assignment.DefineAssignment(func(source, destination) destination)"
	}
	return "assignment.DefineCreation(func(source) destination)"
}

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when something is already registered or stored
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional write
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// Helper functions for creating errors

// NewAlreadyDefinedError creates a new AlreadyDefinedError
func NewAlreadyDefinedError(mode Mode, source, target string) error {
	return &AlreadyDefinedError{Mode: mode, Source: source, Target: target}
}

// NewUndefinedError creates a new UndefinedError
func NewUndefinedError(mode Mode, source, target string) error {
	return &UndefinedError{Mode: mode, Source: source, Target: target}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(recordType, key string) error {
	return &NotFoundError{Type: recordType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// IsAlreadyDefined checks if an error is a duplicate relationship registration
func IsAlreadyDefined(err error) bool {
	return errors.Is(err, ErrRelationshipAlreadyDefined)
}

// IsUndefined checks if an error is a missing relationship
func IsUndefined(err error) bool {
	return errors.Is(err, ErrRelationshipUndefined)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}
