/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestModeString(t *testing.T) {
	if ModeCreate.String() != "Create" {
		t.Errorf("Expected Create, got %q", ModeCreate.String())
	}
	if ModeAssign.String() != "Assign" {
		t.Errorf("Expected Assign, got %q", ModeAssign.String())
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("Expected Mode(7), got %q", Mode(7).String())
	}
}

func TestAlreadyDefinedError(t *testing.T) {
	err := NewAlreadyDefinedError(ModeCreate, "main.Person", "main.PersonDto")

	expected := `relationship to Create from "main.Person" to "main.PersonDto" is already defined`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrRelationshipAlreadyDefined) {
		t.Error("AlreadyDefinedError should match ErrRelationshipAlreadyDefined")
	}
	if errors.Is(err, ErrRelationshipUndefined) {
		t.Error("AlreadyDefinedError should not match ErrRelationshipUndefined")
	}

	if !IsAlreadyDefined(err) {
		t.Error("IsAlreadyDefined should return true for AlreadyDefinedError")
	}
}

func TestUndefinedError(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		hint string
	}{
		{
			name: "create",
			mode: ModeCreate,
			hint: "DefineCreation",
		},
		{
			name: "assign",
			mode: ModeAssign,
			hint: "DefineAssignment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUndefinedError(tt.mode, "main.Order", "main.OrderDto")
			msg := err.Error()

			for _, want := range []string{tt.mode.String(), `"main.Order"`, `"main.OrderDto"`, tt.hint, "first"} {
				if !strings.Contains(msg, want) {
					t.Errorf("Expected %q in error message %q", want, msg)
				}
			}

			if !IsUndefined(err) {
				t.Error("IsUndefined should return true for UndefinedError")
			}

			var u *UndefinedError
			if !errors.As(err, &u) || u.Mode != tt.mode {
				t.Errorf("Expected UndefinedError with mode %s, got %v", tt.mode, err)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("PersonRecord", "123")

	expected := `PersonRecord with key "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("index map", "testmodels.PersonRecord")

	expected := `index map with key "testmodels.PersonRecord" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "fn",
			message:  "creator must not be nil",
			expected: `validation failed for field "fn": creator must not be nil`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "empty manifest",
			expected: "validation failed: empty manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestConditionFailedError(t *testing.T) {
	err := NewConditionFailedError("create", "attribute_not_exists(PK)")

	expected := "condition check failed for create operation: attribute_not_exists(PK)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewUndefinedError(ModeAssign, "main.Order", "main.OrderDto")
	wrapped := fmt.Errorf("sync order: %w", original)

	if !IsUndefined(wrapped) {
		t.Error("IsUndefined should work with wrapped errors")
	}

	joined := errors.Join(NewNotFoundError("x", "1"), wrapped)
	if !IsUndefined(joined) || !IsNotFound(joined) {
		t.Error("Joined errors should match every member")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrRelationshipAlreadyDefined,
		ErrRelationshipUndefined,
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
		ErrNoIndexMap,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
