// Package testing provides test utilities for bindq.
package testing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/bindq"
)

// Render renders q, failing the test on error.
func Render(t *testing.T, q bindq.Query) bindq.Statement {
	t.Helper()
	stmt, err := q.Render()
	if err != nil {
		t.Fatalf("Failed to render query: %v", err)
	}
	return stmt
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertBindNames checks the bind variable names, in order.
func AssertBindNames(t *testing.T, stmt bindq.Statement, expected ...string) {
	t.Helper()
	actual := stmt.Names()
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Bind name mismatch:\nExpected: %v\nActual:   %v", expected, actual)
	}
}

// AssertBind checks that the named bind variable exists with the given value.
func AssertBind(t *testing.T, stmt bindq.Statement, name string, value any) {
	t.Helper()
	for _, b := range stmt.Binds {
		if b.Name() != name {
			continue
		}
		if b.Value() != value {
			t.Errorf("Bind %q = %#v, want %#v", name, b.Value(), value)
		}
		return
	}
	t.Errorf("Expected bind %q not found in %v", name, stmt.Names())
}

// AssertUniqueNames checks that no bind name appears twice.
func AssertUniqueNames(t *testing.T, stmt bindq.Statement) {
	t.Helper()
	seen := make(map[string]bool, len(stmt.Binds))
	for _, name := range stmt.Names() {
		if seen[name] {
			t.Errorf("Duplicate bind name %q in %v", name, stmt.Names())
		}
		seen[name] = true
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
