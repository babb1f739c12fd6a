// Package testutil holds the small assertion helpers used by the tests that
// do not use testify; the compose tests are its only users.
package testutil

import (
	"reflect"
	"testing"
)

func AssertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%v != %v", observed, expected)
	}
}

// AssertDeepEqual compares values that aren't directly comparable with ==,
// e.g. whole AST modules after a rewrite.
func AssertDeepEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if !reflect.DeepEqual(observed, expected) {
		t.Fatalf("%+v != %+v", observed, expected)
	}
}
