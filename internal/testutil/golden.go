// Package testutil provides shared test helpers for verbose Go tests.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// SharedDir is the relative path from a package directory two levels below
// the module root (internal/dump, cmd/verbose, ...) to the shared fixtures.
const SharedDir = "../../testdata"

var update = flag.Bool("update", false, "rewrite golden files")

// Shared returns the path of a fixture under SharedDir.
func Shared(name string) string {
	return filepath.Join(SharedDir, name)
}

// Golden compares got with the golden file at path. With -update the file is
// rewritten instead.
func Golden(t testing.TB, path, got string) {
	t.Helper()

	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v (run with -update to create it)", path, err)
	}
	if got != string(want) {
		t.Errorf("%s mismatch\n--- got ---\n%s\n--- want ---\n%s", path, got, want)
	}
}

// Must returns v and panics when err is not nil. It is meant for building
// fixtures from constructors that return (node, error).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
