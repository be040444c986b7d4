package testhelper

import (
	"path/filepath"
	"runtime"
	"testing"
)

// RosettaPath returns the absolute path of the shared sample rosetta table
// under the repository's testdata directory, so tests can load it regardless
// of the package they run from.
func RosettaPath(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not determine caller location")
	}

	return filepath.Join(filepath.Dir(file), "..", "testdata", "rosetta.yaml")
}
