// Package filetest holds the helpers end-to-end tests use to list fixtures
// under a testdata/ directory and compare captured stdout/stderr, and the
// process exit code, against golden files, adapted from the teacher's file
// of the same name (itself built on kylelemons/godebug/diff).
package filetest

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

// SourceFiles returns every file in dir with the given extension
// (including the leading dot, or pass "" for all files).
func SourceFiles(t *testing.T, dir, ext string) []os.DirEntry {
	t.Helper()

	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	res := make([]os.DirEntry, 0, len(dents))
	for _, dent := range dents {
		if !dent.Type().IsRegular() {
			continue
		}
		if ext != "" && filepath.Ext(dent.Name()) != ext {
			continue
		}
		res = append(res, dent)
	}
	return res
}

// DiffGolden validates that output matches the golden file at
// resultDir/name+ext, failing the test with a unified diff otherwise.
func DiffGolden(t *testing.T, name, ext, output, resultDir string) {
	t.Helper()

	wantFile := filepath.Join(resultDir, name+ext)
	wantb, err := os.ReadFile(wantFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)

	if patch := diff.Diff(want, output); patch != "" {
		t.Errorf("diff %s:\n%s", wantFile, patch)
	}
}

// ExitCode reads the expected process exit code from resultDir/name+".exit",
// defaulting to 0 (successful termination) when no such file exists.
func ExitCode(t *testing.T, name, resultDir string) int {
	t.Helper()

	wantFile := filepath.Join(resultDir, name+".exit")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		if os.IsNotExist(err) {
			return 0
		}
		t.Fatal(err)
	}

	code, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		t.Fatalf("invalid exit code in %s: %s", wantFile, err)
	}
	return code
}
