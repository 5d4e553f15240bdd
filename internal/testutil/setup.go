package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// SceneCopy copies a test scene to a temporary directory and returns the new
// path. Calls t.Skip if the source scene is not found.
//
// Example:
//
//	path := testutil.SceneCopy(t, testutil.TestSceneTwoBoxes)
//	sc, err := scene.Load(path)
func SceneCopy(t *testing.T, sourcePath string) string {
	t.Helper()

	src := ResolveTestPath(t, sourcePath)
	dst := filepath.Join(t.TempDir(), filepath.Base(sourcePath))
	copyFile(t, src, dst)
	return dst
}

// ResolveTestPath attempts to find a file under testdata by trying multiple
// path resolutions. This handles the fact that tests may be run from
// different working directories.
func ResolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../" + relativePath,          // From a top-level package (e.g., bvh/)
		"../../" + relativePath,       // From package two levels deep (e.g., internal/scene/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// If not found, skip the test
	t.Skipf("Test file not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFile copies src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("Test file not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy file: %v", copyErr)
	}
}
