package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// WriteFile creates root/rel with content, creating parents as needed
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// WriteScript creates an executable shell script at root/rel
func WriteScript(t *testing.T, root, rel, body string) string {
	t.Helper()
	path := WriteFile(t, root, rel, "#!/bin/sh\n"+body+"\n")
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("failed to chmod %s: %v", rel, err)
	}
	return path
}

// CreateDir creates root/rel and its parents
func CreateDir(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create dir %s: %v", rel, err)
	}
	return path
}

// RequireInstall skips the test when no install(1) program is on PATH
func RequireInstall(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("install")
	if err != nil {
		t.Skip("install(1) not available")
	}
	return path
}
