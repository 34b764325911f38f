package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFindRepositoryDirectory(t *testing.T) {
	repositoryDirectory := t.TempDir()
	if makeError := os.MkdirAll(filepath.Join(repositoryDirectory, gitDirectoryName), 0o755); makeError != nil {
		t.Fatalf("mkdir .git: %v", makeError)
	}
	nestedDirectory := filepath.Join(repositoryDirectory, "cmd", "fixit")
	if makeError := os.MkdirAll(nestedDirectory, 0o755); makeError != nil {
		t.Fatalf("mkdir nested: %v", makeError)
	}

	testCases := []struct {
		name           string
		startDirectory string
	}{
		{name: "start_directory_is_repository", startDirectory: repositoryDirectory},
		{name: "nested_directory", startDirectory: nestedDirectory},
	}
	for _, currentCase := range testCases {
		t.Run(currentCase.name, func(t *testing.T) {
			foundDirectory, found := findRepositoryDirectory(currentCase.startDirectory)
			if !found || foundDirectory != repositoryDirectory {
				t.Fatalf("expected %s, got %q (found=%v)", repositoryDirectory, foundDirectory, found)
			}
		})
	}
}

func TestFindRepositoryDirectoryIgnoresGitFile(t *testing.T) {
	repositoryDirectory := t.TempDir()
	nestedDirectory := filepath.Join(repositoryDirectory, "inner")
	if makeError := os.MkdirAll(filepath.Join(repositoryDirectory, gitDirectoryName), 0o755); makeError != nil {
		t.Fatalf("mkdir .git: %v", makeError)
	}
	if makeError := os.MkdirAll(nestedDirectory, 0o755); makeError != nil {
		t.Fatalf("mkdir inner: %v", makeError)
	}
	if writeError := os.WriteFile(filepath.Join(nestedDirectory, gitDirectoryName), []byte("gitdir: elsewhere\n"), 0o600); writeError != nil {
		t.Fatalf("write .git file: %v", writeError)
	}

	foundDirectory, found := findRepositoryDirectory(nestedDirectory)
	if !found || foundDirectory != repositoryDirectory {
		t.Fatalf("expected %s, got %q (found=%v)", repositoryDirectory, foundDirectory, found)
	}
}

func TestFilesystemRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("root layout differs on windows")
	}
	testCases := map[string]string{
		"/":              "/",
		"/home/user/src": "/",
		"/tmp/":          "/",
	}
	for path, expectedRoot := range testCases {
		if root := filesystemRoot(path); root != expectedRoot {
			t.Fatalf("filesystemRoot(%q) = %q, expected %q", path, root, expectedRoot)
		}
	}
}
