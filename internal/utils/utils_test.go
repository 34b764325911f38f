package utils_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/fixit/internal/utils"
)

// testCase describes one MatchesEntryName expectation.
type testCase struct {
	name        string
	entryName   string
	isDirectory bool
	patterns    []string
	expected    bool
}

func TestMatchesEntryName(t *testing.T) {
	testCases := []testCase{
		{name: "directory_pattern_matches_directory", entryName: "dist", isDirectory: true, patterns: []string{"dist/"}, expected: true},
		{name: "directory_pattern_skips_file", entryName: "dist", isDirectory: false, patterns: []string{"dist/"}, expected: false},
		{name: "glob_matches_file", entryName: "bundle.min.js", patterns: []string{"*.min.js"}, expected: true},
		{name: "glob_matches_directory", entryName: "generated", isDirectory: true, patterns: []string{"gen*"}, expected: true},
		{name: "backslash_directory_pattern", entryName: "out", isDirectory: true, patterns: []string{`out\`}, expected: true},
		{name: "invalid_glob_ignored", entryName: "a", patterns: []string{"["}, expected: false},
		{name: "no_patterns", entryName: "main.go", expected: false},
	}
	for _, currentCase := range testCases {
		t.Run(currentCase.name, func(t *testing.T) {
			result := utils.MatchesEntryName(currentCase.entryName, currentCase.isDirectory, currentCase.patterns)
			if result != currentCase.expected {
				t.Fatalf("expected %v, got %v", currentCase.expected, result)
			}
		})
	}
}

func TestDeduplicatePatterns(t *testing.T) {
	result := utils.DeduplicatePatterns([]string{"dist/", " dist/ ", "", "*.min.js", "dist/"})
	expected := []string{"dist/", "*.min.js"}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf("expected %v, got %v", expected, result)
	}
}

func TestNewApplicationLogger(t *testing.T) {
	logger, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		t.Fatalf("NewApplicationLogger error: %v", loggerError)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	if utils.LoggerOrNop(nil) == nil {
		t.Fatalf("expected no-op logger for nil input")
	}
	if utils.LoggerOrNop(logger) != logger {
		t.Fatalf("expected the provided logger to be returned")
	}
}

func TestGetApplicationVersionOutsideRepository(t *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		t.Fatalf("getwd: %v", workingDirectoryError)
	}
	temporaryDirectory := t.TempDir()
	if changeError := os.Chdir(filepath.Clean(temporaryDirectory)); changeError != nil {
		t.Fatalf("chdir: %v", changeError)
	}
	t.Cleanup(func() {
		_ = os.Chdir(workingDirectory)
	})

	if version := utils.GetApplicationVersion(); version == "" {
		t.Fatalf("expected a non-empty version string")
	}
}
