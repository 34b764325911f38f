package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/fixit/internal/utils"
)

type configTestCase struct {
	name          string
	globalContent string
	localContent  string
	explicitPath  string
	expectExclude []string
	expectJobs    int
	expectDryRun  bool
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:          "no_files",
			expectExclude: []string{},
			expectJobs:    DefaultJobs,
		},
		{
			name:          "global_only",
			globalContent: "exclude:\n  - dist/\njobs: 3\n",
			expectExclude: []string{"dist/"},
			expectJobs:    3,
		},
		{
			name:          "local_overrides_global",
			globalContent: "exclude:\n  - dist/\njobs: 3\ndry_run: true\n",
			localContent:  "exclude:\n  - generated/\n  - '*.min.js'\n  - generated/\njobs: 2\n",
			expectExclude: []string{"generated/", "*.min.js"},
			expectJobs:    2,
			expectDryRun:  true,
		},
		{
			name:          "explicit_path_replaces_local",
			localContent:  "jobs: 4\n",
			explicitPath:  "custom.yaml",
			expectExclude: []string{"fixtures/"},
			expectJobs:    DefaultJobs,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.GlobalConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.ConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte("exclude:\n  - fixtures/\n"), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
				HomeDirectory:    homeDir,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}
			if !reflect.DeepEqual(loadedConfig.Exclude, testCase.expectExclude) {
				t.Fatalf("expected exclude %v, got %v", testCase.expectExclude, loadedConfig.Exclude)
			}
			if loadedConfig.JobsOrDefault() != testCase.expectJobs {
				t.Fatalf("expected jobs %d, got %d", testCase.expectJobs, loadedConfig.JobsOrDefault())
			}
			if loadedConfig.DryRunEnabled() != testCase.expectDryRun {
				t.Fatalf("expected dry run %v, got %v", testCase.expectDryRun, loadedConfig.DryRunEnabled())
			}
		})
	}
}

func TestLoadApplicationConfigurationMissingExplicitFile(t *testing.T) {
	_, err := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: t.TempDir(),
		ExplicitFilePath: "absent.yaml",
		HomeDirectory:    t.TempDir(),
	})
	if !errors.Is(err, ErrConfigurationNotFound) {
		t.Fatalf("expected ErrConfigurationNotFound, got %v", err)
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	workingDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(workingDir, utils.ConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir, HomeDirectory: t.TempDir()})
	if err == nil {
		t.Fatalf("expected error for directory configuration path")
	}
}

func TestLoadApplicationConfigurationRejectsInvalidJobs(t *testing.T) {
	workingDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workingDir, utils.ConfigFileName), []byte("jobs: 0\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir, HomeDirectory: t.TempDir()})
	if err == nil {
		t.Fatalf("expected error for zero jobs")
	}
}

func TestLoadApplicationConfigurationRejectsMalformedYAML(t *testing.T) {
	workingDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workingDir, utils.ConfigFileName), []byte("exclude: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir, HomeDirectory: t.TempDir()})
	if err == nil {
		t.Fatalf("expected error for malformed configuration")
	}
}

func TestLoadIgnoreFilePatterns(t *testing.T) {
	directory := t.TempDir()
	ignorePath := filepath.Join(directory, IgnoreFileName)
	if err := os.WriteFile(ignorePath, []byte("# generated code\n\ngen/\n  *.pb.go  \n"), 0o600); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}

	patterns, err := LoadIgnoreFilePatterns(ignorePath)
	if err != nil {
		t.Fatalf("LoadIgnoreFilePatterns error: %v", err)
	}
	expected := []string{"gen/", "*.pb.go"}
	if !reflect.DeepEqual(patterns, expected) {
		t.Fatalf("expected %v, got %v", expected, patterns)
	}

	missingPatterns, missingErr := LoadIgnoreFilePatterns(filepath.Join(directory, "absent"))
	if missingErr != nil || missingPatterns != nil {
		t.Fatalf("expected no patterns and no error for a missing file, got %v %v", missingPatterns, missingErr)
	}
}
