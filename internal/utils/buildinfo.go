// Package utils provides the logger, version lookup and pattern helpers shared by fixit.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/temirov/fixit/internal/ancestors"
)

const (
	unknownVersion        = "unknown"
	developmentVersion    = "(devel)"
	gitDirectoryName      = ".git"
	gitExecutableName     = "git"
	gitDescribeSubcommand = "describe"
)

// describeArgumentSets are tried in order; an exact tag wins over the long form.
var describeArgumentSets = [][]string{
	{gitDescribeSubcommand, "--tags", "--exact-match"},
	{gitDescribeSubcommand, "--tags", "--long", "--dirty"},
}

// GetApplicationVersion returns the module version stamped into the binary,
// or a git description of the working directory's repository, or "unknown".
func GetApplicationVersion() string {
	if buildInfo, available := debug.ReadBuildInfo(); available {
		if moduleVersion := buildInfo.Main.Version; moduleVersion != "" && moduleVersion != developmentVersion {
			return moduleVersion
		}
	}
	workingDirectory, workingDirectoryError := filepath.Abs(".")
	if workingDirectoryError != nil {
		return unknownVersion
	}
	repositoryDirectory, found := findRepositoryDirectory(workingDirectory)
	if !found {
		return unknownVersion
	}
	for _, describeArguments := range describeArgumentSets {
		// #nosec G204
		describeCommand := exec.Command(gitExecutableName, describeArguments...)
		describeCommand.Dir = repositoryDirectory
		if description, describeError := describeCommand.Output(); describeError == nil {
			if trimmedDescription := strings.TrimSpace(string(description)); trimmedDescription != "" {
				return trimmedDescription
			}
		}
	}
	return unknownVersion
}

// findRepositoryDirectory returns the nearest directory at or above
// startDirectory that holds a .git directory, the filesystem root included.
func findRepositoryDirectory(startDirectory string) (string, bool) {
	if hasGitDirectory(startDirectory) {
		return startDirectory, true
	}
	if repositoryDirectory, found := ancestors.Search(startDirectory, func(directory string) (string, bool) {
		return directory, hasGitDirectory(directory)
	}); found {
		return repositoryDirectory, true
	}
	rootDirectory := filesystemRoot(startDirectory)
	if rootDirectory != startDirectory && hasGitDirectory(rootDirectory) {
		return rootDirectory, true
	}
	return "", false
}

func hasGitDirectory(directory string) bool {
	fileInformation, statError := os.Stat(filepath.Join(directory, gitDirectoryName))
	return statError == nil && fileInformation.IsDir()
}

func filesystemRoot(path string) string {
	currentPath := filepath.Clean(path)
	for {
		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			return currentPath
		}
		currentPath = parentPath
	}
}
