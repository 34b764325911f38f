// Package config loads fixit configuration files and ignore files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// IgnoreFileName is the per-root file listing extra exclusion patterns.
const IgnoreFileName = ".fixitignore"

// LoadIgnoreFilePatterns reads an ignore file and returns its patterns.
// A missing file yields no patterns and no error.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf("reading %s: %w", ignoreFilePath, scanError)
	}
	return ignorePatterns, nil
}
