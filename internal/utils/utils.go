package utils

import (
	"path/filepath"
	"strings"
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept; blank patterns are dropped.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		if _, exists := encounteredPatterns[trimmedPattern]; !exists {
			encounteredPatterns[trimmedPattern] = struct{}{}
			result = append(result, trimmedPattern)
		}
	}
	return result
}

// MatchesEntryName reports whether a directory entry name is excluded by one of the patterns.
// A pattern ending with a slash matches directories of that name only; any other
// pattern is evaluated against the name with filepath.Match semantics.
func MatchesEntryName(entryName string, isDirectory bool, patterns []string) bool {
	for _, patternValue := range patterns {
		normalizedPattern := strings.ReplaceAll(patternValue, "\\", "/")
		if strings.HasSuffix(normalizedPattern, "/") {
			if isDirectory && entryName == strings.TrimSuffix(normalizedPattern, "/") {
				return true
			}
			continue
		}
		isMatched, matchError := filepath.Match(normalizedPattern, entryName)
		if matchError == nil && isMatched {
			return true
		}
	}
	return false
}
